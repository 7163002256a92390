package routes

import (
	"log"
	"os"
	"strconv"

	_ "lasercraft/docs" // This will be auto-generated
	"lasercraft/internal/adapter/http/handlers"
	repository2 "lasercraft/internal/adapter/persistence/repository"
	"lasercraft/internal/infrastructure/database"
	"lasercraft/internal/infrastructure/payments"
	"lasercraft/internal/usecase"
	"lasercraft/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewMaterialCatalogDynamoRepository(ddb)
	extrasRepo := repository2.NewExtrasRegistryDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(catalogRepo, extrasRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, catalogRepo, quoteUseCase, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, quoteHandler, orderHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
