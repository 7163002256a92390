package routes

import (
	"lasercraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMaterials = "/materials"
	PathQuotes    = "/quotes"
	PathOrders    = "/orders"
	PathPayments  = "/payments"
)

func addStorefrontRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", quoteHandler.ListMaterials)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.POST("/:order_id/payments", paymentHandler.CreateOrderPayment)
		orders.POST("/:order_id/transfer-confirmation", paymentHandler.ConfirmTransfer)
		orders.PATCH("/:order_id/ship", orderHandler.ShipOrder)
		orders.PATCH("/:order_id/complete", orderHandler.CompleteOrder)
	}

	payments := rg.Group(PathPayments)
	{
		// Mercado Pago delivers notifications here; at-least-once, possibly out of order.
		payments.POST("/webhook", paymentHandler.GatewayWebhook)
	}
}
