package handlers

import (
	"log"
	"net/http"

	request "lasercraft/internal/adapter/http/dto/request"
	response "lasercraft/internal/adapter/http/dto/response"
	"lasercraft/internal/usecase"
	"lasercraft/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles both payment channels: the gateway (payment
// creation + webhook) and the manually verified bank transfer.

type PaymentHandler struct {
	usecase usecase.IOrderUseCase
}

func NewPaymentHandler(uc usecase.IOrderUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateOrderPayment creates a Mercado Pago payment for a PENDING
// gateway-paid order. The order's stored amount is charged regardless of the
// payload's transaction_amount.
func (h *PaymentHandler) CreateOrderPayment(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] create start order_id=%s", orderID)

	var payload request.OrderPaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateGatewayPayment(c.Request.Context(), orderID, payload.MPPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success order_id=%s payment_id=%s outcome=%s", orderID, created.ProviderPaymentID, created.Outcome)

	c.JSON(http.StatusOK, response.FromGatewayPayment(created))
}

// GatewayWebhook receives asynchronous status notifications from Mercado
// Pago. Delivery is at-least-once and may be out of order; duplicates come
// back 200 so the provider stops retrying.
func (h *PaymentHandler) GatewayWebhook(c *gin.Context) {
	var payload request.GatewayNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] webhook received provider_payment_id=%s status=%s external_reference=%s",
		payload.ProviderPaymentID(), payload.Status, payload.ExternalReference)

	order, err := h.usecase.HandleGatewayNotification(c.Request.Context(), payload.ExternalReference, payload.ProviderPaymentID(), payload.Status)
	if err != nil {
		log.Printf("[payment][handler] webhook failed provider_payment_id=%s err=%v", payload.ProviderPaymentID(), err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ConfirmTransfer applies the operator's verdict for a bank transfer.
func (h *PaymentHandler) ConfirmTransfer(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.TransferConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.ConfirmTransfer(c.Request.Context(), orderID, *payload.Approved)
	if err != nil {
		log.Printf("[payment][handler] transfer confirmation failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}
