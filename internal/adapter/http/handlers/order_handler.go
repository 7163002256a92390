package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "lasercraft/internal/adapter/http/dto/request"
	response "lasercraft/internal/adapter/http/dto/response"
	"lasercraft/internal/domain/entities"
	"lasercraft/internal/usecase"
	"lasercraft/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for orders and fulfillment transitions.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder accepts a cut request plus payment channel, re-validates and
// prices it, and opens a PENDING order for the quoted total.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateFromCutRequest(c.Request.Context(), payload.ToCutRequest(), entities.PaymentMethod(payload.PaymentMethod))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] created order_id=%s method=%s", order.ID, order.PaymentMethod)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder returns the current status and amount for display and downstream
// notification.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ShipOrder applies the PAID -> SHIPPED fulfillment transition.
func (h *OrderHandler) ShipOrder(c *gin.Context) {
	h.advance(c, h.usecase.MarkShipped)
}

// CompleteOrder applies the SHIPPED -> COMPLETED fulfillment transition.
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.advance(c, h.usecase.MarkCompleted)
}

func (h *OrderHandler) advance(c *gin.Context, transition func(ctx context.Context, orderID string) (entities.Order, error)) {
	orderID := c.Param("order_id")

	order, err := transition(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order][handler] transition failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	var invalidTransition *usecase.InvalidTransitionError

	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrInvalidNotification), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.As(err, &invalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", invalidTransition.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentIdentityConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_IDENTITY_CONFLICT", "A different payment is already recorded for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongPaymentChannel):
		return pkg.NewDomainErrorSimple("WRONG_PAYMENT_CHANNEL", "Order is not paid through the gateway", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order is not in a payable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	default:
		return mapQuoteError(err)
	}
}
