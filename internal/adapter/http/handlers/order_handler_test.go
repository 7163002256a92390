package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lasercraft/internal/adapter/http/handlers/mocks"
	"lasercraft/internal/domain/entities"
	"lasercraft/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleOrder(status entities.OrderStatus) entities.Order {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:             "ord-1",
		Status:         status,
		PaymentMethod:  entities.PaymentMethodGateway,
		Amount:         60,
		MaterialTypeID: "mt-1",
		Quantity:       3,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment method fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"material_type_id":"mt-1","length":950,"width":400,"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateFromCutRequest(gomock.Any(), gomock.Any(), entities.PaymentMethod("PIGEON")).Return(entities.Order{}, usecase.ErrInvalidPaymentMethod)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"material_type_id":"mt-1","length":950,"width":400,"quantity":3,"payment_method":"PIGEON"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote rejection surfaces as quote error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateFromCutRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"material_type_id":"mt-1","length":950,"width":400,"quantity":99,"payment_method":"GATEWAY"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateFromCutRequest(gomock.Any(), gomock.Any(), entities.PaymentMethod("GATEWAY")).Return(sampleOrder(entities.OrderStatusPending), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"material_type_id":"mt-1","length":950,"width":400,"quantity":3,"payment_method":"GATEWAY"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["order_id"] != "ord-1" || body["status"] != "PENDING" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), "ord-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id", h.GetOrder)

		paid := sampleOrder(entities.OrderStatusPaid)
		paid.ExternalPaymentID = "mp-1"
		uc.EXPECT().GetByID(gomock.Any(), "ord-1").Return(paid, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "PAID" || body["external_payment_id"] != "mp-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_Fulfillment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ship success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:order_id/ship", h.ShipOrder)

		uc.EXPECT().MarkShipped(gomock.Any(), "ord-1").Return(sampleOrder(entities.OrderStatusShipped), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/ship", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("ship before payment conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:order_id/ship", h.ShipOrder)

		uc.EXPECT().MarkShipped(gomock.Any(), "ord-1").Return(entities.Order{},
			&usecase.InvalidTransitionError{From: entities.OrderStatusPending, To: entities.OrderStatusShipped})

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/ship", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "INVALID_TRANSITION" {
			t.Fatalf("expected INVALID_TRANSITION, got %q", body["code"])
		}
	})

	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:order_id/complete", h.CompleteOrder)

		uc.EXPECT().MarkCompleted(gomock.Any(), "ord-1").Return(sampleOrder(entities.OrderStatusCompleted), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("complete unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:order_id/complete", h.CompleteOrder)

		uc.EXPECT().MarkCompleted(gomock.Any(), "ord-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-404/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
