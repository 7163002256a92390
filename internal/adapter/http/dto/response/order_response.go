package response

import (
	"time"

	"lasercraft/internal/domain/entities"
)

type OrderResponse struct {
	OrderID           string    `json:"order_id"`
	Status            string    `json:"status"`
	PaymentMethod     string    `json:"payment_method"`
	ExternalPaymentID string    `json:"external_payment_id,omitempty"`
	Amount            float64   `json:"amount"`
	MaterialTypeID    string    `json:"material_type_id"`
	Quantity          int       `json:"quantity"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:           o.ID,
		Status:            string(o.Status),
		PaymentMethod:     string(o.PaymentMethod),
		ExternalPaymentID: o.ExternalPaymentID,
		Amount:            o.Amount,
		MaterialTypeID:    o.MaterialTypeID,
		Quantity:          o.Quantity,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

type GatewayPaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	OrderID        string    `json:"order_id"`
	ProviderStatus string    `json:"provider_status"`
	Outcome        string    `json:"outcome"`
	Date           time.Time `json:"date"`

	ProviderPayloadRaw string `json:"provider_payload_raw,omitempty"`
}

func FromGatewayPayment(p entities.GatewayPayment) GatewayPaymentResponse {
	return GatewayPaymentResponse{
		PaymentID:          p.ProviderPaymentID,
		OrderID:            p.OrderID,
		ProviderStatus:     p.ProviderStatus,
		Outcome:            string(p.Outcome),
		Date:               p.Date,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}
