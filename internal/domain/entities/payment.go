package entities

import (
	"encoding/json"
	"time"
)

// PaymentOutcome is the canonical, provider-agnostic result of a single
// payment attempt. The gateway adapter owns the mapping from provider status
// strings; nothing above the adapter reasons about provider vocabulary.
type PaymentOutcome string

const (
	PaymentOutcomePending   PaymentOutcome = "PENDING"
	PaymentOutcomeSucceeded PaymentOutcome = "SUCCEEDED"
	PaymentOutcomeFailed    PaymentOutcome = "FAILED"
)

// GatewayPayment is the transient record of a payment created at the gateway
// for an order. It is returned to the caller for display/traceability; the
// durable effect lives on the Order (status + external payment id).
//
// ProviderPayloadRaw keeps the original provider response (JSON) because
// gateway response schemas vary between integrations.
type GatewayPayment struct {
	ProviderPaymentID  string          `json:"provider_payment_id"`
	OrderID            string          `json:"order_id"`
	ProviderStatus     string          `json:"provider_status"`
	Outcome            PaymentOutcome  `json:"outcome"`
	Date               time.Time       `json:"date"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
