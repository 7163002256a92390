package request

import (
	"encoding/json"
	"strings"
)

// GatewayNotificationRequest is the webhook body. Mercado Pago's thin format
// carries only `data.id`; flat `status`/`external_reference` fields are also
// accepted so manual redeliveries and tests can short-circuit the payment
// lookup.
type GatewayNotificationRequest struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`

	ID                string `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
}

// ProviderPaymentID prefers the nested webhook format over the flat one.
func (r GatewayNotificationRequest) ProviderPaymentID() string {
	if v := strings.TrimSpace(r.Data.ID); v != "" {
		return v
	}
	return strings.TrimSpace(r.ID)
}

// TransferConfirmationRequest is the operator's verdict on a manually
// verified bank transfer. Approved is a pointer so an absent field fails
// binding instead of silently reading as false.
type TransferConfirmationRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// OrderPaymentCreateRequest carries the raw Mercado Pago payment payload for
// a gateway-paid order. Stored as-is; provider schemas vary per integration.
type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
