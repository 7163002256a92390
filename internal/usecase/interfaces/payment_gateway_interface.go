package interfaces

import (
	"context"
	"encoding/json"

	"lasercraft/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// Normalize is the single place the provider status vocabulary is absorbed:
// everything above this interface reasons in PaymentOutcome only, and unknown
// provider statuses degrade to PENDING instead of failing.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, externalReference string, err error)
	Normalize(providerStatus string) entities.PaymentOutcome
}
