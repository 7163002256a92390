package response

import (
	"testing"
	"time"

	"lasercraft/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:                "ord-1",
		Status:            entities.OrderStatusPaid,
		PaymentMethod:     entities.PaymentMethodGateway,
		ExternalPaymentID: "mp-1",
		Amount:            125,
		MaterialTypeID:    "mt-1",
		Quantity:          3,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromOrder(o)
	if res.OrderID != "ord-1" || res.Status != "PAID" || res.PaymentMethod != "GATEWAY" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ExternalPaymentID != "mp-1" || res.Amount != 125 {
		t.Fatalf("unexpected payment fields: %+v", res)
	}
	if res.MaterialTypeID != "mt-1" || res.Quantity != 3 {
		t.Fatalf("unexpected material fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromGatewayPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.GatewayPayment{
		ProviderPaymentID:  "mp-77",
		OrderID:            "ord-1",
		ProviderStatus:     "approved",
		Outcome:            entities.PaymentOutcomeSucceeded,
		Date:               now,
		ProviderPayloadRaw: []byte(`{"id":77}`),
	}

	res := FromGatewayPayment(p)
	if res.PaymentID != "mp-77" || res.OrderID != "ord-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ProviderStatus != "approved" || res.Outcome != "SUCCEEDED" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.ProviderPayloadRaw != `{"id":77}` {
		t.Fatalf("unexpected raw payload: %q", res.ProviderPayloadRaw)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}
