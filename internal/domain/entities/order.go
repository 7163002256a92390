package entities

import "time"

// OrderStatus is the canonical order lifecycle state.
//
// Transitions (owned by the order state machine):
//   - PENDING -> PAID -> SHIPPED -> COMPLETED
//   - PENDING | PAID -> CANCELLED
//
// COMPLETED and CANCELLED are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// PaymentMethod identifies the channel an order is paid through. The same
// vocabulary doubles as the source tag on payment outcome deliveries.
type PaymentMethod string

const (
	PaymentMethodGateway  PaymentMethod = "GATEWAY"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// Order is the storefront order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - Amount is copied from the accepted quote at creation and never changes.
//   - Status only moves through the order state machine; the repository guards
//     every transition with a conditional update on the expected prior status.
//   - ExternalPaymentID is written once, on the PENDING -> PAID transition for
//     gateway payments; a second, different identifier is a conflict.
type Order struct {
	ID                string        `json:"id"`
	Status            OrderStatus   `json:"status"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	ExternalPaymentID string        `json:"external_payment_id,omitempty"`
	Amount            float64       `json:"amount"`
	MaterialTypeID    string        `json:"material_type_id"`
	Quantity          int           `json:"quantity"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
