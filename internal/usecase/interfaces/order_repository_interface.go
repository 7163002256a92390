package interfaces

import (
	"context"

	"lasercraft/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// UpdateStatus is a compare-and-swap: the write only lands when the stored
// status still equals `from`. On a lost race (conditional check failed) the
// zero Order is returned with a nil error, and the caller re-reads to decide
// whether the competing write already produced the desired state.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, externalPaymentID string) (entities.Order, error)
}
