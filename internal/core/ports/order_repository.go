package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the dispatch core's read/write surface over orders.
// Orders are owned by the wider retail application; the only write this core
// performs is the status flip to Completed on delivery.
type OrderRepository interface {
	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIDs retrieves the orders matching ids. Missing ids are simply
	// absent from the result; callers detect and report them.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// UpdateStatus persists the order's current status.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error
}
