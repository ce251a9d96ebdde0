package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
// Routes are always loaded and stored whole, stops included, so aggregate
// invariants can be enforced in one place.
type RouteRepository interface {
	// Add persists a new route and all of its stops.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route and its stops.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route with its stops by route identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetByStopID retrieves the route owning the given stop.
	// Used by stop fulfillment, which is addressed by stop id.
	GetByStopID(ctx context.Context, stopID kernel.UUID) (*route.Route, error)

	// GetRoutedOrderIDs returns the subset of orderIDs that already have a
	// route stop. Route assignment uses it to enforce the one-stop-per-order
	// invariant.
	GetRoutedOrderIDs(ctx context.Context, orderIDs []kernel.UUID) ([]kernel.UUID, error)

	// NextRouteNumber returns the next free human-readable route number.
	// Must be called inside the same transaction as Add.
	NextRouteNumber(ctx context.Context) (int, error)

	// Delete removes a route and its stops. Callers check deletability
	// (Planned only) on the aggregate first.
	Delete(ctx context.Context, id kernel.UUID) error
}
