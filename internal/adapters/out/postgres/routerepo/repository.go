package routerepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route and all of its stops.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing route and its stops. Writes every stop row from
// the aggregate, so the caller must have loaded the aggregate through Get or
// GetByStopID within the same transaction to hold the route lock.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route with its stops by route identifier.
//
// The route row is read FOR UPDATE. Update persists the whole aggregate,
// stops included, so concurrent writers on the same route must serialize:
// the second transaction blocks here until the first commits and then reads
// the committed stop set instead of a stale snapshot. Outside a transaction
// the lock is released at statement end.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Stops").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByStopID retrieves the route owning the given stop.
func (r *GormRouteRepository) GetByStopID(ctx context.Context, stopID kernel.UUID) (*route.Route, error) {
	if err := stopID.Validate(); err != nil {
		return nil, err
	}

	var stop StopDTO
	if err := r.db.WithContext(ctx).First(&stop, "id = ?", stopID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stop", stopID.String())
		}
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(stop.RouteID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, routeID)
}

// GetRoutedOrderIDs returns the subset of orderIDs that already have a stop
// on any route, preserving the requested order.
func (r *GormRouteRepository) GetRoutedOrderIDs(
	ctx context.Context, orderIDs []kernel.UUID,
) ([]kernel.UUID, error) {
	if len(orderIDs) == 0 {
		return []kernel.UUID{}, nil
	}

	raw := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		raw = append(raw, id.Bytes())
	}

	var found []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&StopDTO{}).
		Where("order_id IN ?", raw).
		Pluck("order_id", &found).Error; err != nil {
		return nil, err
	}

	foundSet := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}

	routed := make([]kernel.UUID, 0, len(found))
	for _, id := range orderIDs {
		if _, ok := foundSet[id.Bytes()]; ok {
			routed = append(routed, id)
		}
	}

	return routed, nil
}

// NextRouteNumber returns the next free human-readable route number.
// Runs inside the same transaction as the following Add, so concurrent
// creates serialize on the route_number unique index rather than silently
// duplicating numbers.
func (r *GormRouteRepository) NextRouteNumber(ctx context.Context) (int, error) {
	var maxNumber int
	err := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Select("COALESCE(MAX(route_number), 0)").
		Scan(&maxNumber).Error
	if err != nil {
		return 0, err
	}

	return maxNumber + 1, nil
}

// Delete removes a route and, via the FK cascade, all of its stops.
func (r *GormRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RouteDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", id.String())
	}

	return nil
}
