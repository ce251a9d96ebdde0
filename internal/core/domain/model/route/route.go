package route

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not
	// created through NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")

	// ErrRouteAlreadyCompleted is returned when resequencing a route that
	// has reached its terminal status.
	ErrRouteAlreadyCompleted = errors.New("route is already completed")

	// ErrStopCountMismatch is returned when a resequence request does not
	// cover every stop of the route exactly once.
	ErrStopCountMismatch = errors.New("all route stops must be provided for resequencing")

	// ErrForeignStop is returned when a resequence request names a stop that
	// does not belong to the route.
	ErrForeignStop = errors.New("stop does not belong to this route")

	// ErrStopNotFound is returned when the route has no stop with the
	// requested identifier.
	ErrStopNotFound = errors.New("route stop not found")

	// ErrRouteNotPlanned is returned when deleting a route that has already
	// started or finished.
	ErrRouteNotPlanned = errors.New("only planned routes can be deleted")

	// ErrStatusRegression is returned when a status override would move the
	// route backwards in its lifecycle.
	ErrStatusRegression = errors.New("route status cannot move backwards")

	// ErrDuplicateOrder is returned when a route is created with the same
	// order listed twice.
	ErrDuplicateOrder = errors.New("order appears more than once in route")
)

// Route is the aggregate root for a dispatch unit: one driver, one date, an
// ordered list of stops. All stop mutations go through the aggregate so the
// sequence-density and status invariants hold after every operation.
type Route struct {
	id          kernel.UUID
	routeNumber int
	name        *string
	date        time.Time
	status      Status
	driverID    *kernel.UUID
	notes       *string
	startedAt   *time.Time
	completedAt *time.Time
	stops       []*Stop

	isConstructed bool
}

// NewRoute creates a Planned route with one pending stop per order, sequenced
// 1..N in the order given. Callers sort orderIDs for dispatch beforehand
// (see services.SortOrdersForDispatch); the aggregate just preserves the
// ordering it is handed.
func NewRoute(
	id kernel.UUID,
	routeNumber int,
	name *string,
	date time.Time,
	driverID *kernel.UUID,
	notes *string,
	orderIDs []kernel.UUID,
) (*Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	if routeNumber < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("routeNumber is invalid",
			fmt.Errorf("%d is not greater than 0", routeNumber))
	}

	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}

	if len(orderIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("orderIDs")
	}

	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	stops := make([]*Stop, 0, len(orderIDs))
	for i, orderID := range orderIDs {
		if _, ok := seen[orderID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOrder, orderID)
		}
		seen[orderID] = struct{}{}

		stop, err := NewStop(kernel.NewUUID(), id, orderID, i+1)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return &Route{
		id:            id,
		routeNumber:   routeNumber,
		name:          name,
		date:          date,
		status:        StatusPlanned,
		driverID:      driverID,
		notes:         notes,
		stops:         stops,
		isConstructed: true,
	}, nil
}

// RestoreRoute rehydrates a route from persistence. Stops may arrive in any
// order; they are sorted by sequence and the dense 1..N invariant is checked.
func RestoreRoute(
	id kernel.UUID,
	routeNumber int,
	name *string,
	date time.Time,
	status Status,
	driverID *kernel.UUID,
	notes *string,
	startedAt, completedAt *time.Time,
	stops []*Stop,
) (*Route, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	sorted := make([]*Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Sequence() < sorted[j].Sequence()
	})

	for i, stop := range sorted {
		if err := stop.Validate(); err != nil {
			return nil, err
		}
		if stop.Sequence() != i+1 {
			return nil, errs.NewValueIsInvalidErrorWithCause("stop sequence is invalid",
				fmt.Errorf("sequences are not a dense 1..%d set", len(sorted)))
		}
	}

	return &Route{
		id:            id,
		routeNumber:   routeNumber,
		name:          name,
		date:          date,
		status:        status,
		driverID:      driverID,
		notes:         notes,
		startedAt:     startedAt,
		completedAt:   completedAt,
		stops:         sorted,
		isConstructed: true,
	}, nil
}

// Validate ensures the Route instance was created through a constructor.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// RouteNumber returns the human-readable route number.
func (r *Route) RouteNumber() int {
	return r.routeNumber
}

// Name returns the optional route name, or nil.
func (r *Route) Name() *string {
	return r.name
}

// Date returns the route's dispatch date (day granularity).
func (r *Route) Date() time.Time {
	return r.date
}

// Status returns the route's current status.
func (r *Route) Status() Status {
	return r.status
}

// DriverID returns the assigned driver's identifier, or nil.
func (r *Route) DriverID() *kernel.UUID {
	return r.driverID
}

// Notes returns the dispatcher's free-text notes, or nil.
func (r *Route) Notes() *string {
	return r.notes
}

// StartedAt returns when the first stop was delivered, or nil.
func (r *Route) StartedAt() *time.Time {
	return r.startedAt
}

// CompletedAt returns when the last stop was delivered, or nil.
func (r *Route) CompletedAt() *time.Time {
	return r.completedAt
}

// Stops returns the route's stops ordered by sequence.
func (r *Route) Stops() []*Stop {
	return r.stops
}

// StopByID returns the stop with the given identifier, or ErrStopNotFound.
func (r *Route) StopByID(stopID kernel.UUID) (*Stop, error) {
	for _, stop := range r.stops {
		if stop.ID().IsEqual(stopID) {
			return stop, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrStopNotFound, stopID)
}

// Resequence rewrites stop ordinals from a caller-supplied full permutation.
// It is a pure permutation: no stop is added, removed or status-mutated, and
// afterwards the sequences again form a dense 1..N set in the given order.
func (r *Route) Resequence(stopIDs []kernel.UUID) error {
	if r.status == StatusCompleted {
		return ErrRouteAlreadyCompleted
	}

	if len(stopIDs) != len(r.stops) {
		return ErrStopCountMismatch
	}

	byID := make(map[kernel.UUID]*Stop, len(r.stops))
	for _, stop := range r.stops {
		byID[stop.ID()] = stop
	}

	reordered := make([]*Stop, 0, len(stopIDs))
	seen := make(map[kernel.UUID]struct{}, len(stopIDs))
	for _, stopID := range stopIDs {
		stop, ok := byID[stopID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrForeignStop, stopID)
		}
		if _, dup := seen[stopID]; dup {
			return ErrStopCountMismatch
		}
		seen[stopID] = struct{}{}
		reordered = append(reordered, stop)
	}

	for i, stop := range reordered {
		stop.setSequence(i + 1)
	}
	r.stops = reordered
	return nil
}

// DeliverStop marks a stop delivered, records the proof-of-delivery fields
// and recomputes the route status from the full stop set:
//
//   - every stop delivered: route becomes Completed and completedAt is
//     stamped;
//   - otherwise: route becomes InProgress and startedAt is stamped if it was
//     previously unset.
//
// Delivering an already-delivered stop returns the stop unchanged; callers
// rely on this for harmless client retries.
//
// The recompute deliberately reads all stops rather than keeping a delivered
// counter, so "route status is a pure function of its stops' statuses" stays
// trivially true.
func (r *Route) DeliverStop(
	stopID kernel.UUID,
	now time.Time,
	driverNotes, signatureURL, recipientName *string,
) (*Stop, error) {
	stop, err := r.StopByID(stopID)
	if err != nil {
		return nil, err
	}

	if stop.IsDelivered() {
		return stop, nil
	}

	stop.deliver(now, driverNotes, signatureURL, recipientName)

	if r.allStopsDelivered() {
		r.status = StatusCompleted
		r.completedAt = &now
	} else {
		r.status = StatusInProgress
		if r.startedAt == nil {
			r.startedAt = &now
		}
	}

	return stop, nil
}

// OverrideStatus explicitly sets the route status, stamping startedAt and
// completedAt the same way the delivery recompute does. Moving backwards in
// the lifecycle is rejected.
func (r *Route) OverrideStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if !r.status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", ErrStatusRegression, r.status, status)
	}

	r.status = status

	if status == StatusInProgress && r.startedAt == nil {
		r.startedAt = &now
	}
	if status == StatusCompleted && r.completedAt == nil {
		r.completedAt = &now
	}
	return nil
}

// UpdateDetails patches the route's metadata. Nil arguments leave the
// corresponding field untouched; only name, driver and notes are mutable
// this way.
func (r *Route) UpdateDetails(name *string, driverID *kernel.UUID, notes *string) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
		r.driverID = driverID
	}

	if name != nil {
		r.name = name
	}
	if notes != nil {
		r.notes = notes
	}
	return nil
}

// EnsureDeletable returns nil only while the route is still Planned.
func (r *Route) EnsureDeletable() error {
	if r.status != StatusPlanned {
		return ErrRouteNotPlanned
	}
	return nil
}

func (r *Route) allStopsDelivered() bool {
	for _, stop := range r.stops {
		if !stop.IsDelivered() {
			return false
		}
	}
	return true
}
