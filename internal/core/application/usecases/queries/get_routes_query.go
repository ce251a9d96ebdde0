// Package queries contains the read side of the dispatch core. Queries bypass
// the domain model and read denormalized views straight from the database.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery retrieves the route list for the dispatch board, optionally
// filtered by date, driver and status. All filters are optional and combine
// with AND semantics.
type GetRoutesQuery struct {
	date     *time.Time
	driverID *kernel.UUID
	status   *route.Status

	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a route list query. Nil filters are ignored.
func NewGetRoutesQuery(
	date *time.Time, driverID *kernel.UUID, status *route.Status,
) (GetRoutesQuery, error) {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return GetRoutesQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetRoutesQuery{}, err
		}
	}

	return GetRoutesQuery{
		date:     date,
		driverID: driverID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// Date returns the dispatch date filter, or nil.
func (q GetRoutesQuery) Date() *time.Time {
	return q.date
}

// DriverID returns the driver filter, or nil.
func (q GetRoutesQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// Status returns the status filter, or nil.
func (q GetRoutesQuery) Status() *route.Status {
	return q.status
}

// RouteView is the dispatch board's read model of a route: metadata, driver
// summary and the ordered stop list with order summaries.
type RouteView struct {
	ID          kernel.UUID
	RouteNumber int
	Name        *string
	Date        time.Time
	Status      string
	Notes       *string
	StartedAt   *time.Time
	CompletedAt *time.Time
	Driver      *DriverSummary
	Stops       []StopView
}

// DriverSummary identifies the driver assigned to a route.
type DriverSummary struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// StopView is one stop on the dispatch board, with enough of the order to
// identify and locate the delivery.
type StopView struct {
	ID            kernel.UUID
	Sequence      int
	Status        string
	DeliveredAt   *time.Time
	DriverNotes   *string
	SignatureURL  *string
	RecipientName *string
	Order         StopOrderSummary
}

// StopOrderSummary is the slice of the order shown on the dispatch board.
type StopOrderSummary struct {
	ID                  kernel.UUID
	OrderNumber         int
	RecipientName       string
	RecipientPhone      string
	AddressLine1        string
	City                string
	DeliveryTime        *string
	SpecialInstructions *string
}
