package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDriverRouteViewQueryIsNotConstructed = errors.New(
		"GetDriverRouteViewQuery must be created via NewGetDriverRouteViewQuery constructor",
	)
	ErrTokenIsRequired = errors.New("token is required")
)

// GetDriverRouteViewQuery resolves a driver's capability token into the
// delivery view for that order. The token is the sole credential: no driver
// login or session exists.
type GetDriverRouteViewQuery struct {
	token string

	guard guard.ConstructorGuard
}

// NewGetDriverRouteViewQuery creates a driver view query from a raw token.
func NewGetDriverRouteViewQuery(token string) (GetDriverRouteViewQuery, error) {
	if token == "" {
		return GetDriverRouteViewQuery{}, ErrTokenIsRequired
	}

	return GetDriverRouteViewQuery{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverRouteViewQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRouteViewQueryIsNotConstructed)
}

// Token returns the raw capability token.
func (q GetDriverRouteViewQuery) Token() string {
	return q.token
}

// View type discriminators for GetDriverRouteViewQueryResponse.
const (
	ViewTypeRoute      = "route"
	ViewTypeStandalone = "standalone"
)

// GetDriverRouteViewQueryResponse is what a driver sees when opening their
// delivery link. Orders on a route get the route context and the ordered
// sibling stop list; orders not yet routed get a standalone delivery sheet
// with the date and card message instead.
type GetDriverRouteViewQueryResponse struct {
	Type  string
	Order DriverOrderView

	// Route and Stops are set only for route-typed views.
	Route *DriverRouteSummary
	Stops []DriverStopView

	// DeliveryDate and CardMessage are set only for standalone views.
	DeliveryDate *time.Time
	CardMessage  *string
}

// DriverOrderView is the full delivery payload for the token's order.
type DriverOrderView struct {
	ID                  kernel.UUID
	OrderNumber         int
	RecipientName       string
	RecipientPhone      string
	AddressLine1        string
	City                string
	Province            string
	PostalCode          string
	Country             string
	DeliveryTime        *string
	SpecialInstructions *string
	Items               []DriverItemView
}

// DriverItemView is one line item of the order.
type DriverItemView struct {
	Name     string
	Quantity int
}

// DriverRouteSummary is the route context shown above the stop list.
type DriverRouteSummary struct {
	ID          kernel.UUID
	RouteNumber int
	Status      string
	DriverName  *string
	DriverPhone *string
}

// DriverStopView is a sibling stop in the driver's route view. IsCurrent
// marks the stop belonging to the token's order.
type DriverStopView struct {
	StopView
	IsCurrent bool
}
