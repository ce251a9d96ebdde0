package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrDateIsRequired      = errors.New("date is required")
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// CreateRouteCommand represents a dispatcher's request to assemble a route
// for one date from a set of delivery orders, optionally assigned to a
// driver.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	date     time.Time
	driverID *kernel.UUID
	orderIDs []kernel.UUID
	name     *string
	notes    *string

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a route assignment command.
// The date must be set and at least one order id supplied; a driver is
// optional at assignment time.
func NewCreateRouteCommand(
	date time.Time,
	driverID *kernel.UUID,
	orderIDs []kernel.UUID,
	name *string,
	notes *string,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		name:  name,
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setDriverID(driverID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// Date returns the route's dispatch date.
func (c CreateRouteCommand) Date() time.Time {
	return c.date
}

// DriverID returns the optional driver identifier.
func (c CreateRouteCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// OrderIDs returns the orders to place on the route.
func (c CreateRouteCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Name returns the optional route name.
func (c CreateRouteCommand) Name() *string {
	return c.name
}

// Notes returns the optional dispatcher notes.
func (c CreateRouteCommand) Notes() *string {
	return c.notes
}

func (c *CreateRouteCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	c.date = date
	return nil
}

func (c *CreateRouteCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CreateRouteCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderIDs = orderIDs
	return nil
}
