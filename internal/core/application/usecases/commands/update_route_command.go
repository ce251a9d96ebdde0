package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateRouteCommandIsNotConstructed = errors.New(
	"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
)

// UpdateRouteCommand represents a metadata-only patch of a route: name,
// driver assignment and notes. Nil fields are left untouched.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	name     *string
	driverID *kernel.UUID
	notes    *string

	guard guard.ConstructorGuard
}

// NewUpdateRouteCommand creates a route metadata patch command.
func NewUpdateRouteCommand(
	routeID kernel.UUID,
	name *string,
	driverID *kernel.UUID,
	notes *string,
) (UpdateRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return UpdateRouteCommand{}, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return UpdateRouteCommand{}, err
		}
	}

	return UpdateRouteCommand{
		routeID:  routeID,
		name:     name,
		driverID: driverID,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

// RouteID returns the route being patched.
func (c UpdateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Name returns the new route name, or nil to leave it unchanged.
func (c UpdateRouteCommand) Name() *string {
	return c.name
}

// DriverID returns the new driver assignment, or nil to leave it unchanged.
func (c UpdateRouteCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// Notes returns the new dispatcher notes, or nil to leave them unchanged.
func (c UpdateRouteCommand) Notes() *string {
	return c.notes
}
