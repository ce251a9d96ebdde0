package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/guard"
)

var ErrChangeRouteStatusCommandIsNotConstructed = errors.New(
	"ChangeRouteStatusCommand must be created via NewChangeRouteStatusCommand constructor",
)

// ChangeRouteStatusCommand represents a dispatcher explicitly overriding a
// route's status, outside the automatic recompute that stop deliveries drive.
type ChangeRouteStatusCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	status  route.Status

	guard guard.ConstructorGuard
}

// NewChangeRouteStatusCommand creates a status override command.
func NewChangeRouteStatusCommand(
	routeID kernel.UUID, status route.Status,
) (ChangeRouteStatusCommand, error) {
	if err := errors.Join(
		routeID.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeRouteStatusCommand{}, err
	}

	return ChangeRouteStatusCommand{
		routeID: routeID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRouteStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRouteStatusCommandIsNotConstructed)
}

// RouteID returns the route whose status is overridden.
func (c ChangeRouteStatusCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Status returns the target status.
func (c ChangeRouteStatusCommand) Status() route.Status {
	return c.status
}
