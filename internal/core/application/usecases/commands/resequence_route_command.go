package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrResequenceRouteCommandIsNotConstructed = errors.New(
		"ResequenceRouteCommand must be created via NewResequenceRouteCommand constructor",
	)
	ErrStopIDsAreRequired = errors.New("at least one stop id is required")
)

// ResequenceRouteCommand represents a dispatcher reordering a route's stops.
// StopIDs must be a full permutation of the route's stops; the aggregate
// enforces that when the command is handled.
type ResequenceRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	stopIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewResequenceRouteCommand creates a stop reordering command.
func NewResequenceRouteCommand(
	routeID kernel.UUID, stopIDs []kernel.UUID,
) (ResequenceRouteCommand, error) {
	cmd := ResequenceRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setStopIDs(stopIDs),
	); err != nil {
		return ResequenceRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResequenceRouteCommand) Validate() error {
	return c.guard.Validate(ErrResequenceRouteCommandIsNotConstructed)
}

// RouteID returns the route being reordered.
func (c ResequenceRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// StopIDs returns the stops in their new visiting order.
func (c ResequenceRouteCommand) StopIDs() []kernel.UUID {
	return c.stopIDs
}

func (c *ResequenceRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *ResequenceRouteCommand) setStopIDs(stopIDs []kernel.UUID) error {
	if len(stopIDs) == 0 {
		return ErrStopIDsAreRequired
	}
	for _, id := range stopIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.stopIDs = stopIDs
	return nil
}
