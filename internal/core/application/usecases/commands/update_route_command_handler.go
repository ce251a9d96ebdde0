package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// UpdateRouteCommandHandler patches a route's name, driver and notes.
// Stops and status are never touched by this operation.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewUpdateRouteCommandHandler creates a handler for route metadata patches.
func NewUpdateRouteCommandHandler(uowFactory RouteUoWFactory) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the metadata patch command.
func (h UpdateRouteCommandHandler) Handle(ctx context.Context, command UpdateRouteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	aggregate, err := routeRepo.Get(ctx, command.RouteID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRouteNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(command.Name(), command.DriverID(), command.Notes()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
