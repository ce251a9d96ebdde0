package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
)

// ChangeRouteStatusCommandHandler applies an explicit status override.
// The aggregate enforces monotonicity and stamps startedAt/completedAt the
// same way the delivery-driven recompute does.
type ChangeRouteStatusCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewChangeRouteStatusCommandHandler creates a handler for status overrides.
func NewChangeRouteStatusCommandHandler(uowFactory RouteUoWFactory) ChangeRouteStatusCommandHandler {
	return ChangeRouteStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command.
func (h ChangeRouteStatusCommandHandler) Handle(ctx context.Context, command ChangeRouteStatusCommand) error {
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

	if err = aggregate.OverrideStatus(command.Status(), time.Now().UTC()); err != nil {
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
