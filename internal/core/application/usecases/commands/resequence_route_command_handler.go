package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// ResequenceRouteCommandHandler rewrites a route's stop ordering.
// The aggregate rejects partial permutations, foreign stops and completed
// routes; the handler persists the accepted permutation atomically.
type ResequenceRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewResequenceRouteCommandHandler creates a handler for stop reordering.
func NewResequenceRouteCommandHandler(uowFactory RouteUoWFactory) ResequenceRouteCommandHandler {
	return ResequenceRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reordering command.
func (h ResequenceRouteCommandHandler) Handle(ctx context.Context, command ResequenceRouteCommand) error {
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

	if err = aggregate.Resequence(command.StopIDs()); err != nil {
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
