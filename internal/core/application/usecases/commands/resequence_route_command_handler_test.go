package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResequenceRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	aggregate := makePlannedRoute(t)
	stops := aggregate.Stops()
	reversed := []kernel.UUID{stops[1].ID(), stops[0].ID()}

	cmd, err := commands.NewResequenceRouteCommand(aggregate.ID(), reversed)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		routeRepo.On("Update", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResequenceRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updated := routeRepo.Calls[1].Arguments[1].(*route.Route)
	require.Len(t, updated.Stops(), 2)
	assert.True(t, updated.Stops()[0].ID().IsEqual(reversed[0]))
	assert.Equal(t, 1, updated.Stops()[0].Sequence())
	assert.Equal(t, 2, updated.Stops()[1].Sequence())

	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestResequenceRouteCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockRouteUoWFactory)
	handler := commands.NewResequenceRouteCommandHandler(factory)

	err := handler.Handle(ctx, commands.ResequenceRouteCommand{})

	require.ErrorIs(t, err, commands.ErrResequenceRouteCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestResequenceRouteCommandHandler_Handle_RouteNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewResequenceRouteCommand(kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, cmd.RouteID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResequenceRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRouteNotFound)
}

func TestResequenceRouteCommandHandler_Handle_PartialPermutation(t *testing.T) {
	ctx := t.Context()

	aggregate := makePlannedRoute(t)
	onlyFirst := []kernel.UUID{aggregate.Stops()[0].ID()}

	cmd, err := commands.NewResequenceRouteCommand(aggregate.ID(), onlyFirst)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResequenceRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, route.ErrStopCountMismatch)
	routeRepo.AssertNotCalled(t, "Update")
}

func TestResequenceRouteCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()

	aggregate := makePlannedRoute(t)
	stops := aggregate.Stops()
	cmd, err := commands.NewResequenceRouteCommand(
		aggregate.ID(), []kernel.UUID{stops[0].ID(), stops[1].ID()},
	)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockRouteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		routeRepo.On("Update", ctx, mock.AnythingOfType("*route.Route")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResequenceRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
}
