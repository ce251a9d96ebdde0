package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// CreateRouteCommandHandler assembles a delivery route from a set of orders.
// Validates the driver and every order, sequences the stops deterministically
// and creates the route with its stops in a single transaction.
//
// Validation failures are reported in a fixed order so clients see the same
// error for the same bad request every time: unknown driver, missing orders,
// non-delivery orders, already-routed orders.
type CreateRouteCommandHandler struct {
	uowFactory CreateRouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route assignment.
func NewCreateRouteCommandHandler(uowFactory CreateRouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route assignment command and returns the new route's ID.
func (h CreateRouteCommandHandler) Handle(
	ctx context.Context, command CreateRouteCommand,
) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	orderRepo := uow.OrderRepository()
	employeeRepo := uow.EmployeeRepository()

	if command.DriverID() != nil {
		if _, err := employeeRepo.Get(ctx, *command.DriverID()); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return kernel.UUID{}, ErrDriverNotFound
			}
			return kernel.UUID{}, err
		}
	}

	orders, err := orderRepo.GetByIDs(ctx, command.OrderIDs())
	if err != nil {
		return kernel.UUID{}, err
	}

	if missing := missingOrderIDs(command.OrderIDs(), orders); len(missing) > 0 {
		return kernel.UUID{}, &OrdersNotFoundError{IDs: missing}
	}

	for _, o := range orders {
		if o.Type() != order.TypeDelivery {
			return kernel.UUID{}, &InvalidOrderTypeError{OrderNumber: o.OrderNumber()}
		}
	}

	routed, err := routeRepo.GetRoutedOrderIDs(ctx, command.OrderIDs())
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(routed) > 0 {
		return kernel.UUID{}, &OrderAlreadyRoutedError{
			OrderNumber: orderNumberByID(orders, routed[0]),
		}
	}

	sorted := services.SortOrdersForDispatch(orders)
	orderIDs := make([]kernel.UUID, 0, len(sorted))
	for _, o := range sorted {
		orderIDs = append(orderIDs, o.ID())
	}

	routeNumber, err := routeRepo.NextRouteNumber(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := route.NewRoute(
		kernel.NewUUID(),
		routeNumber,
		command.Name(),
		command.Date(),
		command.DriverID(),
		command.Notes(),
		orderIDs,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = routeRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}

func missingOrderIDs(requested []kernel.UUID, found []*order.Order) []kernel.UUID {
	byID := make(map[kernel.UUID]struct{}, len(found))
	for _, o := range found {
		byID[o.ID()] = struct{}{}
	}

	var missing []kernel.UUID
	for _, id := range requested {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func orderNumberByID(orders []*order.Order, id kernel.UUID) int {
	for _, o := range orders {
		if o.ID().IsEqual(id) {
			return o.OrderNumber()
		}
	}
	return 0
}
