package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/routetoken"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers.
type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	tokens         *routetoken.Service
	signatureStore ports.SignatureStore
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	tokens *routetoken.Service,
	signatureStore ports.SignatureStore,
) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:         tokens,
		signatureStore: signatureStore,
	}
}

func (c *CompositionRoot) Tokens() *routetoken.Service {
	return c.tokens
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.CreateRouteUoWFactory = FuncCreateRouteUoWFactory(func() commands.CreateRouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateResequenceRouteCommandHandler() commands.ResequenceRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResequenceRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeRouteStatusCommandHandler() commands.ChangeRouteStatusCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeRouteStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRouteCommandHandler() commands.UpdateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverStopCommandHandler() commands.DeliverStopCommandHandler {
	var f commands.DeliverStopUoWFactory = FuncDeliverStopUoWFactory(func() commands.DeliverStopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverStopCommandHandler(f, c.signatureStore)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverRouteViewQueryHandler() queries.GetDriverRouteViewQueryHandler {
	return queries.NewGetDriverRouteViewQueryHandler(c.gormDB, c.tokens)
}

type FuncCreateRouteUoWFactory func() commands.CreateRouteUoW

func (f FuncCreateRouteUoWFactory) Create() commands.CreateRouteUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncDeliverStopUoWFactory func() commands.DeliverStopUoW

func (f FuncDeliverStopUoWFactory) Create() commands.DeliverStopUoW {
	return f()
}
