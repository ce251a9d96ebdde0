package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/employeerepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/routetoken"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDriverRouteViewQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tokens    *routetoken.Service
	handler   queries.GetDriverRouteViewQueryHandler
	routeRepo *routerepo.GormRouteRepository
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&routerepo.RouteDTO{},
		&routerepo.StopDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&employeerepo.EmployeeDTO{},
	)
	suite.Require().NoError(err)

	suite.tokens, err = routetoken.NewService("test-secret", "https://flowers.example.com")
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDriverRouteViewQueryHandler(db, suite.tokens)
	suite.routeRepo = routerepo.NewGormRouteRepository(db, &mockAggregateTracker{})
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE routes, route_stops, orders, order_items, employees").Error
	suite.Require().NoError(err)
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) TestHandle_RoutedOrder_ReturnsRouteView() {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	err := suite.db.Create(&employeerepo.EmployeeDTO{
		ID:    driverID.Bytes(),
		Name:  "Fern Dalloway",
		Phone: "416-555-0102",
	}).Error
	suite.Require().NoError(err)

	order1 := makeDeliveryOrder(3001, "09:30")
	order2 := makeDeliveryOrder(3002, "14:00")
	suite.Require().NoError(suite.orderRepo.Add(ctx, order1))
	suite.Require().NoError(suite.orderRepo.Add(ctx, order2))

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	testRoute := makeRoute(9, date, &driverID, order1.ID(), order2.ID())
	suite.Require().NoError(suite.routeRepo.Add(ctx, testRoute))

	token := suite.tokens.Issue(order2.ID().String(), time.Now().UTC())
	query, err := queries.NewGetDriverRouteViewQuery(token)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(queries.ViewTypeRoute, response.Type)
	suite.Nil(response.DeliveryDate)
	suite.Nil(response.CardMessage)

	suite.Equal(order2.ID(), response.Order.ID)
	suite.Equal(3002, response.Order.OrderNumber)
	suite.Equal("Rosa Thorne", response.Order.RecipientName)
	suite.Equal("12 Petal Lane", response.Order.AddressLine1)
	suite.Equal("ON", response.Order.Province)
	suite.Equal("M5V 2T6", response.Order.PostalCode)
	suite.Equal("CA", response.Order.Country)
	suite.Require().NotNil(response.Order.DeliveryTime)
	suite.Equal("14:00", *response.Order.DeliveryTime)

	suite.Require().Len(response.Order.Items, 2)
	suite.Equal("Dozen red roses", response.Order.Items[0].Name)
	suite.Equal(1, response.Order.Items[0].Quantity)
	suite.Equal("Glass vase", response.Order.Items[1].Name)
	suite.Equal(2, response.Order.Items[1].Quantity)

	suite.Require().NotNil(response.Route)
	suite.Equal(testRoute.ID(), response.Route.ID)
	suite.Equal(9, response.Route.RouteNumber)
	suite.Equal("PLANNED", response.Route.Status)
	suite.Require().NotNil(response.Route.DriverName)
	suite.Equal("Fern Dalloway", *response.Route.DriverName)
	suite.Require().NotNil(response.Route.DriverPhone)
	suite.Equal("416-555-0102", *response.Route.DriverPhone)

	suite.Require().Len(response.Stops, 2)
	suite.False(response.Stops[0].IsCurrent)
	suite.True(response.Stops[1].IsCurrent)
	suite.Equal(order1.ID(), response.Stops[0].Order.ID)
	suite.Equal(order2.ID(), response.Stops[1].Order.ID)
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) TestHandle_UnroutedOrder_ReturnsStandaloneView() {
	ctx := context.Background()

	o := makeDeliveryOrder(3003, "11:00")
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	token := suite.tokens.Issue(o.ID().String(), time.Now().UTC())
	query, err := queries.NewGetDriverRouteViewQuery(token)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(queries.ViewTypeStandalone, response.Type)
	suite.Nil(response.Route)
	suite.Empty(response.Stops)

	suite.Equal(o.ID(), response.Order.ID)
	suite.Equal(3003, response.Order.OrderNumber)
	suite.Require().NotNil(response.DeliveryDate)
	suite.Equal("2025-06-02", response.DeliveryDate.Format("2006-01-02"))
	suite.Require().NotNil(response.CardMessage)
	suite.Equal("With love", *response.CardMessage)
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) TestHandle_MalformedToken_ReturnsUnauthorized() {
	query, err := queries.NewGetDriverRouteViewQuery("garbage")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, queries.ErrUnauthorized)
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) TestHandle_TamperedToken_ReturnsUnauthorized() {
	orderID := kernel.NewUUID()
	token := suite.tokens.Issue(orderID.String(), time.Now().UTC())

	otherService, err := routetoken.NewService("other-secret", "https://flowers.example.com")
	suite.Require().NoError(err)
	tampered := otherService.Issue(orderID.String(), time.Now().UTC())
	suite.NotEqual(token, tampered)

	query, err := queries.NewGetDriverRouteViewQuery(tampered)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, queries.ErrUnauthorized)
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) TestHandle_ExpiredToken_ReturnsUnauthorized() {
	orderID := kernel.NewUUID()
	issuedAt := time.Now().UTC().Add(-routetoken.TTL - time.Hour)
	token := suite.tokens.Issue(orderID.String(), issuedAt)

	query, err := queries.NewGetDriverRouteViewQuery(token)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, queries.ErrUnauthorized)
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) TestHandle_TokenForMissingOrder_ReturnsOrderNotFound() {
	token := suite.tokens.Issue(kernel.NewUUID().String(), time.Now().UTC())

	query, err := queries.NewGetDriverRouteViewQuery(token)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, queries.ErrOrderNotFound)
}

func (suite *GetDriverRouteViewQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDriverRouteViewQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetDriverRouteViewQuery constructor")
}

func TestGetDriverRouteViewQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDriverRouteViewQueryHandlerTestSuite))
}
