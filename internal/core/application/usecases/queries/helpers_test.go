package queries_test

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
)

// mockAggregateTracker is a no-op tracker for seeding fixtures through the
// repositories.
type mockAggregateTracker struct{}

func (*mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// makeDeliveryOrder builds a Ready delivery order fixture with two line items.
func makeDeliveryOrder(orderNumber int, deliveryTime string) *order.Order {
	deliveryDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	o, _ := order.RestoreOrder(
		kernel.NewUUID(),
		orderNumber,
		order.TypeDelivery,
		order.Ready,
		order.Recipient{FirstName: "Rosa", LastName: "Thorne", Phone: "416-555-0188"},
		order.Address{
			Line1:      "12 Petal Lane",
			City:       "Toronto",
			Province:   "ON",
			PostalCode: "M5V 2T6",
			Country:    "CA",
		},
		&deliveryDate,
		deliveryTime,
		"ring twice",
		"With love",
		[]order.Item{
			{ID: kernel.NewUUID(), Name: "Dozen red roses", Quantity: 1},
			{ID: kernel.NewUUID(), Name: "Glass vase", Quantity: 2},
		},
		createdAt,
	)
	return o
}

// makeRoute builds a planned route fixture with one pending stop per order ID.
func makeRoute(routeNumber int, date time.Time, driverID *kernel.UUID, orderIDs ...kernel.UUID) *route.Route {
	r, _ := route.NewRoute(kernel.NewUUID(), routeNumber, nil, date, driverID, nil, orderIDs)
	return r
}

func strPtr(s string) *string {
	return &s
}
