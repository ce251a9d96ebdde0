package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/route"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the uniform error payload of the dispatch API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateRouteRequest is the body of POST /routes.
type CreateRouteRequest struct {
	Name     *string            `json:"name,omitempty"`
	Date     openapi_types.Date `json:"date"`
	DriverID *uuid.UUID         `json:"driverId,omitempty"`
	OrderIDs []uuid.UUID        `json:"orderIds"`
	Notes    *string            `json:"notes,omitempty"`
}

// ResequenceRouteRequest is the body of PUT /routes/:routeId/resequence.
// StopIDs must list every stop of the route in its new visiting order.
type ResequenceRouteRequest struct {
	StopIDs []uuid.UUID `json:"stopIds"`
}

// ChangeRouteStatusRequest is the body of PATCH /routes/:routeId/status.
type ChangeRouteStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRouteRequest is the body of PATCH /routes/:routeId. Omitted fields
// are left unchanged.
type UpdateRouteRequest struct {
	Name     *string    `json:"name,omitempty"`
	DriverID *uuid.UUID `json:"driverId,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
}

// DeliverStopRequest is the body of POST /driver/route/stop/:stopId/deliver.
type DeliverStopRequest struct {
	DriverNotes      *string `json:"driverNotes,omitempty"`
	SignatureDataURL *string `json:"signatureDataUrl,omitempty"`
	RecipientName    *string `json:"recipientName,omitempty"`
}

// Route is the dispatch board representation of a route.
type Route struct {
	ID          uuid.UUID          `json:"id"`
	RouteNumber int                `json:"routeNumber"`
	Name        *string            `json:"name,omitempty"`
	Date        openapi_types.Date `json:"date"`
	Status      string             `json:"status"`
	Notes       *string            `json:"notes,omitempty"`
	StartedAt   *time.Time         `json:"startedAt,omitempty"`
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
	Driver      *Driver            `json:"driver,omitempty"`
	Stops       []Stop             `json:"stops"`
}

// Driver identifies the employee assigned to a route.
type Driver struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// Stop is one stop of a route, with the order summary needed to deliver it.
type Stop struct {
	ID            uuid.UUID  `json:"id"`
	Sequence      int        `json:"sequence"`
	Status        string     `json:"status"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
	DriverNotes   *string    `json:"driverNotes,omitempty"`
	SignatureURL  *string    `json:"signatureUrl,omitempty"`
	RecipientName *string    `json:"recipientName,omitempty"`
	Order         StopOrder  `json:"order"`
}

// StopOrder is the slice of an order shown on a stop.
type StopOrder struct {
	ID                  uuid.UUID `json:"id"`
	OrderNumber         int       `json:"orderNumber"`
	RecipientName       string    `json:"recipientName"`
	RecipientPhone      string    `json:"recipientPhone"`
	AddressLine1        string    `json:"addressLine1"`
	City                string    `json:"city"`
	DeliveryTime        *string   `json:"deliveryTime,omitempty"`
	SpecialInstructions *string   `json:"specialInstructions,omitempty"`
}

// DeliveredStop is the stop state returned after a delivery.
type DeliveredStop struct {
	ID            uuid.UUID  `json:"id"`
	RouteID       uuid.UUID  `json:"routeId"`
	OrderID       uuid.UUID  `json:"orderId"`
	Sequence      int        `json:"sequence"`
	Status        string     `json:"status"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
	DriverNotes   *string    `json:"driverNotes,omitempty"`
	SignatureURL  *string    `json:"signatureUrl,omitempty"`
	RecipientName *string    `json:"recipientName,omitempty"`
}

// QRCode is the response of GET /driver/qr/:orderId: the rendered code plus
// the link and raw token it encodes.
type QRCode struct {
	QRCode string `json:"qrCode"`
	URL    string `json:"url"`
	Token  string `json:"token"`
}

// DriverRouteView is the response of GET /driver/route. Type discriminates
// between an order on a route and a standalone delivery.
type DriverRouteView struct {
	Type         string              `json:"type"`
	Order        DriverOrder         `json:"order"`
	Route        *DriverRouteSummary `json:"route,omitempty"`
	Stops        []DriverStop        `json:"stops,omitempty"`
	DeliveryDate *openapi_types.Date `json:"deliveryDate,omitempty"`
	CardMessage  *string             `json:"cardMessage,omitempty"`
}

// DriverOrder is the full delivery payload for the token's order.
type DriverOrder struct {
	ID                  uuid.UUID    `json:"id"`
	OrderNumber         int          `json:"orderNumber"`
	RecipientName       string       `json:"recipientName"`
	RecipientPhone      string       `json:"recipientPhone"`
	AddressLine1        string       `json:"addressLine1"`
	City                string       `json:"city"`
	Province            string       `json:"province"`
	PostalCode          string       `json:"postalCode"`
	Country             string       `json:"country"`
	DeliveryTime        *string      `json:"deliveryTime,omitempty"`
	SpecialInstructions *string      `json:"specialInstructions,omitempty"`
	Items               []DriverItem `json:"items"`
}

// DriverItem is one line item of the order.
type DriverItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DriverRouteSummary is the route context above the driver's stop list.
type DriverRouteSummary struct {
	ID          uuid.UUID `json:"id"`
	RouteNumber int       `json:"routeNumber"`
	Status      string    `json:"status"`
	DriverName  *string   `json:"driverName,omitempty"`
	DriverPhone *string   `json:"driverPhone,omitempty"`
}

// DriverStop is a sibling stop in the driver's route view.
type DriverStop struct {
	Stop
	IsCurrent bool `json:"isCurrent"`
}

// DeleteRouteResponse acknowledges a route deletion.
type DeleteRouteResponse struct {
	Success bool `json:"success"`
}

func toRouteResponse(view queries.RouteView) Route {
	stops := make([]Stop, 0, len(view.Stops))
	for _, stop := range view.Stops {
		stops = append(stops, toStopResponse(stop))
	}

	var driver *Driver
	if view.Driver != nil {
		driver = &Driver{
			ID:    view.Driver.ID.Bytes(),
			Name:  view.Driver.Name,
			Phone: view.Driver.Phone,
		}
	}

	return Route{
		ID:          view.ID.Bytes(),
		RouteNumber: view.RouteNumber,
		Name:        view.Name,
		Date:        openapi_types.Date{Time: view.Date},
		Status:      view.Status,
		Notes:       view.Notes,
		StartedAt:   view.StartedAt,
		CompletedAt: view.CompletedAt,
		Driver:      driver,
		Stops:       stops,
	}
}

func toStopResponse(view queries.StopView) Stop {
	return Stop{
		ID:            view.ID.Bytes(),
		Sequence:      view.Sequence,
		Status:        view.Status,
		DeliveredAt:   view.DeliveredAt,
		DriverNotes:   view.DriverNotes,
		SignatureURL:  view.SignatureURL,
		RecipientName: view.RecipientName,
		Order: StopOrder{
			ID:                  view.Order.ID.Bytes(),
			OrderNumber:         view.Order.OrderNumber,
			RecipientName:       view.Order.RecipientName,
			RecipientPhone:      view.Order.RecipientPhone,
			AddressLine1:        view.Order.AddressLine1,
			City:                view.Order.City,
			DeliveryTime:        view.Order.DeliveryTime,
			SpecialInstructions: view.Order.SpecialInstructions,
		},
	}
}

func toDeliveredStopResponse(stop *route.Stop) DeliveredStop {
	return DeliveredStop{
		ID:            stop.ID().Bytes(),
		RouteID:       stop.RouteID().Bytes(),
		OrderID:       stop.OrderID().Bytes(),
		Sequence:      stop.Sequence(),
		Status:        stop.Status().WireString(),
		DeliveredAt:   stop.DeliveredAt(),
		DriverNotes:   stop.DriverNotes(),
		SignatureURL:  stop.SignatureURL(),
		RecipientName: stop.RecipientName(),
	}
}

func toDriverRouteViewResponse(view queries.GetDriverRouteViewQueryResponse) DriverRouteView {
	items := make([]DriverItem, 0, len(view.Order.Items))
	for _, item := range view.Order.Items {
		items = append(items, DriverItem{Name: item.Name, Quantity: item.Quantity})
	}

	response := DriverRouteView{
		Type: view.Type,
		Order: DriverOrder{
			ID:                  view.Order.ID.Bytes(),
			OrderNumber:         view.Order.OrderNumber,
			RecipientName:       view.Order.RecipientName,
			RecipientPhone:      view.Order.RecipientPhone,
			AddressLine1:        view.Order.AddressLine1,
			City:                view.Order.City,
			Province:            view.Order.Province,
			PostalCode:          view.Order.PostalCode,
			Country:             view.Order.Country,
			DeliveryTime:        view.Order.DeliveryTime,
			SpecialInstructions: view.Order.SpecialInstructions,
			Items:               items,
		},
		CardMessage: view.CardMessage,
	}

	if view.DeliveryDate != nil {
		response.DeliveryDate = &openapi_types.Date{Time: *view.DeliveryDate}
	}

	if view.Route != nil {
		response.Route = &DriverRouteSummary{
			ID:          view.Route.ID.Bytes(),
			RouteNumber: view.Route.RouteNumber,
			Status:      view.Route.Status,
			DriverName:  view.Route.DriverName,
			DriverPhone: view.Route.DriverPhone,
		}
	}

	if len(view.Stops) > 0 {
		stops := make([]DriverStop, 0, len(view.Stops))
		for _, stop := range view.Stops {
			stops = append(stops, DriverStop{
				Stop:      toStopResponse(stop.StopView),
				IsCurrent: stop.IsCurrent,
			})
		}
		response.Stops = stops
	}

	return response
}
