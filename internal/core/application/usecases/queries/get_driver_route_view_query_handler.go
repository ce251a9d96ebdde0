package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/routetoken"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrUnauthorized is returned for any token failure. Malformed, tampered
	// and expired tokens are deliberately indistinguishable to the caller.
	ErrUnauthorized = errors.New("invalid or expired token")

	// ErrOrderNotFound is returned when the token verifies but its order no
	// longer exists.
	ErrOrderNotFound = errors.New("order not found")
)

// GetDriverRouteViewQueryHandler verifies a capability token and assembles
// the driver's view of the delivery it grants access to.
type GetDriverRouteViewQueryHandler struct {
	db     *gorm.DB
	tokens *routetoken.Service
}

// NewGetDriverRouteViewQueryHandler creates a handler for driver view queries.
func NewGetDriverRouteViewQueryHandler(
	db *gorm.DB, tokens *routetoken.Service,
) GetDriverRouteViewQueryHandler {
	return GetDriverRouteViewQueryHandler{db: db, tokens: tokens}
}

// Handle verifies the token and returns the driver view. Token failures of
// any kind collapse into ErrUnauthorized so responses cannot be used as an
// oracle to probe token validity classes.
func (h GetDriverRouteViewQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRouteViewQuery,
) (GetDriverRouteViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverRouteViewQueryResponse{}, err
	}

	rawOrderID, err := h.tokens.Verify(query.Token(), time.Now().UTC())
	if err != nil {
		return GetDriverRouteViewQueryResponse{}, ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(rawOrderID)
	if err != nil {
		return GetDriverRouteViewQueryResponse{}, ErrUnauthorized
	}

	orderView, deliveryDate, cardMessage, err := h.loadOrder(ctx, orderID)
	if err != nil {
		return GetDriverRouteViewQueryResponse{}, err
	}

	routeSummary, routeID, currentStopID, err := h.findRouteForOrder(ctx, orderID)
	if err != nil {
		return GetDriverRouteViewQueryResponse{}, err
	}

	if routeSummary == nil {
		return GetDriverRouteViewQueryResponse{
			Type:         ViewTypeStandalone,
			Order:        orderView,
			DeliveryDate: deliveryDate,
			CardMessage:  cardMessage,
		}, nil
	}

	stopsByRoute, err := loadStopViews(ctx, h.db, []uuid.UUID{routeID})
	if err != nil {
		return GetDriverRouteViewQueryResponse{}, err
	}

	stops := make([]DriverStopView, 0, len(stopsByRoute[routeID]))
	for _, stopView := range stopsByRoute[routeID] {
		stops = append(stops, DriverStopView{
			StopView:  stopView,
			IsCurrent: stopView.ID.IsEqual(currentStopID),
		})
	}

	return GetDriverRouteViewQueryResponse{
		Type:  ViewTypeRoute,
		Order: orderView,
		Route: routeSummary,
		Stops: stops,
	}, nil
}

// loadOrder reads the order payload plus the standalone-view extras.
func (h GetDriverRouteViewQueryHandler) loadOrder(
	ctx context.Context, orderID kernel.UUID,
) (DriverOrderView, *time.Time, *string, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.recipient_first_name,
			o.recipient_last_name,
			o.recipient_phone,
			o.address_line1,
			o.address_city,
			o.address_province,
			o.address_postal_code,
			o.address_country,
			o.delivery_date,
			o.delivery_time,
			o.special_instructions,
			o.card_message
		FROM orders o
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var view DriverOrderView
	var id uuid.UUID
	var firstName, lastName string
	var deliveryDate *time.Time
	var deliveryTime, instructions, cardMessage string

	err := row.Scan(
		&id,
		&view.OrderNumber,
		&firstName,
		&lastName,
		&view.RecipientPhone,
		&view.AddressLine1,
		&view.City,
		&view.Province,
		&view.PostalCode,
		&view.Country,
		&deliveryDate,
		&deliveryTime,
		&instructions,
		&cardMessage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return DriverOrderView{}, nil, nil, ErrOrderNotFound
	}
	if err != nil {
		return DriverOrderView{}, nil, nil, err
	}

	view.ID = orderID
	view.RecipientName = recipientFullName(firstName, lastName)
	view.DeliveryTime = optionalString(deliveryTime)
	view.SpecialInstructions = optionalString(instructions)

	view.Items, err = h.loadItems(ctx, orderID)
	if err != nil {
		return DriverOrderView{}, nil, nil, err
	}

	return view, deliveryDate, optionalString(cardMessage), nil
}

func (h GetDriverRouteViewQueryHandler) loadItems(
	ctx context.Context, orderID kernel.UUID,
) ([]DriverItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DriverItemView, 0)
	for rows.Next() {
		var item DriverItemView
		if err = rows.Scan(&item.Name, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// findRouteForOrder locates the stop carrying the order, if any, and returns
// the owning route's summary. A nil summary means the order is unrouted.
func (h GetDriverRouteViewQueryHandler) findRouteForOrder(
	ctx context.Context, orderID kernel.UUID,
) (*DriverRouteSummary, uuid.UUID, kernel.UUID, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			r.id,
			r.route_number,
			r.status,
			e.name,
			e.phone
		FROM route_stops s
		JOIN routes r ON r.id = s.route_id
		LEFT JOIN employees e ON e.id = r.driver_id
		WHERE s.order_id = ?
	`, orderID.Bytes()).Row()

	var stopID, routeID uuid.UUID
	var routeNumber, status int
	var driverName, driverPhone *string

	err := row.Scan(&stopID, &routeID, &routeNumber, &status, &driverName, &driverPhone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, uuid.UUID{}, kernel.UUID{}, nil
	}
	if err != nil {
		return nil, uuid.UUID{}, kernel.UUID{}, err
	}

	rID, err := kernel.UUIDFromBytes(routeID[:])
	if err != nil {
		return nil, uuid.UUID{}, kernel.UUID{}, err
	}
	sID, err := kernel.UUIDFromBytes(stopID[:])
	if err != nil {
		return nil, uuid.UUID{}, kernel.UUID{}, err
	}

	return &DriverRouteSummary{
		ID:          rID,
		RouteNumber: routeNumber,
		Status:      route.Status(status).WireString(),
		DriverName:  driverName,
		DriverPhone: driverPhone,
	}, routeID, sID, nil
}
