package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoutesQueryHandler reads the dispatch board from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern:
// one query for the filtered route list, one for all of their stops.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route list queries.
// Requires a GORM database connection for query execution.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the query and returns the matching routes, newest dispatch
// date first and route number ascending within a date.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) ([]RouteView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			r.id,
			r.route_number,
			r.name,
			r.date,
			r.status,
			r.notes,
			r.started_at,
			r.completed_at,
			e.id,
			e.name,
			e.phone
		FROM routes r
		LEFT JOIN employees e ON e.id = r.driver_id
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.Date() != nil {
		sql += " AND r.date = ?"
		args = append(args, query.Date().Format("2006-01-02"))
	}
	if query.DriverID() != nil {
		sql += " AND r.driver_id = ?"
		args = append(args, query.DriverID().Bytes())
	}
	if query.Status() != nil {
		sql += " AND r.status = ?"
		args = append(args, int(*query.Status()))
	}

	sql += " ORDER BY r.date DESC, r.route_number ASC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteView, 0)
	routeIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var view RouteView
		var id uuid.UUID
		var status int
		var driverID uuid.NullUUID
		var driverName, driverPhone *string

		err = rows.Scan(
			&id,
			&view.RouteNumber,
			&view.Name,
			&view.Date,
			&status,
			&view.Notes,
			&view.StartedAt,
			&view.CompletedAt,
			&driverID,
			&driverName,
			&driverPhone,
		)
		if err != nil {
			return nil, err
		}

		routeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = routeID
		view.Status = route.Status(status).WireString()

		if driverID.Valid && driverName != nil && driverPhone != nil {
			dID, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if dErr != nil {
				return nil, dErr
			}
			view.Driver = &DriverSummary{ID: dID, Name: *driverName, Phone: *driverPhone}
		}

		routes = append(routes, view)
		routeIDs = append(routeIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(routes) == 0 {
		return routes, nil
	}

	stopsByRoute, err := loadStopViews(ctx, h.db, routeIDs)
	if err != nil {
		return nil, err
	}

	for i := range routes {
		routes[i].Stops = stopsByRoute[routes[i].ID.Bytes()]
		if routes[i].Stops == nil {
			routes[i].Stops = make([]StopView, 0)
		}
	}

	return routes, nil
}

// loadStopViews fetches the ordered stop lists for the given routes in one
// query, joined with their order summaries.
func loadStopViews(
	ctx context.Context, db *gorm.DB, routeIDs []uuid.UUID,
) (map[uuid.UUID][]StopView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.route_id,
			s.sequence,
			s.status,
			s.delivered_at,
			s.driver_notes,
			s.signature_url,
			s.recipient_name,
			o.id,
			o.order_number,
			o.recipient_first_name,
			o.recipient_last_name,
			o.recipient_phone,
			o.address_line1,
			o.address_city,
			o.delivery_time,
			o.special_instructions
		FROM route_stops s
		JOIN orders o ON o.id = s.order_id
		WHERE s.route_id IN ?
		ORDER BY s.route_id, s.sequence
	`, routeIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stopsByRoute := make(map[uuid.UUID][]StopView, len(routeIDs))

	for rows.Next() {
		var view StopView
		var stopID, routeID, orderID uuid.UUID
		var stopStatus int
		var firstName, lastName string
		var deliveryTime, instructions string

		err = rows.Scan(
			&stopID,
			&routeID,
			&view.Sequence,
			&stopStatus,
			&view.DeliveredAt,
			&view.DriverNotes,
			&view.SignatureURL,
			&view.RecipientName,
			&orderID,
			&view.Order.OrderNumber,
			&firstName,
			&lastName,
			&view.Order.RecipientPhone,
			&view.Order.AddressLine1,
			&view.Order.City,
			&deliveryTime,
			&instructions,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(stopID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = id
		view.Status = route.StopStatus(stopStatus).WireString()

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.Order.ID = oID
		view.Order.RecipientName = recipientFullName(firstName, lastName)
		view.Order.DeliveryTime = optionalString(deliveryTime)
		view.Order.SpecialInstructions = optionalString(instructions)

		stopsByRoute[routeID] = append(stopsByRoute[routeID], view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stopsByRoute, nil
}

func recipientFullName(firstName, lastName string) string {
	if firstName == "" {
		return lastName
	}
	if lastName == "" {
		return firstName
	}
	return firstName + " " + lastName
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
