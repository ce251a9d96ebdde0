package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRouteQueryHandler reads one route view from the database.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteQueryHandler creates a handler for single-route queries.
func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle executes the query. Returns ErrRouteNotFound when no route matches.
func (h GetRouteQueryHandler) Handle(
	ctx context.Context,
	query GetRouteQuery,
) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE r.id = ?
	`, query.RouteID().Bytes()).Row()

	var view RouteView
	var id uuid.UUID
	var status int
	var driverID uuid.NullUUID
	var driverName, driverPhone *string

	err := row.Scan(
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
	if errors.Is(err, sql.ErrNoRows) {
		return RouteView{}, ErrRouteNotFound
	}
	if err != nil {
		return RouteView{}, err
	}

	routeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RouteView{}, err
	}
	view.ID = routeID
	view.Status = route.Status(status).WireString()

	if driverID.Valid && driverName != nil && driverPhone != nil {
		dID, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if dErr != nil {
			return RouteView{}, dErr
		}
		view.Driver = &DriverSummary{ID: dID, Name: *driverName, Phone: *driverPhone}
	}

	stopsByRoute, err := loadStopViews(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return RouteView{}, err
	}

	view.Stops = stopsByRoute[id]
	if view.Stops == nil {
		view.Stops = make([]StopView, 0)
	}

	return view, nil
}
