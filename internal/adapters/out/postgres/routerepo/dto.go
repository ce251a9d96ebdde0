// Package routerepo provides data transfer objects and mapping functions for
// route persistence. Routes are stored across two tables, routes and
// route_stops, and always loaded and written as a whole aggregate.
package routerepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RouteNumber int        `gorm:"type:int;not null;uniqueIndex"`
	Name        *string    `gorm:"type:varchar(255)"`
	Date        time.Time  `gorm:"type:date;not null;index"`
	Status      int        `gorm:"type:int;not null"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	Notes       *string    `gorm:"type:text"`
	StartedAt   *time.Time
	CompletedAt *time.Time
	Stops       []StopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// StopDTO represents one stop row. The unique index on order_id enforces the
// one-stop-per-order invariant at the storage level, backing up the
// application-level check in route assignment.
type StopDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID       uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Sequence      int       `gorm:"type:int;not null"`
	Status        int       `gorm:"type:int;not null"`
	DeliveredAt   *time.Time
	DriverNotes   *string `gorm:"type:text"`
	SignatureURL  *string `gorm:"column:signature_url;type:text"`
	RecipientName *string `gorm:"type:varchar(255)"`
}

// TableName overrides GORM's default naming to use "route_stops".
func (StopDTO) TableName() string {
	return "route_stops"
}

// fromDomain converts a route aggregate to its database representation,
// stops included.
func fromDomain(aggregate *route.Route) RouteDTO {
	routeID := aggregate.ID().Bytes()

	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	stops := make([]StopDTO, 0, len(aggregate.Stops()))
	for _, stop := range aggregate.Stops() {
		stops = append(stops, StopDTO{
			ID:            stop.ID().Bytes(),
			RouteID:       routeID,
			OrderID:       stop.OrderID().Bytes(),
			Sequence:      stop.Sequence(),
			Status:        int(stop.Status()),
			DeliveredAt:   stop.DeliveredAt(),
			DriverNotes:   stop.DriverNotes(),
			SignatureURL:  stop.SignatureURL(),
			RecipientName: stop.RecipientName(),
		})
	}

	return RouteDTO{
		ID:          routeID,
		RouteNumber: aggregate.RouteNumber(),
		Name:        aggregate.Name(),
		Date:        aggregate.Date(),
		Status:      int(aggregate.Status()),
		DriverID:    driverID,
		Notes:       aggregate.Notes(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Stops:       stops,
	}
}

// toDomain converts a database DTO to a route aggregate using RestoreRoute.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		stop, stopErr := stopToDomain(stopDTO)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return route.RestoreRoute(
		id,
		dto.RouteNumber,
		dto.Name,
		dto.Date,
		route.Status(dto.Status),
		driverID,
		dto.Notes,
		dto.StartedAt,
		dto.CompletedAt,
		stops,
	)
}

// stopToDomain converts a stop DTO to its domain entity using RestoreStop.
func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreStop(
		id,
		routeID,
		orderID,
		dto.Sequence,
		route.StopStatus(dto.Status),
		dto.DeliveredAt,
		dto.DriverNotes,
		dto.SignatureURL,
		dto.RecipientName,
	)
}
