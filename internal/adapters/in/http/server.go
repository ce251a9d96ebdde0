// Package http exposes the dispatch core over REST. Handlers translate wire
// DTOs into commands and queries and map application errors onto stable
// status codes; request shapes are validated against the embedded OpenAPI
// contract before handlers run.
package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/qr"
	"dispatch/internal/pkg/routetoken"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the dispatch use cases.
type Server struct {
	// Command handlers
	createRouteHandler       commands.CreateRouteCommandHandler
	resequenceRouteHandler   commands.ResequenceRouteCommandHandler
	changeRouteStatusHandler commands.ChangeRouteStatusCommandHandler
	updateRouteHandler       commands.UpdateRouteCommandHandler
	deleteRouteHandler       commands.DeleteRouteCommandHandler
	deliverStopHandler       commands.DeliverStopCommandHandler

	// Query handlers
	getRoutesHandler          queries.GetRoutesQueryHandler
	getRouteHandler           queries.GetRouteQueryHandler
	getDriverRouteViewHandler queries.GetDriverRouteViewQueryHandler

	tokens *routetoken.Service
}

// NewServer creates an HTTP server wired to the given command and query handlers.
func NewServer(
	createRouteHandler commands.CreateRouteCommandHandler,
	resequenceRouteHandler commands.ResequenceRouteCommandHandler,
	changeRouteStatusHandler commands.ChangeRouteStatusCommandHandler,
	updateRouteHandler commands.UpdateRouteCommandHandler,
	deleteRouteHandler commands.DeleteRouteCommandHandler,
	deliverStopHandler commands.DeliverStopCommandHandler,
	getRoutesHandler queries.GetRoutesQueryHandler,
	getRouteHandler queries.GetRouteQueryHandler,
	getDriverRouteViewHandler queries.GetDriverRouteViewQueryHandler,
	tokens *routetoken.Service,
) *Server {
	return &Server{
		createRouteHandler:        createRouteHandler,
		resequenceRouteHandler:    resequenceRouteHandler,
		changeRouteStatusHandler:  changeRouteStatusHandler,
		updateRouteHandler:        updateRouteHandler,
		deleteRouteHandler:        deleteRouteHandler,
		deliverStopHandler:        deliverStopHandler,
		getRoutesHandler:          getRoutesHandler,
		getRouteHandler:           getRouteHandler,
		getDriverRouteViewHandler: getDriverRouteViewHandler,
		tokens:                    tokens,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/routes", s.CreateRoute)
	e.GET("/routes", s.GetRoutes)
	e.GET("/routes/:routeId", s.GetRoute)
	e.PUT("/routes/:routeId/resequence", s.ResequenceRoute)
	e.PATCH("/routes/:routeId/status", s.ChangeRouteStatus)
	e.PATCH("/routes/:routeId", s.UpdateRoute)
	e.DELETE("/routes/:routeId", s.DeleteRoute)

	e.GET("/driver/qr/:orderId", s.GetDriverQR)
	e.GET("/driver/route", s.GetDriverRoute)
	e.POST("/driver/route/stop/:stopId/deliver", s.DeliverStop)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateRoute handles POST /routes - assembles a route from delivery orders.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var request CreateRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderIDs, err := toKernelUUIDs(request.OrderIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateRouteCommand(
		request.Date.Time,
		toKernelUUIDPtr(request.DriverID),
		orderIDs,
		request.Name,
		request.Notes,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	routeID, err := s.createRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithRoute(ctx, routeID, http.StatusCreated)
}

// GetRoutes handles GET /routes - the dispatch board list, filtered by
// date, driver and status.
func (s *Server) GetRoutes(ctx echo.Context) error {
	var date *time.Time
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(ctx, "date must be formatted as YYYY-MM-DD")
		}
		date = &parsed
	}

	var driverID *kernel.UUID
	if raw := ctx.QueryParam("driverId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		driverID = &parsed
	}

	var status *route.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := route.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetRoutesQuery(date, driverID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	views, err := s.getRoutesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Route, 0, len(views))
	for _, view := range views {
		response = append(response, toRouteResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRoute handles GET /routes/:routeId.
func (s *Server) GetRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithRoute(ctx, routeID, http.StatusOK)
}

// ResequenceRoute handles PUT /routes/:routeId/resequence - reorders every
// stop of a route in one shot.
func (s *Server) ResequenceRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ResequenceRouteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	stopIDs, err := toKernelUUIDs(request.StopIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewResequenceRouteCommand(routeID, stopIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.resequenceRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithRoute(ctx, routeID, http.StatusOK)
}

// ChangeRouteStatus handles PATCH /routes/:routeId/status - an explicit
// dispatcher override of the route lifecycle.
func (s *Server) ChangeRouteStatus(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ChangeRouteStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := route.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeRouteStatusCommand(routeID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeRouteStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithRoute(ctx, routeID, http.StatusOK)
}

// UpdateRoute handles PATCH /routes/:routeId - name, driver and notes only.
func (s *Server) UpdateRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateRouteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateRouteCommand(
		routeID, request.Name, toKernelUUIDPtr(request.DriverID), request.Notes,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithRoute(ctx, routeID, http.StatusOK)
}

// DeleteRoute handles DELETE /routes/:routeId - planned routes only.
func (s *Server) DeleteRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "routeId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteRouteCommand(routeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeleteRouteResponse{Success: true})
}

// GetDriverQR handles GET /driver/qr/:orderId - mints a capability token for
// the order and renders the driver link as a QR code.
func (s *Server) GetDriverQR(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	token := s.tokens.Issue(orderID.String(), time.Now().UTC())
	url := s.tokens.BuildViewURL(token)

	code, err := qr.EncodeDataURL(url)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QRCode{
		QRCode: code,
		URL:    url,
		Token:  token,
	})
}

// GetDriverRoute handles GET /driver/route - resolves a capability token
// into the driver's delivery view.
func (s *Server) GetDriverRoute(ctx echo.Context) error {
	query, err := queries.NewGetDriverRouteViewQuery(ctx.QueryParam("token"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.getDriverRouteViewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverRouteViewResponse(view))
}

// DeliverStop handles POST /driver/route/stop/:stopId/deliver - records a
// delivery with optional proof details.
func (s *Server) DeliverStop(ctx echo.Context) error {
	stopID, err := pathUUID(ctx, "stopId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request DeliverStopRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDeliverStopCommand(
		stopID, request.DriverNotes, request.SignatureDataURL, request.RecipientName,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stop, err := s.deliverStopHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveredStopResponse(stop))
}

// respondWithRoute reads the route back through the query side so mutation
// endpoints return the same view shape as the dispatch board.
func (s *Server) respondWithRoute(ctx echo.Context, routeID kernel.UUID, status int) error {
	query, err := queries.NewGetRouteQuery(routeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.getRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(status, toRouteResponse(view))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func toKernelUUIDs(ids []uuid.UUID) ([]kernel.UUID, error) {
	result := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		converted, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}
	return result, nil
}

func toKernelUUIDPtr(id *uuid.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil
	}
	return &converted
}
