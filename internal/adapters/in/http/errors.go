package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse maps an application error to a stable status code and a
// machine-readable message. Unrecognized errors become opaque 500s so
// internals never leak to clients.
func errorResponse(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), Error{
		Code:    statusCodeFor(err),
		Message: messageFor(err),
	})
}

func statusCodeFor(err error) int {
	switch {
	case isNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, queries.ErrUnauthorized):
		return http.StatusForbidden
	case isValidationFailure(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	if statusCodeFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

func isNotFound(err error) bool {
	return errors.Is(err, commands.ErrRouteNotFound) ||
		errors.Is(err, commands.ErrDriverNotFound) ||
		errors.Is(err, route.ErrStopNotFound) ||
		errors.Is(err, queries.ErrRouteNotFound) ||
		errors.Is(err, queries.ErrOrderNotFound) ||
		errors.Is(err, errs.ErrObjectNotFound)
}

func isValidationFailure(err error) bool {
	return errors.Is(err, commands.ErrOrdersNotFound) ||
		errors.Is(err, commands.ErrInvalidOrderType) ||
		errors.Is(err, commands.ErrOrderAlreadyRouted) ||
		errors.Is(err, commands.ErrInvalidSignatureFormat) ||
		errors.Is(err, commands.ErrDateIsRequired) ||
		errors.Is(err, commands.ErrOrderIDsAreRequired) ||
		errors.Is(err, commands.ErrStopIDsAreRequired) ||
		errors.Is(err, queries.ErrTokenIsRequired) ||
		errors.Is(err, route.ErrRouteAlreadyCompleted) ||
		errors.Is(err, route.ErrStopCountMismatch) ||
		errors.Is(err, route.ErrForeignStop) ||
		errors.Is(err, route.ErrRouteNotPlanned) ||
		errors.Is(err, route.ErrStatusRegression) ||
		errors.Is(err, route.ErrDuplicateOrder) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
