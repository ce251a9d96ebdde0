package http

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openapiSpec []byte

// NewRequestValidator builds echo middleware that validates incoming
// requests against the embedded OpenAPI contract before handlers run.
// Requests for paths outside the contract pass through untouched so echo
// can produce its usual 404.
func NewRequestValidator() (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("unable to load OpenAPI contract: %w", err)
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("OpenAPI contract is invalid: %w", err)
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("unable to build OpenAPI router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			match, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return badRequest(ctx, "request does not match the API contract")
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      match,
			}

			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				var requestErr *openapi3filter.RequestError
				if errors.As(err, &requestErr) {
					return badRequest(ctx, requestErr.Error())
				}
				return badRequest(ctx, "request does not match the API contract")
			}

			return next(ctx)
		}
	}, nil
}
