package commands

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	// ErrRouteNotFound is returned when a command addresses a route that does
	// not exist.
	ErrRouteNotFound = errors.New("route not found")

	// ErrDriverNotFound is returned when a route references a driver that is
	// not in the employee directory.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrOrdersNotFound is the sentinel for OrdersNotFoundError.
	ErrOrdersNotFound = errors.New("one or more orders were not found")

	// ErrInvalidOrderType is the sentinel for InvalidOrderTypeError.
	ErrInvalidOrderType = errors.New("order is not a delivery order")

	// ErrOrderAlreadyRouted is the sentinel for OrderAlreadyRoutedError.
	ErrOrderAlreadyRouted = errors.New("order is already assigned to a route")

	// ErrInvalidSignatureFormat is returned when a proof-of-delivery payload
	// is not a base64-encoded PNG data URL.
	ErrInvalidSignatureFormat = errors.New("signature must be a base64-encoded PNG data URL")
)

// OrdersNotFoundError reports exactly which requested orders do not exist.
type OrdersNotFoundError struct {
	IDs []kernel.UUID
}

func (e *OrdersNotFoundError) Error() string {
	ids := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("%s: %s", ErrOrdersNotFound, strings.Join(ids, ", "))
}

func (e *OrdersNotFoundError) Unwrap() error {
	return ErrOrdersNotFound
}

// InvalidOrderTypeError names the order that is not a delivery order.
type InvalidOrderTypeError struct {
	OrderNumber int
}

func (e *InvalidOrderTypeError) Error() string {
	return fmt.Sprintf("order %d is not a delivery order", e.OrderNumber)
}

func (e *InvalidOrderTypeError) Unwrap() error {
	return ErrInvalidOrderType
}

// OrderAlreadyRoutedError names the order that already has a route stop.
type OrderAlreadyRoutedError struct {
	OrderNumber int
}

func (e *OrderAlreadyRoutedError) Error() string {
	return fmt.Sprintf("order %d is already assigned to a route", e.OrderNumber)
}

func (e *OrderAlreadyRoutedError) Unwrap() error {
	return ErrOrderAlreadyRouted
}
