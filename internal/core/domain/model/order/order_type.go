package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Type distinguishes how an order leaves the shop. Only Delivery orders are
// eligible for route assignment.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeDelivery is an order delivered by a driver.
	TypeDelivery

	// TypePickup is an order collected in store.
	TypePickup
)

// Validate checks that the type is Delivery or Pickup.
func (t Type) Validate() error {
	if t != TypeDelivery && t != TypePickup {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeDelivery:
		return "Delivery"
	case TypePickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}
