package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order in the wider retail
// application. The dispatch core reads every status but writes only one
// transition: Completed, applied when the order's route stop is delivered.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is a freshly entered order awaiting confirmation.
	Pending

	// Confirmed is an order accepted for fulfillment.
	Confirmed

	// InProduction is an order being arranged.
	InProduction

	// Ready is an arranged order waiting for pickup or dispatch.
	Ready

	// OutForDelivery is an order handed to a driver.
	OutForDelivery

	// Completed is the terminal status: delivered or picked up.
	Completed

	// Cancelled is the terminal status for abandoned orders.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		InProduction:   "InProduction",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// Validate checks that the status is one of the defined lifecycle values.
// Unknown (0) is invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
