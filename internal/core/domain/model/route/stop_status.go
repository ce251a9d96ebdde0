package route

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// StopStatus represents the state of a single stop.
// Pending -> Delivered is the only transition; Delivered is terminal.
// The set is deliberately open-ended so a Failed or Skipped state can be
// added without reshaping the aggregate.
type StopStatus int

const (
	// StopStatusUnknown represents an invalid or undefined status.
	StopStatusUnknown StopStatus = iota

	// StopStatusPending is a stop not yet delivered.
	StopStatusPending

	// StopStatusDelivered is a delivered stop. Terminal.
	StopStatusDelivered
)

// Validate checks that the status is Pending or Delivered.
func (s StopStatus) Validate() error {
	if s != StopStatusPending && s != StopStatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause("stop status is invalid",
			fmt.Errorf("%d is not a valid stop status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (s StopStatus) String() string {
	switch s {
	case StopStatusPending:
		return "Pending"
	case StopStatusDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// WireString returns the wire representation used by the HTTP layer.
func (s StopStatus) WireString() string {
	switch s {
	case StopStatusPending:
		return "PENDING"
	case StopStatusDelivered:
		return "DELIVERED"
	default:
		return "UNKNOWN"
	}
}
