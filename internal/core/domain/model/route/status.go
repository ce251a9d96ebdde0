package route

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// Transitions are monotonic:
//
//	Planned ──> InProgress ──> Completed
//
// Delivering the only pending stop of a Planned route may skip InProgress
// and complete the route directly; a Completed route never moves again.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPlanned is the initial status of a freshly created route.
	StatusPlanned

	// StatusInProgress is a route with at least one delivered stop.
	StatusInProgress

	// StatusCompleted is a route whose every stop has been delivered.
	// This is a final state.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPlanned:    "Planned",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
	}
}

// Validate checks that the status is one of Planned, InProgress, Completed.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("route status is invalid",
			fmt.Errorf("%d is not a valid route status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("route status is invalid",
			fmt.Errorf("%d is not a valid route status", s))
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

// CanTransitionTo reports whether moving to target preserves monotonicity.
// Staying on the current status is allowed, moving backwards is not.
func (s Status) CanTransitionTo(target Status) bool {
	return target >= s
}

// StatusFromString parses the wire representation used by the HTTP layer
// ("PLANNED", "IN_PROGRESS", "COMPLETED").
func StatusFromString(s string) (Status, error) {
	switch s {
	case "PLANNED":
		return StatusPlanned, nil
	case "IN_PROGRESS":
		return StatusInProgress, nil
	case "COMPLETED":
		return StatusCompleted, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("route status is invalid",
			fmt.Errorf("%q is not a valid route status", s))
	}
}

// WireString returns the wire representation used by the HTTP layer.
func (s Status) WireString() string {
	switch s {
	case StatusPlanned:
		return "PLANNED"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}
