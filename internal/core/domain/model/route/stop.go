package route

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrStopIsNotConstructed is returned when a Stop instance was not created
// through NewStop or RestoreStop.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop or RestoreStop constructor")

// Stop binds one order to one position within a route. Stops are created in
// bulk when the route is created and are never added afterwards; only their
// sequence (via Resequence) and delivery fields (via DeliverStop) change.
type Stop struct {
	id       kernel.UUID
	routeID  kernel.UUID
	orderID  kernel.UUID
	sequence int
	status   StopStatus

	deliveredAt   *time.Time
	driverNotes   *string
	signatureURL  *string
	recipientName *string

	isConstructed bool
}

// NewStop creates a pending stop at the given 1-based sequence position.
func NewStop(id, routeID, orderID kernel.UUID, sequence int) (*Stop, error) {
	if err := errors.Join(
		id.Validate(),
		routeID.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}

	if sequence < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("sequence is invalid",
			fmt.Errorf("%d is not a valid 1-based sequence", sequence))
	}

	return &Stop{
		id:            id,
		routeID:       routeID,
		orderID:       orderID,
		sequence:      sequence,
		status:        StopStatusPending,
		isConstructed: true,
	}, nil
}

// RestoreStop rehydrates a stop from persistence.
func RestoreStop(
	id, routeID, orderID kernel.UUID,
	sequence int,
	status StopStatus,
	deliveredAt *time.Time,
	driverNotes, signatureURL, recipientName *string,
) (*Stop, error) {
	stop, err := NewStop(id, routeID, orderID, sequence)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	stop.status = status
	stop.deliveredAt = deliveredAt
	stop.driverNotes = driverNotes
	stop.signatureURL = signatureURL
	stop.recipientName = recipientName
	return stop, nil
}

// Validate ensures the Stop instance was created through a constructor.
func (s *Stop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// ID returns the stop's unique identifier.
func (s *Stop) ID() kernel.UUID {
	return s.id
}

// RouteID returns the identifier of the owning route.
func (s *Stop) RouteID() kernel.UUID {
	return s.routeID
}

// OrderID returns the identifier of the order delivered at this stop.
func (s *Stop) OrderID() kernel.UUID {
	return s.orderID
}

// Sequence returns the stop's 1-based position within its route.
func (s *Stop) Sequence() int {
	return s.sequence
}

// Status returns the stop's current status.
func (s *Stop) Status() StopStatus {
	return s.status
}

// IsDelivered reports whether the stop has reached its terminal status.
func (s *Stop) IsDelivered() bool {
	return s.status == StopStatusDelivered
}

// DeliveredAt returns when the stop was delivered, or nil.
func (s *Stop) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// DriverNotes returns the driver's free-text note captured at delivery, or nil.
func (s *Stop) DriverNotes() *string {
	return s.driverNotes
}

// SignatureURL returns the stored proof-of-delivery image URL, or nil.
func (s *Stop) SignatureURL() *string {
	return s.signatureURL
}

// RecipientName returns the name of whoever actually received the delivery,
// or nil. May differ from the order's on-file recipient.
func (s *Stop) RecipientName() *string {
	return s.recipientName
}

// deliver flips the stop to Delivered and records the proof-of-delivery
// fields. Only the Route aggregate calls this, inside DeliverStop.
func (s *Stop) deliver(now time.Time, driverNotes, signatureURL, recipientName *string) {
	s.status = StopStatusDelivered
	s.deliveredAt = &now
	s.driverNotes = driverNotes
	s.signatureURL = signatureURL
	s.recipientName = recipientName
}

// setSequence is called by Resequence only.
func (s *Stop) setSequence(sequence int) {
	s.sequence = sequence
}
