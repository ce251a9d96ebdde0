package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeliverStopCommandIsNotConstructed = errors.New(
	"DeliverStopCommand must be created via NewDeliverStopCommand constructor",
)

// DeliverStopCommand represents a driver marking a stop as delivered,
// optionally with proof-of-delivery details: free-text notes, a signature
// image (base64 PNG data URL) and the name of whoever received the flowers.
type DeliverStopCommand struct { //nolint:recvcheck //using for validation
	stopID           kernel.UUID
	driverNotes      *string
	signatureDataURL *string
	recipientName    *string

	guard guard.ConstructorGuard
}

// NewDeliverStopCommand creates a stop fulfillment command.
// All proof-of-delivery fields are optional.
func NewDeliverStopCommand(
	stopID kernel.UUID,
	driverNotes, signatureDataURL, recipientName *string,
) (DeliverStopCommand, error) {
	if err := stopID.Validate(); err != nil {
		return DeliverStopCommand{}, err
	}

	return DeliverStopCommand{
		stopID:           stopID,
		driverNotes:      driverNotes,
		signatureDataURL: signatureDataURL,
		recipientName:    recipientName,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverStopCommand) Validate() error {
	return c.guard.Validate(ErrDeliverStopCommandIsNotConstructed)
}

// StopID returns the stop being fulfilled.
func (c DeliverStopCommand) StopID() kernel.UUID {
	return c.stopID
}

// DriverNotes returns the driver's optional free-text notes.
func (c DeliverStopCommand) DriverNotes() *string {
	return c.driverNotes
}

// SignatureDataURL returns the optional signature image as a PNG data URL.
func (c DeliverStopCommand) SignatureDataURL() *string {
	return c.signatureDataURL
}

// RecipientName returns the optional name of the person who received the order.
func (c DeliverStopCommand) RecipientName() *string {
	return c.recipientName
}
