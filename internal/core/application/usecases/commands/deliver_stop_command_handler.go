package commands

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const signatureDataURLPrefix = "data:image/png;base64,"

// DeliverStopCommandHandler records a stop delivery and cascades it upwards:
// the stop flips to Delivered, the order is completed, and the route status
// is recomputed from the full stop set, all in one transaction.
//
// The signature image is uploaded to object storage before the transaction
// begins, since the store cannot participate in it. A delivery that fails to
// commit may therefore orphan an upload; that leak is accepted. The handler
// checks the stop's current state before uploading, so retrying an already
// delivered stop never re-uploads or re-stamps anything.
type DeliverStopCommandHandler struct {
	uowFactory     DeliverStopUoWFactory
	signatureStore ports.SignatureStore
}

// NewDeliverStopCommandHandler creates a handler for stop fulfillment.
func NewDeliverStopCommandHandler(
	uowFactory DeliverStopUoWFactory, signatureStore ports.SignatureStore,
) DeliverStopCommandHandler {
	return DeliverStopCommandHandler{
		uowFactory:     uowFactory,
		signatureStore: signatureStore,
	}
}

// Handle processes the stop fulfillment command and returns the stop's
// resulting state. Delivering an already-delivered stop is a no-op success.
func (h DeliverStopCommandHandler) Handle(
	ctx context.Context, command DeliverStopCommand,
) (*route.Stop, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	routeRepo := uow.RouteRepository()

	// Pre-transaction read: resolve the stop before any upload so a retried
	// delivery returns the recorded state without touching object storage.
	aggregate, err := routeRepo.GetByStopID(ctx, command.StopID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s", route.ErrStopNotFound, command.StopID())
	}
	if err != nil {
		return nil, err
	}

	stop, err := aggregate.StopByID(command.StopID())
	if err != nil {
		return nil, err
	}
	if stop.IsDelivered() {
		return stop, nil
	}

	signatureURL, err := h.uploadSignature(ctx, command)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo = uow.RouteRepository()
	orderRepo := uow.OrderRepository()

	// Reload inside the transaction. The repository locks the route row, so
	// concurrent deliveries on the same route serialize here and the status
	// recompute sees every sibling stop as last committed.
	aggregate, err = routeRepo.GetByStopID(ctx, command.StopID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s", route.ErrStopNotFound, command.StopID())
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stop, err = aggregate.DeliverStop(
		command.StopID(), now, command.DriverNotes(), signatureURL, command.RecipientName(),
	)
	if err != nil {
		return nil, err
	}

	deliveredOrder, err := orderRepo.Get(ctx, stop.OrderID())
	if err != nil {
		return nil, err
	}
	deliveredOrder.CompleteDelivery()

	if err = orderRepo.UpdateStatus(ctx, deliveredOrder); err != nil {
		return nil, err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stop, nil
}

// uploadSignature decodes the PNG data URL and stores it, returning the
// stored object's URL, or nil when no signature was captured.
func (h DeliverStopCommandHandler) uploadSignature(
	ctx context.Context, command DeliverStopCommand,
) (*string, error) {
	if command.SignatureDataURL() == nil {
		return nil, nil
	}

	encoded, ok := strings.CutPrefix(*command.SignatureDataURL(), signatureDataURLPrefix)
	if !ok {
		return nil, ErrInvalidSignatureFormat
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignatureFormat, err)
	}

	key := fmt.Sprintf("signatures/%s.png", command.StopID())
	url, err := h.signatureStore.UploadPNG(ctx, key, data)
	if err != nil {
		return nil, err
	}

	return &url, nil
}
