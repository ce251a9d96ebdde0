package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

// Recipient is the person an order is addressed to, as entered at order time.
type Recipient struct {
	FirstName string
	LastName  string
	Phone     string
}

// Address is the delivery destination of an order.
type Address struct {
	Line1      string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// Item is a single line item on an order. Read-only in the dispatch core;
// the driver view shows items so the driver can check the load.
type Item struct {
	ID       kernel.UUID
	Name     string
	Quantity int
}

// Order is a delivery job payload owned by the wider retail application.
//
// The dispatch core enforces two rules on orders:
//   - only Delivery-type orders may be placed on a route;
//   - an order's status advances to Completed exactly when its stop is
//     marked delivered.
//
// DeliveryTime, when present, is a zero-padded "HH:MM" string; its
// lexicographic order equals its chronological order, which the stop
// sequencer relies on.
type Order struct {
	id                  kernel.UUID
	orderNumber         int
	orderType           Type
	status              Status
	recipient           Recipient
	address             Address
	deliveryDate        *time.Time
	deliveryTime        string
	specialInstructions string
	cardMessage         string
	items               []Item
	createdAt           time.Time

	isConstructed bool
}

// RestoreOrder rehydrates an order from persistence. It is the only
// constructor: the dispatch core never creates orders, it receives them.
func RestoreOrder(
	id kernel.UUID,
	orderNumber int,
	orderType Type,
	status Status,
	recipient Recipient,
	address Address,
	deliveryDate *time.Time,
	deliveryTime string,
	specialInstructions string,
	cardMessage string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if orderNumber <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderNumber is invalid",
			fmt.Errorf("%d is not greater than 0", orderNumber))
	}

	return &Order{
		id:                  id,
		orderNumber:         orderNumber,
		orderType:           orderType,
		status:              status,
		recipient:           recipient,
		address:             address,
		deliveryDate:        deliveryDate,
		deliveryTime:        deliveryTime,
		specialInstructions: specialInstructions,
		cardMessage:         cardMessage,
		items:               items,
		createdAt:           createdAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was created through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() int {
	return o.orderNumber
}

// Type returns whether the order is a delivery or a pickup.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the order's current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Recipient returns the person the order is addressed to.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// DeliveryDate returns the requested delivery date, or nil.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// DeliveryTime returns the requested "HH:MM" delivery time, or "".
func (o *Order) DeliveryTime() string {
	return o.deliveryTime
}

// SpecialInstructions returns free-text delivery instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// CardMessage returns the gift card message.
func (o *Order) CardMessage() string {
	return o.cardMessage
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// CreatedAt returns when the order was entered.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompleteDelivery advances the order to its terminal Completed status.
// It is permitted from any status: however far the POS moved the order, a
// delivered stop terminalizes it, and re-delivering a stop is a no-op.
func (o *Order) CompleteDelivery() {
	o.status = Completed
}
