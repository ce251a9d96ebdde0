package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreTestOrder(t *testing.T, orderType order.Type, status order.Status) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		1042,
		orderType,
		status,
		order.Recipient{FirstName: "Rose", LastName: "Tremblay", Phone: "555-0101"},
		order.Address{Line1: "12 Chemin des Lilas", City: "Gatineau", Province: "QC", PostalCode: "J8X 0A1", Country: "CA"},
		nil,
		"10:30",
		"",
		"",
		nil,
		time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestRestoreOrder(t *testing.T) {
	t.Run("valid delivery order", func(t *testing.T) {
		o := restoreTestOrder(t, order.TypeDelivery, order.Ready)

		assert.Equal(t, 1042, o.OrderNumber())
		assert.Equal(t, order.TypeDelivery, o.Type())
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, "10:30", o.DeliveryTime())
		assert.Equal(t, "Rose", o.Recipient().FirstName)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), 1, order.TypeUnknown, order.Ready,
			order.Recipient{}, order.Address{}, nil, "", "", "", nil, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), 1, order.TypeDelivery, order.Unknown,
			order.Recipient{}, order.Address{}, nil, "", "", "", nil, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects non-positive order number", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), 0, order.TypeDelivery, order.Ready,
			order.Recipient{}, order.Address{}, nil, "", "", "", nil, time.Now())
		require.Error(t, err)
	})
}

func TestOrder_CompleteDelivery(t *testing.T) {
	t.Run("terminalizes from any status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Ready, order.OutForDelivery,
		} {
			o := restoreTestOrder(t, order.TypeDelivery, status)
			o.CompleteDelivery()
			assert.Equal(t, order.Completed, o.Status())
		}
	})

	t.Run("idempotent on completed orders", func(t *testing.T) {
		o := restoreTestOrder(t, order.TypeDelivery, order.Completed)
		o.CompleteDelivery()
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

func TestType_Validate(t *testing.T) {
	require.NoError(t, order.TypeDelivery.Validate())
	require.NoError(t, order.TypePickup.Validate())
	require.Error(t, order.TypeUnknown.Validate())
	assert.Equal(t, "Delivery", order.TypeDelivery.String())
}
