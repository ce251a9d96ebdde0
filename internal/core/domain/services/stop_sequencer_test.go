package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveryOrder(t *testing.T, orderNumber int, deliveryTime string, createdAt time.Time) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(
		kernel.NewUUID(), orderNumber, order.TypeDelivery, order.Ready,
		order.Recipient{}, order.Address{}, nil, deliveryTime, "", "", nil, createdAt,
	)
	require.NoError(t, err)
	return o
}

func orderNumbers(orders []*order.Order) []int {
	numbers := make([]int, 0, len(orders))
	for _, o := range orders {
		numbers = append(numbers, o.OrderNumber())
	}
	return numbers
}

func TestSortOrdersForDispatch(t *testing.T) {
	base := time.Date(2025, 6, 13, 8, 0, 0, 0, time.UTC)

	t.Run("sorts by delivery time first", func(t *testing.T) {
		orders := []*order.Order{
			deliveryOrder(t, 1, "14:00", base),
			deliveryOrder(t, 2, "09:15", base.Add(time.Hour)),
			deliveryOrder(t, 3, "11:30", base.Add(2*time.Hour)),
		}

		sorted := services.SortOrdersForDispatch(orders)
		assert.Equal(t, []int{2, 3, 1}, orderNumbers(sorted))
	})

	t.Run("ties and missing times fall back to creation time", func(t *testing.T) {
		orders := []*order.Order{
			deliveryOrder(t, 1, "10:00", base.Add(2*time.Hour)),
			deliveryOrder(t, 2, "10:00", base),
			deliveryOrder(t, 3, "", base.Add(time.Hour)),
			deliveryOrder(t, 4, "", base.Add(30*time.Minute)),
		}

		sorted := services.SortOrdersForDispatch(orders)
		assert.Equal(t, []int{2, 4, 3, 1}, orderNumbers(sorted))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		orders := []*order.Order{
			deliveryOrder(t, 1, "10:00", base),
			deliveryOrder(t, 2, "", base.Add(time.Minute)),
			deliveryOrder(t, 3, "09:00", base.Add(2*time.Minute)),
			deliveryOrder(t, 4, "09:00", base.Add(3*time.Minute)),
		}

		first := orderNumbers(services.SortOrdersForDispatch(orders))
		second := orderNumbers(services.SortOrdersForDispatch(orders))
		assert.Equal(t, first, second)

		// input slice is not mutated
		assert.Equal(t, []int{1, 2, 3, 4}, orderNumbers(orders))
	})

	t.Run("does not reorder when nothing differs", func(t *testing.T) {
		orders := []*order.Order{
			deliveryOrder(t, 1, "10:00", base),
			deliveryOrder(t, 2, "10:00", base),
		}

		sorted := services.SortOrdersForDispatch(orders)
		assert.Equal(t, []int{1, 2}, orderNumbers(sorted))
	})
}
