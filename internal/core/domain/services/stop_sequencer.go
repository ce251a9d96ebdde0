package services

import (
	"sort"

	"dispatch/internal/core/domain/model/order"
)

// SortOrdersForDispatch returns the orders in initial stop order for a new
// route: earliest requested delivery time first, then order-creation time.
//
// Delivery times are zero-padded "HH:MM" strings, so a plain lexicographic
// compare is chronological. Orders without a delivery time, or sharing one,
// fall back to createdAt ascending. The sort is stable, which makes the
// result reproducible for identical inputs.
func SortOrdersForDispatch(orders []*order.Order) []*order.Order {
	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.DeliveryTime() != "" && b.DeliveryTime() != "" && a.DeliveryTime() != b.DeliveryTime() {
			return a.DeliveryTime() < b.DeliveryTime()
		}

		return a.CreatedAt().Before(b.CreatedAt())
	})

	return sorted
}
