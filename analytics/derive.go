package analytics

import (
	"sort"
	"time"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// DeriveCustomerTotals fills every customer's order-derived fields
// (totals, order dates, preferred categories, segment) from the order
// collection. Nothing here is ever persisted; the orders are the single
// source of truth, so the intended invariant
//
//	customer.totalOrders == count(orders attributed to the customer)
//
// holds by construction instead of relying on transactional counter
// updates. Orders are attributed by customer ID when set, by phone
// otherwise. Returns a new slice; the inputs are not mutated.
func DeriveCustomerTotals(customers []models.Customer, orders []models.Order, referenceTime time.Time) []models.Customer {
	byID := map[string][]models.Order{}
	byPhone := map[string][]models.Order{}
	for _, order := range orders {
		if order.CustomerID != nil {
			id := order.CustomerID.String()
			byID[id] = append(byID[id], order)
			continue
		}
		byPhone[order.CustomerPhone] = append(byPhone[order.CustomerPhone], order)
	}

	out := make([]models.Customer, len(customers))
	for i, customer := range customers {
		derived := customer

		owned := append([]models.Order{}, byID[customer.ID.String()]...)
		owned = append(owned, byPhone[customer.Phone]...)

		derived.TotalOrders = len(owned)
		derived.TotalSpent = 0
		derived.FirstOrderDate = nil
		derived.LastOrderDate = nil
		categoryCounts := map[string]int{}
		categoryOrder := []string{}

		for _, order := range owned {
			derived.TotalSpent += order.Total

			if !order.CreatedAt.IsZero() {
				created := order.CreatedAt
				if derived.FirstOrderDate == nil || created.Before(*derived.FirstOrderDate) {
					derived.FirstOrderDate = &created
				}
				if derived.LastOrderDate == nil || created.After(*derived.LastOrderDate) {
					derived.LastOrderDate = &created
				}
			}

			for _, item := range order.Items {
				if item.Category == "" {
					continue
				}
				if _, seen := categoryCounts[item.Category]; !seen {
					categoryOrder = append(categoryOrder, item.Category)
				}
				categoryCounts[item.Category] += item.Qty
			}
		}

		derived.AverageOrderValue = 0
		if derived.TotalOrders > 0 {
			derived.AverageOrderValue = derived.TotalSpent / float64(derived.TotalOrders)
		}

		sort.SliceStable(categoryOrder, func(a, b int) bool {
			return categoryCounts[categoryOrder[a]] > categoryCounts[categoryOrder[b]]
		})
		derived.PreferredCategories = categoryOrder

		derived.Segment = string(Classify(derived, referenceTime))

		out[i] = derived
	}
	return out
}
