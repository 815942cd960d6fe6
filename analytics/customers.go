package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// AggregateCustomers classifies every customer at referenceTime and folds
// the list into segment counts, lifetime-value metrics, a geographic
// distribution and a top-spender leaderboard. An empty customer list
// yields all-zero defaults, never an error.
func AggregateCustomers(customers []models.Customer, referenceTime time.Time) models.CustomerSummary {
	summary := models.CustomerSummary{
		GeographicDistribution: []models.LocationCount{},
		TopCustomers:           []models.TopCustomerRow{},
	}

	summary.TotalCustomers = len(customers)
	if summary.TotalCustomers == 0 {
		return summary
	}

	locationIdx := map[string]int{}
	totalSpent := 0.0

	for _, customer := range customers {
		switch Classify(customer, referenceTime) {
		case SegmentNew:
			summary.Segments.New++
		case SegmentActive:
			summary.Segments.Active++
		case SegmentInactive:
			summary.Segments.Inactive++
		case SegmentChurned:
			summary.Segments.Churned++
		}

		totalSpent += customer.TotalSpent

		location := "Unknown"
		if customer.City != "" || customer.State != "" {
			location = fmt.Sprintf("%s, %s", customer.City, customer.State)
		}
		if i, ok := locationIdx[location]; ok {
			summary.GeographicDistribution[i].Customers++
		} else {
			locationIdx[location] = len(summary.GeographicDistribution)
			summary.GeographicDistribution = append(summary.GeographicDistribution, models.LocationCount{Location: location, Customers: 1})
		}
	}

	summary.AverageLifetimeValue = totalSpent / float64(summary.TotalCustomers)

	ranked := make([]models.Customer, len(customers))
	copy(ranked, customers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	for _, customer := range ranked {
		summary.TopCustomers = append(summary.TopCustomers, models.TopCustomerRow{
			ID:          customer.ID.String(),
			Name:        customer.Name,
			Phone:       customer.Phone,
			TotalSpent:  customer.TotalSpent,
			TotalOrders: customer.TotalOrders,
		})
	}

	return summary
}
