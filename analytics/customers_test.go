package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(name, city, state string, spent float64, orders, daysAgo int) models.Customer {
	last := segmentRef.AddDate(0, 0, -daysAgo)
	return models.Customer{
		ID:            uuid.Must(uuid.NewV7()),
		Phone:         "98765" + name,
		Name:          name,
		City:          city,
		State:         state,
		TotalSpent:    spent,
		TotalOrders:   orders,
		LastOrderDate: &last,
		CreatedAt:     segmentRef.AddDate(-1, 0, 0),
	}
}

func TestAggregateCustomersEmpty(t *testing.T) {
	summary := AggregateCustomers(nil, segmentRef)

	assert.Equal(t, 0, summary.TotalCustomers)
	assert.Equal(t, models.SegmentCounts{}, summary.Segments)
	assert.Equal(t, 0.0, summary.AverageLifetimeValue)
	assert.Empty(t, summary.GeographicDistribution)
	assert.Empty(t, summary.TopCustomers)
}

func TestAggregateCustomersSegmentsAndLTV(t *testing.T) {
	customers := []models.Customer{
		testCustomer("asha", "Pune", "MH", 4000, 8, 5),      // new
		testCustomer("ravi", "Pune", "MH", 2500, 4, 60),     // active
		testCustomer("meena", "Jaipur", "RJ", 1200, 2, 120), // inactive
		testCustomer("karan", "Delhi", "DL", 300, 1, 365),   // churned
	}

	summary := AggregateCustomers(customers, segmentRef)

	assert.Equal(t, 4, summary.TotalCustomers)
	assert.Equal(t, models.SegmentCounts{New: 1, Active: 1, Inactive: 1, Churned: 1}, summary.Segments)
	assert.Equal(t, 2000.0, summary.AverageLifetimeValue)

	require.Len(t, summary.GeographicDistribution, 3)
	locations := map[string]int{}
	for _, l := range summary.GeographicDistribution {
		locations[l.Location] = l.Customers
	}
	assert.Equal(t, 2, locations["Pune, MH"])
	assert.Equal(t, 1, locations["Jaipur, RJ"])
}

func TestAggregateCustomersLeaderboard(t *testing.T) {
	customers := []models.Customer{}
	for i := 0; i < 15; i++ {
		customers = append(customers, testCustomer(string(rune('a'+i)), "Pune", "MH", float64(100*(15-i)), 2, 10))
	}

	summary := AggregateCustomers(customers, segmentRef)

	require.Len(t, summary.TopCustomers, TopN)
	assert.Equal(t, 1500.0, summary.TopCustomers[0].TotalSpent)
	assert.Equal(t, "a", summary.TopCustomers[0].Name)
	assert.Equal(t, 600.0, summary.TopCustomers[9].TotalSpent)
}

func TestAggregateCustomersIsPure(t *testing.T) {
	customers := []models.Customer{
		testCustomer("low", "Pune", "MH", 100, 1, 10),
		testCustomer("high", "Pune", "MH", 900, 3, 10),
	}

	first := AggregateCustomers(customers, segmentRef)
	second := AggregateCustomers(customers, segmentRef)

	assert.Equal(t, first, second)
	// Input order untouched even though the leaderboard ranks by spend.
	assert.Equal(t, "low", customers[0].Name)
	assert.Equal(t, "high", customers[1].Name)
}
