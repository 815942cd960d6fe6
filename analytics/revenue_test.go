package analytics

import (
	"testing"
	"time"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderOn(createdAt time.Time, total float64, items ...models.OrderLineItem) models.Order {
	return models.Order{
		Total:     total,
		Items:     items,
		CreatedAt: createdAt,
	}
}

func TestAggregateRevenueEmpty(t *testing.T) {
	summary := AggregateRevenue(nil, PeriodMonth)

	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0.0, summary.AverageOrderValue, "no division by zero")
	assert.Empty(t, summary.RevenueByPeriod)
	assert.Empty(t, summary.RevenueByCategory)
	assert.Empty(t, summary.TopProducts)
}

func TestAggregateRevenueMonthlyBuckets(t *testing.T) {
	orders := []models.Order{
		orderOn(time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), 500),
		orderOn(time.Date(2024, 1, 20, 18, 30, 0, 0, time.UTC), 300),
	}

	summary := AggregateRevenue(orders, PeriodMonth)

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 800.0, summary.TotalRevenue)
	assert.Equal(t, 400.0, summary.AverageOrderValue)
	require.Len(t, summary.RevenueByPeriod, 1)
	assert.Equal(t, models.PeriodRevenue{Period: "2024-01", Revenue: 800}, summary.RevenueByPeriod[0])
}

func TestBucketKeyGrains(t *testing.T) {
	// 2024-01-10 is a Wednesday; the preceding Sunday is 2024-01-07.
	wednesday := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-10", BucketKey(wednesday, PeriodDay))
	assert.Equal(t, "2024-01-07", BucketKey(wednesday, PeriodWeek))
	assert.Equal(t, "2024-01", BucketKey(wednesday, PeriodMonth))
	assert.Equal(t, "2024", BucketKey(wednesday, PeriodYear))

	sunday := time.Date(2024, 1, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-07", BucketKey(sunday, PeriodWeek), "a Sunday buckets to itself")

	assert.Equal(t, "", BucketKey(time.Time{}, PeriodDay))
}

func TestAggregateRevenueUnbucketableOrderStillCounted(t *testing.T) {
	orders := []models.Order{
		orderOn(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 200),
		orderOn(time.Time{}, 100), // malformed createdAt
	}

	summary := AggregateRevenue(orders, PeriodMonth)

	assert.Equal(t, 300.0, summary.TotalRevenue)
	require.Len(t, summary.RevenueByPeriod, 1)
	assert.Equal(t, 200.0, summary.RevenueByPeriod[0].Revenue)
}

func TestAggregateRevenueCategoryAndProductTotals(t *testing.T) {
	orders := []models.Order{
		orderOn(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 1050,
			models.OrderLineItem{Name: "Monstera Deliciosa", Price: 500, Qty: 1, Category: "Indoor Plants"},
			models.OrderLineItem{Name: "Neem Oil Spray", Price: 275, Qty: 2, Category: "Plant Care"},
		),
		orderOn(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), 500,
			models.OrderLineItem{Name: "Monstera Deliciosa", Price: 500, Qty: 1, Category: "Indoor Plants"},
		),
	}

	summary := AggregateRevenue(orders, PeriodMonth)

	// Round-trip: category totals, product totals and order totals agree
	// when every item carries a category and item sums match totals.
	var byCategory, byProduct float64
	for _, c := range summary.RevenueByCategory {
		byCategory += c.Revenue
	}
	for _, p := range summary.TopProducts {
		byProduct += p.Revenue
	}
	assert.Equal(t, summary.TotalRevenue, byCategory)
	assert.Equal(t, summary.TotalRevenue, byProduct)

	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "Monstera Deliciosa", summary.TopProducts[0].Name)
	assert.Equal(t, 1000.0, summary.TopProducts[0].Revenue)
}

func TestAggregateRevenueMissingCategoryFallsBackToOther(t *testing.T) {
	orders := []models.Order{
		orderOn(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 100,
			models.OrderLineItem{Name: "Mystery Seeds", Price: 100, Qty: 1},
		),
	}

	summary := AggregateRevenue(orders, PeriodMonth)

	require.Len(t, summary.RevenueByCategory, 1)
	assert.Equal(t, "Other", summary.RevenueByCategory[0].Category)
}

func TestAggregateRevenueTopProductsStableTiesAndTruncation(t *testing.T) {
	items := make([]models.OrderLineItem, 0, 12)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		items = append(items, models.OrderLineItem{Name: name, Price: 10, Qty: 1, Category: "Tools"})
	}
	orders := []models.Order{orderOn(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 120, items...)}

	summary := AggregateRevenue(orders, PeriodMonth)

	require.Len(t, summary.TopProducts, TopN)
	// All revenues tie, so insertion order is preserved.
	assert.Equal(t, "a", summary.TopProducts[0].Name)
	assert.Equal(t, "j", summary.TopProducts[9].Name)
}

func TestAggregateRevenueIsPure(t *testing.T) {
	orders := []models.Order{
		orderOn(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 500,
			models.OrderLineItem{Name: "Snake Plant", Price: 250, Qty: 2, Category: "Indoor Plants"},
		),
	}

	first := AggregateRevenue(orders, PeriodMonth)
	second := AggregateRevenue(orders, PeriodMonth)

	assert.Equal(t, first, second)
	assert.Equal(t, 500.0, orders[0].Total, "input not mutated")
	assert.Equal(t, "Snake Plant", orders[0].Items[0].Name)
}
