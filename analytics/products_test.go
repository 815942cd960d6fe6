package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogProduct(name, category string, price float64, stock int) models.Product {
	return models.Product{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}
}

func TestAggregateProductsJoinAndRollups(t *testing.T) {
	monstera := catalogProduct("Monstera Deliciosa", "Indoor Plants", 500, 25)
	neem := catalogProduct("Neem Oil Spray", "Plant Care", 275, 40)
	products := []models.Product{monstera, neem}

	orders := []models.Order{
		{CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Items: models.OrderLineItemList{
			{ProductID: monstera.ID.String(), Name: monstera.Name, Price: 500, Qty: 2, Category: "Indoor Plants"},
			{ProductID: neem.ID.String(), Name: neem.Name, Price: 275, Qty: 1, Category: "Plant Care"},
		}},
		{CreatedAt: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), Items: models.OrderLineItemList{
			{ProductID: monstera.ID.String(), Name: monstera.Name, Price: 500, Qty: 1, Category: "Indoor Plants"},
			{ProductID: uuid.NewString(), Name: "Deleted Product", Price: 99, Qty: 5}, // no catalog match: skipped
		}},
	}

	summary := AggregateProducts(products, orders)

	assert.Equal(t, 2, summary.TotalProducts)

	require.NotEmpty(t, summary.TopSellingProducts)
	top := summary.TopSellingProducts[0]
	assert.Equal(t, monstera.Name, top.Name)
	assert.Equal(t, 3, top.Sold)
	assert.Equal(t, 1500.0, top.Revenue)

	assert.Equal(t, monstera.Name, summary.TopRevenueProducts[0].Name)

	rollups := map[string]models.CategoryPerformance{}
	for _, c := range summary.CategoryPerformance {
		rollups[c.Category] = c
	}
	assert.Equal(t, 3, rollups["Indoor Plants"].Sold)
	assert.Equal(t, 1500.0, rollups["Indoor Plants"].Revenue)
	assert.Equal(t, 275.0, rollups["Plant Care"].Revenue)
}

func TestAggregateProductsLegacyItemIDFallback(t *testing.T) {
	fern := catalogProduct("Boston Fern", "Indoor Plants", 350, 12)
	orders := []models.Order{
		{Items: models.OrderLineItemList{
			{LegacyID: fern.ID.String(), Name: fern.Name, Price: 350, Qty: 2},
		}},
	}

	summary := AggregateProducts([]models.Product{fern}, orders)

	assert.Equal(t, 2, summary.TopSellingProducts[0].Sold)
}

func TestAggregateProductsLowStockStrictThreshold(t *testing.T) {
	products := []models.Product{
		catalogProduct("Succulent Mix", "Indoor Plants", 150, 5),
		catalogProduct("Garden Trowel", "Tools", 220, 10),
		catalogProduct("Rose Sapling", "Outdoor Plants", 180, 30),
	}

	summary := AggregateProducts(products, nil)

	require.Len(t, summary.LowStockAlerts, 1)
	assert.Equal(t, "Succulent Mix", summary.LowStockAlerts[0].Name)
	assert.Equal(t, 5, summary.LowStockAlerts[0].Inventory)
}

func TestAggregateProductsEmptyCatalog(t *testing.T) {
	summary := AggregateProducts(nil, nil)

	assert.Equal(t, 0, summary.TotalProducts)
	assert.Empty(t, summary.TopSellingProducts)
	assert.Empty(t, summary.TopRevenueProducts)
	assert.Empty(t, summary.CategoryPerformance)
	assert.Empty(t, summary.LowStockAlerts)
}

func TestAggregateProductsIsPure(t *testing.T) {
	products := []models.Product{catalogProduct("Jade Plant", "Indoor Plants", 240, 8)}
	orders := []models.Order{
		{Items: models.OrderLineItemList{{ProductID: products[0].ID.String(), Name: "Jade Plant", Price: 240, Qty: 1}}},
	}

	first := AggregateProducts(products, orders)
	second := AggregateProducts(products, orders)

	assert.Equal(t, first, second)
	assert.Equal(t, 8, products[0].Stock, "input not mutated")
}
