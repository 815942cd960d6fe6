package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCustomerTotalsFromOrders(t *testing.T) {
	customer := models.Customer{
		ID:        uuid.Must(uuid.NewV7()),
		Phone:     "9876543210",
		Name:      "Asha",
		CreatedAt: segmentRef.AddDate(0, -6, 0),
	}

	first := segmentRef.AddDate(0, 0, -100)
	last := segmentRef.AddDate(0, 0, -40)
	orders := []models.Order{
		{CustomerID: &customer.ID, Total: 700, CreatedAt: first, Items: models.OrderLineItemList{
			{Name: "Monstera Deliciosa", Price: 700, Qty: 1, Category: "Indoor Plants"},
		}},
		// attributed by phone: older checkouts did not store the customer id
		{CustomerPhone: customer.Phone, Total: 300, CreatedAt: last, Items: models.OrderLineItemList{
			{Name: "Neem Oil Spray", Price: 100, Qty: 3, Category: "Plant Care"},
		}},
	}

	derived := DeriveCustomerTotals([]models.Customer{customer}, orders, segmentRef)
	require.Len(t, derived, 1)
	got := derived[0]

	assert.Equal(t, 2, got.TotalOrders)
	assert.Equal(t, 1000.0, got.TotalSpent)
	assert.Equal(t, 500.0, got.AverageOrderValue)
	require.NotNil(t, got.FirstOrderDate)
	require.NotNil(t, got.LastOrderDate)
	assert.True(t, got.FirstOrderDate.Equal(first))
	assert.True(t, got.LastOrderDate.Equal(last))
	assert.Equal(t, []string{"Plant Care", "Indoor Plants"}, got.PreferredCategories)
	assert.Equal(t, string(SegmentActive), got.Segment, "last order 40 days ago")

	// Inputs untouched.
	assert.Equal(t, 0, customer.TotalOrders)
}

func TestDeriveCustomerTotalsNoOrders(t *testing.T) {
	customer := models.Customer{
		ID:        uuid.Must(uuid.NewV7()),
		Phone:     "9123456789",
		CreatedAt: segmentRef.AddDate(-2, 0, 0),
	}

	derived := DeriveCustomerTotals([]models.Customer{customer}, nil, segmentRef)
	got := derived[0]

	assert.Equal(t, 0, got.TotalOrders)
	assert.Equal(t, 0.0, got.TotalSpent)
	assert.Equal(t, 0.0, got.AverageOrderValue, "no division by zero")
	assert.Nil(t, got.FirstOrderDate)
	assert.Nil(t, got.LastOrderDate)
	assert.Equal(t, string(SegmentNew), got.Segment, "zero orders is always new")
}

func TestDeriveCustomerTotalsChurnBoundary(t *testing.T) {
	customer := models.Customer{ID: uuid.Must(uuid.NewV7()), Phone: "9000000000", CreatedAt: segmentRef.AddDate(-2, 0, 0)}
	old := segmentRef.AddDate(0, 0, -200)
	orders := []models.Order{{CustomerID: &customer.ID, Total: 450, CreatedAt: old}}

	derived := DeriveCustomerTotals([]models.Customer{customer}, orders, segmentRef)

	assert.Equal(t, string(SegmentChurned), derived[0].Segment, "last order 200 days ago")
}
