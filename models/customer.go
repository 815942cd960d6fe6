package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a storefront shopper, keyed in practice by phone number.
//
// Order-derived fields (TotalOrders, TotalSpent, AverageOrderValue,
// FirstOrderDate, LastOrderDate, PreferredCategories, Segment) are never
// persisted: they are recomputed from the orders collection on every read
// so they cannot drift out of sync with order writes.
type Customer struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Phone         string    `json:"phone" gorm:"not null;uniqueIndex"`
	Name          string    `json:"name" gorm:"not null"`
	Email         *string   `json:"email,omitempty"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	LoyaltyPoints int       `json:"loyalty_points" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Derived, filled by analytics.DeriveCustomerTotals / the read path.
	TotalOrders         int        `json:"total_orders" gorm:"-"`
	TotalSpent          float64    `json:"total_spent" gorm:"-"`
	AverageOrderValue   float64    `json:"average_order_value" gorm:"-"`
	FirstOrderDate      *time.Time `json:"first_order_date,omitempty" gorm:"-"`
	LastOrderDate       *time.Time `json:"last_order_date,omitempty" gorm:"-"`
	PreferredCategories []string   `json:"preferred_categories" gorm:"-"`
	Segment             string     `json:"segment" gorm:"-"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Customer) TableName() string {
	return "customers"
}

// CreateCustomerRequest is used for admin-side customer creation.
type CreateCustomerRequest struct {
	Phone string  `json:"phone" binding:"required,min=10,max=15"`
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
	City  string  `json:"city"`
	State string  `json:"state"`
}

// UpdateCustomerRequest is used when admin updates customer info.
type UpdateCustomerRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	LoyaltyPoints *int    `json:"loyalty_points" binding:"omitempty,min=0"`
}

// UpdateProfileRequest is the storefront self-service variant.
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
	City  *string `json:"city"`
	State *string `json:"state"`
}

// CustomerStats represents the customers dashboard header numbers.
type CustomerStats struct {
	TotalCustomers               int     `json:"total_customers"`
	NewCustomersThisMonth        int     `json:"new_customers_this_month"`
	NewCustomersGrowthPercentage float64 `json:"new_customers_growth_percentage"`
	ActiveCustomers              int     `json:"active_customers"` // order in last 90 days
	ActiveCustomersPercentage    float64 `json:"active_customers_percentage"`
	AvgOrderValue                float64 `json:"avg_order_value"`
}
