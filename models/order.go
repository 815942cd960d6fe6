package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. delivered and cancelled are terminal; transitions are
// free-form admin writes with no server-side guard (known gap).
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// OrderLineItem is a single product entry in an order, snapshotting the
// product at purchase time. Category and image are denormalized so the
// order renders without a catalog lookup.
type OrderLineItem struct {
	ProductID string  `json:"product_id,omitempty"`
	LegacyID  string  `json:"id,omitempty"` // old snapshots stored the product id under "id"
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,min=0"`
	Qty       int     `json:"qty" binding:"required,min=1"`
	Category  string  `json:"category,omitempty"`
	Image     string  `json:"image,omitempty"`
}

type OrderLineItemList []OrderLineItem

func (l *OrderLineItemList) Scan(value interface{}) error {
	if value == nil {
		*l = make(OrderLineItemList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OrderLineItemList")
	}
	return json.Unmarshal(bytes, l)
}

func (l OrderLineItemList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]OrderLineItem{})
	}
	return json.Marshal(l)
}

// OrderAddress is the delivery address snapshot taken at checkout.
type OrderAddress struct {
	Name     string  `json:"name" binding:"required"`
	Line1    string  `json:"line1" binding:"required"`
	Line2    *string `json:"line2,omitempty"`
	City     string  `json:"city" binding:"required"`
	State    string  `json:"state" binding:"required"`
	Pincode  string  `json:"pincode" binding:"required"`
	Landmark *string `json:"landmark,omitempty"`
}

func (a *OrderAddress) Scan(value interface{}) error {
	if value == nil {
		*a = OrderAddress{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OrderAddress")
	}
	return json.Unmarshal(bytes, a)
}

func (a OrderAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// OrderNote is an append-only admin annotation on an order.
type OrderNote struct {
	Note    string    `json:"note"`
	AddedBy string    `json:"added_by"`
	AddedAt time.Time `json:"added_at"`
}

type OrderNoteList []OrderNote

func (l *OrderNoteList) Scan(value interface{}) error {
	if value == nil {
		*l = make(OrderNoteList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OrderNoteList")
	}
	return json.Unmarshal(bytes, l)
}

func (l OrderNoteList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]OrderNote{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Main Order Model (GORM)
// ═══════════════════════════════════════════════════════════

type Order struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber   string            `json:"order_number" gorm:"not null;uniqueIndex"`
	CustomerID    *uuid.UUID        `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	CustomerPhone string            `json:"customer_phone" gorm:"not null;index"`
	Items         OrderLineItemList `json:"items" gorm:"type:jsonb;not null;default:'[]'"`
	Address       OrderAddress      `json:"address" gorm:"type:jsonb;not null;default:'{}'"`
	Subtotal      float64           `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	DeliveryFee   float64           `json:"delivery_fee" gorm:"type:numeric(12,2);not null"`
	Total         float64           `json:"total" gorm:"type:numeric(12,2);not null"`
	Status        string            `json:"status" gorm:"not null;default:'pending';index"`
	PaymentMethod string            `json:"payment_method" gorm:"not null"`
	Notes         OrderNoteList     `json:"notes" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt     time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// CreateOrderRequest is the checkout payload. Prices are recomputed
// server-side from the catalog; client-sent totals are ignored.
type CreateOrderRequest struct {
	Items         []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	Address       OrderAddress   `json:"address" binding:"required"`
	PaymentMethod string         `json:"payment_method" binding:"required,oneof=cod upi card"`
}

type CheckoutItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
	Note   *string `json:"note,omitempty"` // required when status=cancelled
}

type AddOrderNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type OrderListRow struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerName  string    `json:"customer_name"`
	ItemCount     int       `json:"item_count"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderStatsBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type OrderStatsResponse struct {
	TotalOrders                int                 `json:"total_orders"`
	ChangePercentFromLastMonth *float64            `json:"change_percent_from_last_month,omitempty"`
	CurrentMonthTotal          int                 `json:"current_month_total"`
	LastMonthTotal             int                 `json:"last_month_total"`
	Pending                    OrderStatsBreakdown `json:"pending"`
	Processing                 OrderStatsBreakdown `json:"processing"`
	Shipped                    OrderStatsBreakdown `json:"shipped"`
	Delivered                  OrderStatsBreakdown `json:"delivered"`
	Cancelled                  OrderStatsBreakdown `json:"cancelled"`
}

type AdminOrderSearchQuery struct {
	Q           string   `form:"q"`            // generic search term
	OrderNumber string   `form:"order_number"` // explicit
	Phone       string   `form:"phone"`        // customer phone
	Status      string   `form:"status"`       // exact
	MinTotal    *float64 `form:"min_total"`    // range
	MaxTotal    *float64 `form:"max_total"`    // range
	CreatedFrom *string  `form:"created_from"` // ISO8601 date or datetime
	CreatedTo   *string  `form:"created_to"`   // ISO8601 date or datetime
	Page        int      `form:"page"`
	Limit       int      `form:"limit"`
}
