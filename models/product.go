package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// FeatureList holds the selling-point strings shown on the product page
// ("Pet friendly", "Low maintenance", ...). Stored as a JSONB array.
type FeatureList []string

func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = make(FeatureList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan FeatureList")
	}
	return json.Unmarshal(bytes, f)
}

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(f)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string      `json:"name" gorm:"not null;index"`
	Category      string      `json:"category" gorm:"not null;index"`
	Subcategory   *string     `json:"subcategory,omitempty" gorm:"index"`
	Price         float64     `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice *float64    `json:"original_price,omitempty" gorm:"type:numeric(12,2)"` // pre-discount price for strike-through display
	Rating        float64     `json:"rating" gorm:"default:0;check:rating >= 0 AND rating <= 5"`
	Reviews       int         `json:"reviews" gorm:"default:0"`
	Image         string      `json:"image" gorm:"not null"`
	Badge         *string     `json:"badge,omitempty"`
	BadgeColor    *string     `json:"badge_color,omitempty"`
	Stock         int         `json:"stock" gorm:"default:0;check:stock >= 0"`
	InStock       bool        `json:"in_stock" gorm:"default:true;index"`
	FastDelivery  bool        `json:"fast_delivery" gorm:"default:false"`
	Organic       bool        `json:"organic" gorm:"default:false"`
	Features      FeatureList `json:"features" gorm:"type:jsonb;not null;default:'[]'"`
	Description   string      `json:"description" gorm:"not null"`
	CreatedAt     time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name          string   `json:"name" binding:"required" example:"Monstera Deliciosa"`
	Category      string   `json:"category" binding:"required" example:"Indoor Plants"`
	Subcategory   *string  `json:"subcategory,omitempty" example:"Foliage"`
	Price         float64  `json:"price" binding:"required,min=0" example:"499"`
	OriginalPrice *float64 `json:"original_price,omitempty" binding:"omitempty,min=0"`
	Image         string   `json:"image" binding:"required"`
	Badge         *string  `json:"badge,omitempty" example:"Bestseller"`
	BadgeColor    *string  `json:"badge_color,omitempty" example:"green"`
	Stock         int      `json:"stock" binding:"min=0" example:"25"`
	FastDelivery  bool     `json:"fast_delivery"`
	Organic       bool     `json:"organic"`
	Features      []string `json:"features"`
	Description   string   `json:"description" binding:"required"`
}

type UpdateProductRequest struct {
	Name          *string   `json:"name"`
	Category      *string   `json:"category"`
	Subcategory   *string   `json:"subcategory"`
	Price         *float64  `json:"price" binding:"omitempty,min=0"`
	OriginalPrice *float64  `json:"original_price" binding:"omitempty,min=0"`
	Image         *string   `json:"image"`
	Badge         *string   `json:"badge"`
	BadgeColor    *string   `json:"badge_color"`
	Stock         *int      `json:"stock" binding:"omitempty,min=0"`
	InStock       *bool     `json:"in_stock"`
	FastDelivery  *bool     `json:"fast_delivery"`
	Organic       *bool     `json:"organic"`
	Features      *[]string `json:"features"`
	Description   *string   `json:"description"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductStatsResponse struct {
	TotalProducts      int     `json:"total_products"`
	InStockProducts    int     `json:"in_stock_products"`
	OutOfStockProducts int     `json:"out_of_stock_products"`
	LowStockProducts   int     `json:"low_stock_products"`
	OrganicProducts    int     `json:"organic_products"`
	AveragePrice       float64 `json:"average_price"`
	AverageRating      float64 `json:"average_rating"`
	TotalInventory     int     `json:"total_inventory"`
}

// SearchSuggestion is a ranked storefront search hit.
type SearchSuggestion struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
}
