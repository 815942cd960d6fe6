package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubcategoryList is the set of allowed subcategory names declared by a
// category. Stored as a JSONB array; empty means the category has no
// subcategory constraint.
type SubcategoryList []string

func (s *SubcategoryList) Scan(value interface{}) error {
	if value == nil {
		*s = make(SubcategoryList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SubcategoryList")
	}
	return json.Unmarshal(bytes, s)
}

func (s SubcategoryList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Contains reports whether name is one of the declared subcategories.
func (s SubcategoryList) Contains(name string) bool {
	for _, sub := range s {
		if sub == name {
			return true
		}
	}
	return false
}

// Category represents a storefront category ("Indoor Plants" 🪴, ...).
type Category struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string          `json:"name" gorm:"not null;uniqueIndex"`
	Icon          string          `json:"icon" gorm:"not null"` // emoji shown on category tiles
	Subcategories SubcategoryList `json:"subcategories" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRequest is used when creating a category
type CategoryRequest struct {
	Name          string   `json:"name" binding:"required" example:"Indoor Plants"`
	Icon          string   `json:"icon" binding:"required" example:"🪴"`
	Subcategories []string `json:"subcategories"`
}

// UpdateCategoryRequest is used when updating a category
type UpdateCategoryRequest struct {
	Name          *string   `json:"name"`
	Icon          *string   `json:"icon"`
	Subcategories *[]string `json:"subcategories"`
}

// CategoryWithProducts extends Category with its product count
type CategoryWithProducts struct {
	Category
	Products int `json:"products"`
}
