package models

import (
	"time"

	"gorm.io/datatypes"
)

// StorefrontSetting is a key-value override for per-component storefront
// option objects (e.g. {"showRatings": true, "maxItems": 8, "autoRotate":
// false} for the featured carousel). Components ship with hardcoded
// defaults; a row here overrides them.
type StorefrontSetting struct {
	Key       string         `json:"key" gorm:"primaryKey"`
	Value     datatypes.JSON `json:"value" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (StorefrontSetting) TableName() string {
	return "storefront_settings"
}

type UpsertStorefrontSettingRequest struct {
	Value datatypes.JSON `json:"value" binding:"required" swaggertype:"object"`
}
