package models

import (
	"gorm.io/gorm"
)

// UserRecord is the full per-user payload: the inventory plus the
// cumulative stats, serialized together as one JSON document.
type UserRecord struct {
	Inventory []FoodItem `json:"inventory"`
	Stats     UserStats  `json:"stats"`
}

// StoredRecord is the durable row holding a UserRecord payload.
// One row per user; the payload column is opaque JSON.
type StoredRecord struct {
	gorm.Model
	UserID  uint   `gorm:"uniqueIndex;not null"`
	Payload string `gorm:"type:jsonb;not null"`
}
