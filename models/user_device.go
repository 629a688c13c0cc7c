package models

import "time"

// UserDevice is one registered push endpoint for a user.
type UserDevice struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Platform    string `gorm:"size:10"` // "android" | "ios"
	TokenHash   string `gorm:"size:64;index"`
	EndpointARN string
	Enabled     bool `gorm:"default:true"`
	UpdatedAt   time.Time
}
