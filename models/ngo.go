package models

import "gorm.io/gorm"

// NGO is a directory entry for a nearby donation recipient.
type NGO struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Distance    string
	Needs       string `gorm:"type:text"` // comma-separated food categories
	Rating      float64
	Lat         float64
	Lng         float64
	Urgency     string
	Description string
	Address     string
	Phone       string
}
