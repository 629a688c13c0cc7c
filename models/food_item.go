package models

import "time"

// Food categories as shown in the app's add-item form.
const (
	CategoryProduce = "Produce"
	CategoryDairy   = "Dairy"
	CategoryMeat    = "Meat"
	CategoryGrains  = "Grains"
	CategoryBakery  = "Bakery"
	CategoryCanned  = "Canned"
	CategoryOther   = "Other"
)

// Item lifecycle. Transitions out of "active" are one-way.
const (
	StatusActive   = "active"
	StatusConsumed = "consumed"
	StatusDonated  = "donated"
	StatusWasted   = "wasted"
)

// FoodItem is one tracked inventory entry. Items live inside the
// per-user record payload, not in their own table.
type FoodItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	ExpiryDate time.Time `json:"expiryDate"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Status     string    `json:"status"`
	Condition  string    `json:"condition,omitempty"` // e.g. "Fresh", "Ripe", "Slightly Wilted"
}
