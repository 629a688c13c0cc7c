package services

import (
	"time"

	"github.com/Trupti-Varma/SAVEBITE/models"
)

// DemoEmail identifies the demonstration account that gets a
// pre-populated inventory and stats on first login.
const DemoEmail = "demo@ecotable.dev"

// DemoInventory returns the fixed six-item sample inventory for the
// demo account. Expiry dates are relative to the current time so the
// dashboard always shows a mix of expired and fresh items.
func DemoInventory() []models.FoodItem {
	day := 24 * time.Hour
	now := time.Now()
	return []models.FoodItem{
		{ID: "m1", Name: "Ground Beef Patty", Category: models.CategoryMeat, Quantity: 1, Unit: "pcs", ExpiryDate: now.Add(-1 * day), Status: models.StatusActive, Condition: "Expired"},
		{ID: "m2", Name: "Tomato Slice", Category: models.CategoryProduce, Quantity: 4, Unit: "pcs", ExpiryDate: now.Add(1 * day), Status: models.StatusActive, Condition: "Ripe"},
		{ID: "m3", Name: "Sesame Seed Buns", Category: models.CategoryBakery, Quantity: 2, Unit: "pcs", ExpiryDate: now.Add(3 * day), Status: models.StatusActive, Condition: "Good"},
		{ID: "m4", Name: "Cheddar Cheese", Category: models.CategoryDairy, Quantity: 1, Unit: "pack", ExpiryDate: now.Add(10 * day), Status: models.StatusActive, Condition: "Good"},
		{ID: "m5", Name: "Iceberg Lettuce", Category: models.CategoryProduce, Quantity: 1, Unit: "head", ExpiryDate: now.Add(2 * day), Status: models.StatusActive, Condition: "Fresh"},
		{ID: "m6", Name: "Mayonnaise Jar", Category: models.CategoryOther, Quantity: 1, Unit: "jar", ExpiryDate: now.Add(60 * day), Status: models.StatusActive, Condition: "Good"},
	}
}

// DemoStats returns the pre-populated stats for the demo account,
// including two completed donations in the history.
func DemoStats() models.UserStats {
	return models.UserStats{
		MealsSaved:         145,
		CO2Saved:           320.5,
		MoneySaved:         4500,
		DonationsCompleted: 24,
		StreakDays:         12,
		Level:              8,
		XP:                 8450,
		EarnedBadges:       []string{"b1", "b2", "b3", "b4"},
		History: []models.DonationHistoryItem{
			{ID: "h1", FoodName: "Bulk Potato Sacks (10kg)", Date: "Jan 15, 2:00 PM", NGOName: "City Care Food Bank", Status: "completed", Points: 500},
			{ID: "h2", FoodName: "Organic Tomato Crate", Date: "Jan 22, 10:30 AM", NGOName: "Helping Hands Shelter", Status: "completed", Points: 350},
		},
	}
}

// EmptyStats returns the zeroed starting stats for a genuine new user.
func EmptyStats() models.UserStats {
	return models.UserStats{
		Level:        1,
		EarnedBadges: []string{},
		History:      []models.DonationHistoryItem{},
	}
}
