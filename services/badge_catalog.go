package services

import "github.com/Trupti-Varma/SAVEBITE/models"

// BadgeCatalog is the fixed set of earnable badges. Which ones a user
// holds lives in their stats record; nothing here awards them
// automatically.
func BadgeCatalog() []models.Badge {
	return []models.Badge{
		{ID: "b1", Name: "First Rescue", Description: "Save your first meal from going to waste", Icon: "🥗", Color: "#00796B", Requirement: "1 meal saved"},
		{ID: "b2", Name: "Kind Neighbor", Description: "Complete your first donation", Icon: "💝", Color: "#E91E63", Requirement: "1 donation completed"},
		{ID: "b3", Name: "Home Chef", Description: "Cook ten recipes from expiring items", Icon: "👨‍🍳", Color: "#FF9800", Requirement: "10 recipes cooked"},
		{ID: "b4", Name: "Planet Guardian", Description: "Save 100 kg of CO2", Icon: "🌍", Color: "#4CAF50", Requirement: "100 kg CO2 saved"},
		{ID: "b5", Name: "Community Pillar", Description: "Complete 25 donations", Icon: "🏆", Color: "#9C27B0", Requirement: "25 donations completed"},
		{ID: "b6", Name: "Streak Master", Description: "Keep a 30-day activity streak", Icon: "🔥", Color: "#F44336", Requirement: "30 day streak"},
	}
}
