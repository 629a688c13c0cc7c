package models

// Review left by an NGO on a completed donation.
type Review struct {
	Rating  int      `json:"rating"`
	Tags    []string `json:"tags"`
	Comment string   `json:"comment,omitempty"`
}

type DonationHistoryItem struct {
	ID       string  `json:"id"`
	FoodName string  `json:"foodName"`
	Date     string  `json:"date"` // display string, e.g. "Jan 15, 2:00 PM"
	NGOName  string  `json:"ngoName"`
	Status   string  `json:"status"` // "completed" | "pending"
	Points   int     `json:"points"`
	Review   *Review `json:"review,omitempty"`
}

// UserStats is the cumulative impact record for one user. All counters
// grow monotonically through ledger operations; level and streakDays are
// only ever set directly (profile override), never derived.
type UserStats struct {
	MealsSaved         int                   `json:"mealsSaved"`
	CO2Saved           float64               `json:"co2Saved"` // kg, kept at one decimal
	MoneySaved         float64               `json:"moneySaved"`
	DonationsCompleted int                   `json:"donationsCompleted"`
	StreakDays         int                   `json:"streakDays"`
	Level              int                   `json:"level"`
	XP                 int                   `json:"xp"`
	EarnedBadges       []string              `json:"earnedBadges"`
	History            []DonationHistoryItem `json:"history"`
}
