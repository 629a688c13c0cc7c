package services

import (
	"fmt"
	"math"
	"time"

	"github.com/Trupti-Varma/SAVEBITE/models"

	"github.com/google/uuid"
)

// Impact credited per action. A single donated item is worth 50 XP,
// a cooked recipe 100.
const (
	donateCO2PerItem = 0.5
	donateMoney      = 5
	donateXP         = 50
	cookCO2          = 0.8
	cookMoney        = 10
	cookXP           = 100
)

// round1 keeps co2Saved at one decimal after every update so repeated
// additions cannot accumulate floating-point residue.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// MarkDonated credits the stats for a single item marked as donated
// from the inventory screen. The input is not mutated.
func MarkDonated(stats models.UserStats) models.UserStats {
	stats.MealsSaved++
	stats.DonationsCompleted++
	stats.CO2Saved = round1(stats.CO2Saved + donateCO2PerItem)
	stats.MoneySaved += donateMoney
	stats.XP += donateXP
	return stats
}

// CookRecipe credits the stats for one cooked recipe, regardless of how
// many inventory items the recipe consumed.
func CookRecipe(stats models.UserStats) models.UserStats {
	stats.MealsSaved++
	stats.CO2Saved = round1(stats.CO2Saved + cookCO2)
	stats.MoneySaved += cookMoney
	stats.XP += cookXP
	return stats
}

// CompleteDonation credits a donation batch of the given items with a
// claimed value of amount. The batch counts as one completed donation
// however many items it contains, and appends one history entry.
// ngoName may be empty when the caller did not pick a recipient.
func CompleteDonation(stats models.UserStats, donated []models.FoodItem, amount float64, ngoName string, now time.Time) models.UserStats {
	k := len(donated)
	stats.MealsSaved += k
	stats.DonationsCompleted++
	stats.CO2Saved = round1(stats.CO2Saved + float64(k)*donateCO2PerItem)
	stats.MoneySaved += amount
	stats.XP += k * donateXP

	stats.History = append(stats.History, models.DonationHistoryItem{
		ID:       uuid.NewString(),
		FoodName: batchLabel(donated),
		Date:     now.Format("Jan 2, 3:04 PM"),
		NGOName:  ngoName,
		Status:   "completed",
		Points:   k * donateXP,
	})
	return stats
}

// batchLabel summarizes a donation batch for the history list.
func batchLabel(items []models.FoodItem) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0].Name
	default:
		return fmt.Sprintf("%s + %d more", items[0].Name, len(items)-1)
	}
}
