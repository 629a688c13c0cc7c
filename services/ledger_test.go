package services

import (
	"testing"
	"time"

	"github.com/Trupti-Varma/SAVEBITE/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkDonated(t *testing.T) {
	stats := models.UserStats{
		MealsSaved:         10,
		CO2Saved:           2.4,
		MoneySaved:         100,
		DonationsCompleted: 3,
		XP:                 500,
	}

	got := MarkDonated(stats)

	assert.Equal(t, 11, got.MealsSaved)
	assert.Equal(t, 2.9, got.CO2Saved)
	assert.Equal(t, 105.0, got.MoneySaved)
	assert.Equal(t, 4, got.DonationsCompleted)
	assert.Equal(t, 550, got.XP)
	// untouched by the ledger
	assert.Equal(t, stats.Level, got.Level)
	assert.Equal(t, stats.StreakDays, got.StreakDays)
}

func TestMarkDonatedDoesNotMutateInput(t *testing.T) {
	stats := models.UserStats{MealsSaved: 1, XP: 50}
	_ = MarkDonated(stats)
	assert.Equal(t, 1, stats.MealsSaved)
	assert.Equal(t, 50, stats.XP)
}

func TestMarkDonatedDefaultsMissingDonationCount(t *testing.T) {
	// A record persisted before donationsCompleted existed decodes to 0.
	got := MarkDonated(models.UserStats{})
	assert.Equal(t, 1, got.DonationsCompleted)
}

func TestCookRecipe(t *testing.T) {
	stats := models.UserStats{MealsSaved: 5, CO2Saved: 1.1, MoneySaved: 20, XP: 200, DonationsCompleted: 2}

	got := CookRecipe(stats)

	assert.Equal(t, 6, got.MealsSaved)
	assert.Equal(t, 1.9, got.CO2Saved)
	assert.Equal(t, 30.0, got.MoneySaved)
	assert.Equal(t, 300, got.XP)
	// cooking is not a donation
	assert.Equal(t, 2, got.DonationsCompleted)
}

func TestCompleteDonationBatch(t *testing.T) {
	items := []models.FoodItem{
		{ID: "a", Name: "Bread Loaf"},
		{ID: "b", Name: "Apple Crate"},
		{ID: "c", Name: "Rice Bag"},
	}
	stats := models.UserStats{MealsSaved: 1, DonationsCompleted: 1, XP: 100}

	got := CompleteDonation(stats, items, 12, "City Care Food Bank", time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC))

	assert.Equal(t, 4, got.MealsSaved)
	assert.Equal(t, 2, got.DonationsCompleted, "a batch counts as one donation regardless of size")
	assert.Equal(t, 1.5, got.CO2Saved)
	assert.Equal(t, 12.0, got.MoneySaved)
	assert.Equal(t, 250, got.XP)

	require.Len(t, got.History, 1)
	h := got.History[0]
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "Bread Loaf + 2 more", h.FoodName)
	assert.Equal(t, "Jan 15, 2:00 PM", h.Date)
	assert.Equal(t, "City Care Food Bank", h.NGOName)
	assert.Equal(t, "completed", h.Status)
	assert.Equal(t, 150, h.Points)
}

func TestCompleteDonationEmptyBatch(t *testing.T) {
	stats := models.UserStats{MealsSaved: 7, XP: 300}

	got := CompleteDonation(stats, nil, 0, "", time.Now())

	assert.Equal(t, 7, got.MealsSaved)
	assert.Equal(t, 1, got.DonationsCompleted)
	assert.Equal(t, 300, got.XP)
	require.Len(t, got.History, 1)
	assert.Equal(t, 0, got.History[0].Points)
}

func TestCompleteDonationSingleItemLabel(t *testing.T) {
	got := CompleteDonation(models.UserStats{}, []models.FoodItem{{Name: "Milk Carton"}}, 5, "", time.Now())
	require.Len(t, got.History, 1)
	assert.Equal(t, "Milk Carton", got.History[0].FoodName)
}

func TestCO2RoundingIsStable(t *testing.T) {
	// 0.5 has an exact binary representation but 0.8 does not; either
	// way, per-step rounding must keep the counter free of residue.
	stats := models.UserStats{}
	for i := 0; i < 10; i++ {
		stats = MarkDonated(stats)
	}
	assert.Equal(t, 5.0, stats.CO2Saved)

	stats = models.UserStats{}
	for i := 0; i < 10; i++ {
		stats = CookRecipe(stats)
	}
	assert.Equal(t, 8.0, stats.CO2Saved)
}
