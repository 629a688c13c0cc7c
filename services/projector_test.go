package services

import (
	"testing"

	"github.com/Trupti-Varma/SAVEBITE/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInventory() []models.FoodItem {
	return []models.FoodItem{
		{ID: "1", Name: "Tomato", Status: models.StatusActive},
		{ID: "2", Name: "Egg", Status: models.StatusActive},
		{ID: "3", Name: "Cheddar Cheese", Status: models.StatusDonated},
	}
}

func TestAddItemPrepends(t *testing.T) {
	items := sampleInventory()
	got := AddItem(items, models.FoodItem{ID: "4", Name: "Bread"})

	require.Len(t, got, 4)
	assert.Equal(t, "4", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
	// input untouched
	assert.Len(t, items, 3)
}

func TestRemoveItem(t *testing.T) {
	got := RemoveItem(sampleInventory(), "2")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	items := sampleInventory()
	got := RemoveItem(items, "nope")
	assert.Equal(t, items, got)
}

func TestEditItemKeepsPosition(t *testing.T) {
	got := EditItem(sampleInventory(), models.FoodItem{ID: "2", Name: "Free-Range Egg", Status: models.StatusActive, Quantity: 12})

	require.Len(t, got, 3)
	assert.Equal(t, "Free-Range Egg", got[1].Name)
	assert.Equal(t, 12.0, got[1].Quantity)
}

func TestEditUnknownIDIsNoOp(t *testing.T) {
	items := sampleInventory()
	got := EditItem(items, models.FoodItem{ID: "nope", Name: "Ghost"})
	assert.Equal(t, items, got)
}

func TestSetItemStatus(t *testing.T) {
	got := SetItemStatus(sampleInventory(), "1", models.StatusWasted)

	assert.Equal(t, models.StatusWasted, got[0].Status)
	assert.Equal(t, "Tomato", got[0].Name, "other fields stay untouched")
	assert.Equal(t, models.StatusActive, got[1].Status)
}

func TestSetStatusUnknownIDIsNoOp(t *testing.T) {
	items := sampleInventory()
	got := SetItemStatus(items, "nope", models.StatusWasted)
	assert.Equal(t, items, got)
}

func TestSubstringMatcher(t *testing.T) {
	m := SubstringMatcher{}

	assert.True(t, m.Matches("Tomato", "2 ripe tomatoes, diced"))
	assert.True(t, m.Matches("Egg", "1 Eggplant"), "matching is deliberately approximate")
	assert.False(t, m.Matches("Eggplant", "2 eggs"), "ingredient must contain the item name, not the reverse")
}

func TestConsumeForRecipe(t *testing.T) {
	items := []models.FoodItem{
		{ID: "1", Name: "Tomato", Status: models.StatusActive},
		{ID: "2", Name: "Egg", Status: models.StatusActive},
		{ID: "3", Name: "Lettuce", Status: models.StatusActive},
	}
	recipe := models.Recipe{Ingredients: []string{"2 Tomatoes", "3 Eggs, beaten"}}

	got := ConsumeForRecipe(items, recipe, SubstringMatcher{})

	assert.Equal(t, models.StatusConsumed, got[0].Status)
	assert.Equal(t, models.StatusConsumed, got[1].Status)
	assert.Equal(t, models.StatusActive, got[2].Status)
}

func TestConsumeForRecipeSkipsInactiveItems(t *testing.T) {
	items := []models.FoodItem{
		{ID: "1", Name: "Tomato", Status: models.StatusDonated},
		{ID: "2", Name: "Egg", Status: models.StatusWasted},
		{ID: "3", Name: "Lettuce", Status: models.StatusConsumed},
	}
	recipe := models.Recipe{Ingredients: []string{"Tomato", "Egg", "Lettuce"}}

	got := ConsumeForRecipe(items, recipe, SubstringMatcher{})

	assert.Equal(t, models.StatusDonated, got[0].Status)
	assert.Equal(t, models.StatusWasted, got[1].Status)
	assert.Equal(t, models.StatusConsumed, got[2].Status)
}
