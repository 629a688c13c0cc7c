package services

import (
	"strings"

	"github.com/Trupti-Varma/SAVEBITE/models"
)

// IngredientMatcher decides whether an inventory item is used by a
// recipe ingredient line. Pluggable so the matching policy can be
// swapped without touching the projector.
type IngredientMatcher interface {
	Matches(itemName, ingredient string) bool
}

// SubstringMatcher matches when the item name appears case-insensitively
// anywhere inside the ingredient text. Deliberately approximate: "Egg"
// matches "2 Eggplants, diced".
type SubstringMatcher struct{}

func (SubstringMatcher) Matches(itemName, ingredient string) bool {
	return strings.Contains(strings.ToLower(ingredient), strings.ToLower(itemName))
}

// AddItem prepends a new item. The id is caller-supplied and assumed
// unique; duplicates are not checked here.
func AddItem(items []models.FoodItem, item models.FoodItem) []models.FoodItem {
	out := make([]models.FoodItem, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// RemoveItem filters out the item with the given id. Removing an
// unknown id is a no-op.
func RemoveItem(items []models.FoodItem, id string) []models.FoodItem {
	out := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// EditItem replaces the item with the matching id, keeping its position.
// No-op if the id is absent.
func EditItem(items []models.FoodItem, updated models.FoodItem) []models.FoodItem {
	out := make([]models.FoodItem, len(items))
	for i, it := range items {
		if it.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = it
		}
	}
	return out
}

// SetItemStatus transitions the matching item to the given status,
// leaving every other field untouched. No-op if the id is absent.
func SetItemStatus(items []models.FoodItem, id, status string) []models.FoodItem {
	out := make([]models.FoodItem, len(items))
	for i, it := range items {
		if it.ID == id {
			it.Status = status
		}
		out[i] = it
	}
	return out
}

// ConsumeForRecipe marks every active item used by the recipe as
// consumed. Items already donated, wasted or consumed are never touched,
// even when their name matches an ingredient.
func ConsumeForRecipe(items []models.FoodItem, recipe models.Recipe, matcher IngredientMatcher) []models.FoodItem {
	out := make([]models.FoodItem, len(items))
	for i, it := range items {
		if it.Status == models.StatusActive && usedByRecipe(it.Name, recipe.Ingredients, matcher) {
			it.Status = models.StatusConsumed
		}
		out[i] = it
	}
	return out
}

func usedByRecipe(name string, ingredients []string, matcher IngredientMatcher) bool {
	for _, ing := range ingredients {
		if matcher.Matches(name, ing) {
			return true
		}
	}
	return false
}
