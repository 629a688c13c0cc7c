package models

// Recipe is a candidate recipe returned by the external generation
// service. Only Ingredients is consumed by the core (for matching
// inventory items when a recipe is cooked); the rest is passed through
// to the client.
type Recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	CookingTime  int      `json:"cookingTime"` // minutes
	Difficulty   string   `json:"difficulty"`  // "Easy" | "Medium" | "Hard"
	SavedItems   []string `json:"savedItems,omitempty"`
}
