package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Trupti-Varma/SAVEBITE/models"
)

// RecipeGenerator produces candidate recipes for the current inventory.
// The generation service itself (AI-backed or otherwise) is external;
// the core only reads the ingredients list off each recipe.
type RecipeGenerator interface {
	Generate(inventory []models.FoodItem) ([]models.Recipe, error)
}

// RecipeAPIService calls the external recipe-generation API with the
// user's active inventory.
type RecipeAPIService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRecipeAPIService() *RecipeAPIService {
	return &RecipeAPIService{
		baseURL: os.Getenv("RECIPE_API_URL"),
		apiKey:  os.Getenv("RECIPE_API_KEY"),
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

type recipeRequest struct {
	Ingredients []recipeIngredient `json:"ingredients"`
}

type recipeIngredient struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	ExpiresIn int     `json:"expires_in_days"`
}

type recipeResponse struct {
	Recipes []models.Recipe `json:"recipes"`
}

// Generate sends the active items (soonest expiry first is the server's
// job, we just send everything usable) and returns the candidates.
func (s *RecipeAPIService) Generate(inventory []models.FoodItem) ([]models.Recipe, error) {
	req := recipeRequest{Ingredients: make([]recipeIngredient, 0, len(inventory))}
	now := time.Now()
	for _, it := range inventory {
		if it.Status != models.StatusActive {
			continue
		}
		req.Ingredients = append(req.Ingredients, recipeIngredient{
			Name:      it.Name,
			Category:  it.Category,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			ExpiresIn: int(it.ExpiryDate.Sub(now).Hours() / 24),
		})
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.baseURL+"/v1/recipes/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe API error %d: %s", resp.StatusCode, string(body))
	}

	var rr recipeResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("failed to parse recipe API JSON: %w", err)
	}
	return rr.Recipes, nil
}
