package controllers

import (
	"net/http"

	"github.com/Trupti-Varma/SAVEBITE/models"
	"github.com/Trupti-Varma/SAVEBITE/services"

	"github.com/gin-gonic/gin"
)

// POST /recipes/generate
func GenerateRecipes(c *gin.Context) {
	uid := c.GetUint("userID")

	record, err := services.Tracker().Snapshot(uid)
	if respondTrackerErr(c, err) {
		return
	}

	gen := services.NewRecipeAPIService()
	recipes, err := gen.Generate(record.Inventory)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if err := services.Tracker().UpdateRecipes(uid, recipes); respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes
func ListRecipes(c *gin.Context) {
	uid := c.GetUint("userID")

	recipes, err := services.Tracker().Recipes(uid)
	if respondTrackerErr(c, err) {
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// POST /recipes/cook
func CookRecipe(c *gin.Context) {
	uid := c.GetUint("userID")

	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := services.Tracker().Cook(uid, recipe)
	if respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": record.Inventory, "stats": record.Stats})
}
