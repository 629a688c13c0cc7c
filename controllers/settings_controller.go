package controllers

import (
	"net/http"

	"github.com/Trupti-Varma/SAVEBITE/services"

	"github.com/gin-gonic/gin"
)

type themeInput struct {
	Theme string `json:"theme" binding:"required"`
}

// GET /settings/theme
func GetTheme(c *gin.Context) {
	theme, err := services.GetTheme()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// PUT /settings/theme
func SetTheme(c *gin.Context) {
	var input themeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := services.SetTheme(input.Theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": input.Theme})
}
