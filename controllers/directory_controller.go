package controllers

import (
	"net/http"

	"github.com/Trupti-Varma/SAVEBITE/services"

	"github.com/gin-gonic/gin"
)

// GET /ngos
func ListNGOs(c *gin.Context) {
	ngos, err := services.ListNGOs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ngos)
}

// GET /badges
func ListBadges(c *gin.Context) {
	c.JSON(http.StatusOK, services.BadgeCatalog())
}
