package controllers

import (
	"net/http"

	"github.com/Trupti-Varma/SAVEBITE/services"

	"github.com/gin-gonic/gin"
)

// POST /food/scan  { "image_base64": "data:…" }
func ScanFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	scanSvc, err := services.NewScanService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := scanSvc.Scan(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
