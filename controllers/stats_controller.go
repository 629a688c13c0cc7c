package controllers

import (
	"net/http"

	"github.com/Trupti-Varma/SAVEBITE/models"
	"github.com/Trupti-Varma/SAVEBITE/services"

	"github.com/gin-gonic/gin"
)

// GET /stats
func GetStats(c *gin.Context) {
	uid := c.GetUint("userID")

	record, err := services.Tracker().Snapshot(uid)
	if respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, record.Stats)
}

// PUT /stats replaces the stats record wholesale. The profile screen
// uses this for manual level/streak adjustments; the ledger never
// derives those itself.
func OverrideStats(c *gin.Context) {
	uid := c.GetUint("userID")

	var stats models.UserStats
	if err := c.ShouldBindJSON(&stats); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := services.Tracker().OverrideStats(uid, stats)
	if respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, record.Stats)
}
