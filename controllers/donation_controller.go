package controllers

import (
	"net/http"

	"github.com/Trupti-Varma/SAVEBITE/models"
	"github.com/Trupti-Varma/SAVEBITE/services"
	"github.com/Trupti-Varma/SAVEBITE/utils"

	"github.com/gin-gonic/gin"
)

type DonationInput struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
	Amount  float64  `json:"amount"`
	NGOName string   `json:"ngo_name"`
}

// POST /donations/complete
func CompleteDonation(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	var input DonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := services.Tracker().CompleteDonation(uid, input.ItemIDs, input.Amount, input.NGOName)
	if respondTrackerErr(c, err) {
		return
	}

	// Receipt mail is best effort.
	if n := len(record.Stats.History); n > 0 && email != "" {
		last := record.Stats.History[n-1]
		_ = utils.SendDonationReceipt(email, last.FoodName, len(input.ItemIDs), input.Amount, input.NGOName)
	}

	c.JSON(http.StatusOK, gin.H{"inventory": record.Inventory, "stats": record.Stats})
}

// GET /donations/history
func DonationHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	record, err := services.Tracker().Snapshot(uid)
	if respondTrackerErr(c, err) {
		return
	}
	history := record.Stats.History
	if history == nil {
		history = []models.DonationHistoryItem{}
	}
	c.JSON(http.StatusOK, history)
}
