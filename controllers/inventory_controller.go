package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Trupti-Varma/SAVEBITE/models"
	"github.com/Trupti-Varma/SAVEBITE/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemInput struct {
	Name       string  `json:"name" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	Unit       string  `json:"unit" binding:"required"`
	ExpiryDate string  `json:"expiry_date" binding:"required"` // YYYY-MM-DD
	ImageURL   string  `json:"image_url"`
	Condition  string  `json:"condition"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required,oneof=consumed donated wasted"`
}

// GET /inventory
func ListInventory(c *gin.Context) {
	uid := c.GetUint("userID")
	record, err := services.Tracker().Snapshot(uid)
	if respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, record.Inventory)
}

// POST /inventory
func AddInventoryItem(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiry, err := time.Parse("2006-01-02", input.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiry_date must be YYYY-MM-DD"})
		return
	}

	item := models.FoodItem{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Category:   input.Category,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		ExpiryDate: expiry,
		ImageURL:   input.ImageURL,
		Status:     models.StatusActive,
		Condition:  input.Condition,
	}

	record, err := services.Tracker().AddItem(uid, item)
	if respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item, "inventory": record.Inventory})
}

// PUT /inventory/:id
func EditInventoryItem(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiry, err := time.Parse("2006-01-02", input.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiry_date must be YYYY-MM-DD"})
		return
	}

	record, err := services.Tracker().Snapshot(uid)
	if respondTrackerErr(c, err) {
		return
	}

	// Keep the current status; edits never revive an item.
	status := models.StatusActive
	for _, it := range record.Inventory {
		if it.ID == id {
			status = it.Status
		}
	}

	updated := models.FoodItem{
		ID:         id,
		Name:       input.Name,
		Category:   input.Category,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		ExpiryDate: expiry,
		ImageURL:   input.ImageURL,
		Status:     status,
		Condition:  input.Condition,
	}

	record, err = services.Tracker().EditItem(uid, updated)
	if respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": record.Inventory})
}

// DELETE /inventory/:id
func DeleteInventoryItem(c *gin.Context) {
	uid := c.GetUint("userID")

	record, err := services.Tracker().DeleteItem(uid, c.Param("id"))
	if respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": record.Inventory})
}

// PATCH /inventory/:id/status
func UpdateInventoryStatus(c *gin.Context) {
	uid := c.GetUint("userID")

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := services.Tracker().UpdateStatus(uid, c.Param("id"), input.Status)
	if respondTrackerErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": record.Inventory, "stats": record.Stats})
}

func respondTrackerErr(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, services.ErrNoSession) {
		c.JSON(http.StatusConflict, gin.H{"error": "session not started, log in first"})
		return true
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	return true
}
