package controllers

import (
	"net/http"

	"github.com/Trupti-Varma/SAVEBITE/services"
	"github.com/Trupti-Varma/SAVEBITE/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input.Email, input.Password, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Best effort; registration succeeds even if the mail bounces.
	_ = utils.SendWelcomeEmail(user.Email, user.Name)

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

// Login authenticates and opens the user's tracking session, returning
// the token together with the loaded (or freshly seeded) record.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	record, err := services.Tracker().Begin(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":     user.ID,
			"email":  user.Email,
			"name":   user.Name,
			"avatar": user.Avatar,
		},
		"inventory": record.Inventory,
		"stats":     record.Stats,
	})
}

// Logout drops the session state immediately. The token itself simply
// expires; there is no server-side revocation list.
func Logout(c *gin.Context) {
	uid := c.GetUint("userID")
	services.Tracker().End(uid)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
