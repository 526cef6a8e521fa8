package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"codestreak/db"
	"codestreak/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// UpdateUserRequest is a partial update keyed by email. Pointer fields
// distinguish "absent" from zero values.
type UpdateUserRequest struct {
	Email            string  `json:"email"`
	LeetcodeUsername *string `json:"leetcodeUsername"`
	Coins            *int    `json:"coins"`
	Solved           *int    `json:"solved"`
	ThemePurchased   *bool   `json:"themePurchased"`
}

// UpdateUser applies a partial update to the user record and returns it
// without secret fields.
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	fields := bson.M{}
	if req.LeetcodeUsername != nil {
		fields["leetcodeUsername"] = *req.LeetcodeUsername
	}
	if req.Coins != nil {
		fields["coins"] = *req.Coins
	}
	if req.Solved != nil {
		fields["solved"] = *req.Solved
	}
	if req.ThemePurchased != nil {
		fields["themePurchased"] = *req.ThemePurchased
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := db.UpdateUserFields(ctx, req.Email, fields)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		log.Printf("user update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetUserActivity builds the activity grid from the user's own first-of-day
// completion timestamps.
func GetUserActivity(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := db.FindUserByEmail(ctx, email)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		log.Printf("user activity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	dates := make([]string, 0, len(user.CompletedDates))
	for _, d := range user.CompletedDates {
		dates = append(dates, d.Format("2006-01-02"))
	}
	grid := services.BuildActivityGrid(dates, time.Now())
	c.JSON(http.StatusOK, grid)
}
