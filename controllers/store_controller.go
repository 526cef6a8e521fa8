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
)

// ThemeCost is the one-time coin price of the cosmetic theme.
const ThemeCost = 20

// PurchaseThemeRequest identifies the buying user.
type PurchaseThemeRequest struct {
	Email string `json:"email"`
}

// PurchaseTheme deducts the theme cost and sets the purchased flag, guarded
// by balance and not-already-purchased checks.
func PurchaseTheme(c *gin.Context) {
	var req PurchaseThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := db.PurchaseTheme(ctx, req.Email, ThemeCost)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, services.ErrAlreadyPurchased):
		c.JSON(http.StatusBadRequest, gin.H{"error": "already purchased"})
	case errors.Is(err, services.ErrInsufficientCoins):
		c.JSON(http.StatusBadRequest, gin.H{"error": "not enough coins"})
	case err != nil:
		log.Printf("store: theme purchase failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	default:
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
