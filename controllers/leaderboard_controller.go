package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"codestreak/db"
	"codestreak/services"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard ranks every user with a linked LeetCode profile by solved
// count. Individual profile fetch failures leave that user on the board with
// zero solved rather than failing the request.
func GetLeaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := db.FindLinkedUsers(ctx)
	if err != nil {
		log.Printf("leaderboard: user query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	entries := services.BuildLeaderboard(ctx, users, statsFetcher)
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
