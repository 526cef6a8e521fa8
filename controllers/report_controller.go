package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"codestreak/services"

	"github.com/gin-gonic/gin"
)

// GetReport fetches the user's statistics and generates an AI study plan.
func GetReport(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	stats, report, err := services.GenerateReport(ctx, username, statsFetcher)
	if err != nil {
		log.Printf("report: generation failed for %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":  stats,
		"report": report,
	})
}
