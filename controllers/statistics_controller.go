package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"codestreak/services"

	"github.com/gin-gonic/gin"
)

// GetStatistics returns the normalized snapshot of a LeetCode profile,
// served through the TTL cache.
func GetStatistics(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stats, err := statsFetcher.FetchStats(ctx, username)
	if err != nil {
		log.Printf("statistics: fetch failed for %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data from LeetCode"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetStatisticsActivity builds the activity grid from a profile's expanded
// submission calendar.
func GetStatisticsActivity(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stats, err := statsFetcher.FetchStats(ctx, username)
	if err != nil {
		log.Printf("statistics: fetch failed for %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data from LeetCode"})
		return
	}

	grid := services.BuildActivityGrid(stats.CompletedDates, time.Now())
	c.JSON(http.StatusOK, grid)
}
