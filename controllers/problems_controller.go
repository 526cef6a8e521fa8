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

// GetProblems returns the full static catalog.
func GetProblems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"problems": catalog.All(),
		"message":  "Problems loaded successfully",
	})
}

// GetProblem returns a single catalog entry by id.
func GetProblem(c *gin.Context) {
	problem, err := catalog.ByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Problem not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"problem": problem,
		"message": "Problem loaded successfully",
	})
}

// RandomProblemRequest carries the caller's completed problem ids so the pick
// can avoid them.
type RandomProblemRequest struct {
	CompletedProblems []string `json:"completedProblems"`
}

// RandomProblem returns a random uncompleted problem, or any problem when the
// caller has completed the whole catalog.
func RandomProblem(c *gin.Context) {
	var req RandomProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	problem, allCompleted, err := catalog.RandomUncompleted(req.CompletedProblems)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load problem"})
		return
	}

	message := "Random problem loaded successfully"
	if allCompleted {
		message = "All problems completed! Here's a random one to practice."
	}
	c.JSON(http.StatusOK, gin.H{"problem": problem, "message": message})
}

// SubmitProblemRequest identifies the user and the problem they completed.
type SubmitProblemRequest struct {
	UserID    string `json:"userId"`
	ProblemID string `json:"problemId"`
}

// SubmitProblem records a completed problem: validates, computes the streak
// transition, and persists coins, streak and history in one atomic update.
func SubmitProblem(c *gin.Context) {
	var req SubmitProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.ProblemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and Problem ID are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := db.FindUserByID(ctx, req.UserID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("submit: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	plan, err := services.PlanSubmission(user, req.ProblemID, time.Now())
	if errors.Is(err, services.ErrAlreadyCompleted) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already completed this problem"})
		return
	}
	if err != nil {
		log.Printf("submit: planning failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if plan.Inconsistent {
		log.Printf("submit: user %s lastActiveDate is today but no completion timestamp for today", req.UserID)
	}

	updated, err := db.ApplySubmission(ctx, user.ID, plan)
	if errors.Is(err, services.ErrAlreadyCompleted) {
		// Lost a race with a concurrent submission of the same problem.
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already completed this problem"})
		return
	}
	if err != nil {
		log.Printf("submit: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":                updated,
		"message":             "Problem submitted successfully",
		"coinsEarned":         plan.CoinsEarned,
		"newStreak":           updated.Streak,
		"isFirstProblemToday": plan.FirstToday,
	})
}
