package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LeaderboardEntry is an ephemeral projection of a user plus their linked
// profile's solved count. Ranking is nil when the stats fetch failed.
type LeaderboardEntry struct {
	ID               primitive.ObjectID `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	LeetcodeUsername string             `json:"leetcodeUsername"`
	TotalSolved      int                `json:"totalSolved"`
	Ranking          *int               `json:"ranking"`
}
