package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a user entity. CompletedDates holds one timestamp per
// first-of-day completion, so its length can be smaller than
// CompletedProblems. CompletedProblems never contains duplicates.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email             string             `bson:"email" json:"email"`
	Name              string             `bson:"name,omitempty" json:"name,omitempty"`
	Password          string             `bson:"password,omitempty" json:"-"`
	Coins             int                `bson:"coins" json:"coins"`
	Solved            int                `bson:"solved" json:"solved"`
	Streak            int                `bson:"streak" json:"streak"`
	LastActiveDate    *time.Time         `bson:"lastActiveDate,omitempty" json:"lastActiveDate,omitempty"`
	CompletedDates    []time.Time        `bson:"completedDates" json:"completedDates"`
	CompletedProblems []string           `bson:"completedProblems" json:"completedProblems"`
	LeetcodeUsername  string             `bson:"leetcodeUsername,omitempty" json:"leetcodeUsername,omitempty"`
	ThemePurchased    bool               `bson:"themePurchased" json:"themePurchased"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
