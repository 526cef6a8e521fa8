package utils

import (
	"context"
	"log"
	"time"

	"codestreak/db"
	"codestreak/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PopulateDemoUsers seeds a couple of demo accounts when the users
// collection is empty, so a fresh deployment has something to show.
func PopulateDemoUsers() {
	collection := db.MongoDatabase.Collection("users")
	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil || count > 0 {
		return
	}

	users := []models.User{
		{
			ID:                primitive.NewObjectID(),
			Email:             "alice@example.com",
			Name:              "Alice Johnson",
			Coins:             30,
			CompletedDates:    []time.Time{},
			CompletedProblems: []string{},
			LeetcodeUsername:  "alice_codes",
			CreatedAt:         time.Now(),
		},
		{
			ID:                primitive.NewObjectID(),
			Email:             "bob@example.com",
			Name:              "Bob Smith",
			Coins:             10,
			CompletedDates:    []time.Time{},
			CompletedProblems: []string{},
			CreatedAt:         time.Now(),
		},
	}

	for _, user := range users {
		if _, err := collection.InsertOne(context.Background(), user); err != nil {
			log.Printf("seed: failed to insert %s: %v", user.Email, err)
		}
	}
}
