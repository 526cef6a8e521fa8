package db

import (
	"context"
	"fmt"

	"codestreak/models"
	"codestreak/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func usersCollection() *mongo.Collection {
	return MongoDatabase.Collection("users")
}

// FindUserByID fetches a user document by its object id.
func FindUserByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrNotFound
	}

	var user models.User
	err = usersCollection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail fetches a user document by email.
func FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := usersCollection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindLinkedUsers returns every user with a linked LeetCode username.
func FindLinkedUsers(ctx context.Context) ([]models.User, error) {
	filter := bson.M{"leetcodeUsername": bson.M{"$exists": true, "$nin": bson.A{nil, ""}}}
	cursor, err := usersCollection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ApplySubmission persists a submission plan as a single conditional update.
// The filter requires the problem id to still be absent, so two racing
// submissions of the same problem cannot both commit: the loser matches no
// document and gets ErrAlreadyCompleted.
func ApplySubmission(ctx context.Context, userID primitive.ObjectID, plan services.SubmissionPlan) (*models.User, error) {
	update := bson.M{
		"$inc":  bson.M{"coins": plan.CoinsEarned},
		"$push": bson.M{"completedProblems": plan.ProblemID},
	}
	if plan.StampDay {
		update["$set"] = bson.M{
			"streak":         plan.NewStreak,
			"lastActiveDate": plan.Now,
		}
		update["$push"] = bson.M{
			"completedProblems": plan.ProblemID,
			"completedDates":    plan.Now,
		}
	}

	filter := bson.M{
		"_id":               userID,
		"completedProblems": bson.M{"$ne": plan.ProblemID},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := usersCollection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// The validation read passed, so the user exists; a concurrent
		// submission must have claimed the problem first.
		return nil, services.ErrAlreadyCompleted
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply submission: %w", err)
	}
	return &updated, nil
}

// UpdateUserFields applies a partial update by email and returns the updated
// document.
func UpdateUserFields(ctx context.Context, email string, fields bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := usersCollection().FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// PurchaseTheme deducts cost and flips the purchased flag in one conditional
// update. The filter re-checks balance and the flag so concurrent purchases
// cannot double-spend.
func PurchaseTheme(ctx context.Context, email string, cost int) (*models.User, error) {
	filter := bson.M{
		"email":          email,
		"themePurchased": false,
		"coins":          bson.M{"$gte": cost},
	}
	update := bson.M{
		"$inc": bson.M{"coins": -cost},
		"$set": bson.M{"themePurchased": true},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := usersCollection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Distinguish the failure for the caller.
		user, findErr := FindUserByEmail(ctx, email)
		if findErr != nil {
			return nil, findErr
		}
		if user.ThemePurchased {
			return nil, services.ErrAlreadyPurchased
		}
		return nil, services.ErrInsufficientCoins
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
