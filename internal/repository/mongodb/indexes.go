package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"actforbd/internal/domain"
)

// JoinUniqueIndex is the unique index on (eventId, userEmail) in joinedEvent.
const JoinUniqueIndex = "eventId_userEmail_unique"

// EnsureIndexes creates the indexes the repositories rely on. Creating the
// join index fails when the collection already holds duplicate pairs.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: domain.FieldEventID, Value: 1},
			{Key: domain.FieldUserEmail, Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName(JoinUniqueIndex),
	}
	if _, err := db.Collection(JoinedEventsCollection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create index %s: %w", JoinUniqueIndex, err)
	}
	return nil
}
