package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"actforbd/internal/domain"
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func idHex(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

func insertAck(res *mongo.InsertOneResult) *domain.InsertAck {
	return &domain.InsertAck{Acknowledged: true, InsertedID: idHex(res.InsertedID)}
}

func updateAck(res *mongo.UpdateResult) *domain.UpdateAck {
	ack := &domain.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idHex(res.UpsertedID)
		ack.UpsertedID = &id
	}
	return ack
}

func deleteAck(res *mongo.DeleteResult) *domain.DeleteAck {
	return &domain.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}
}
