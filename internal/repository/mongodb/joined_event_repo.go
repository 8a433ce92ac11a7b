package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"actforbd/internal/domain"
)

type joinedEventRepository struct {
	coll *mongo.Collection
}

func NewJoinedEventRepository(db *mongo.Database) domain.JoinedEventRepository {
	return &joinedEventRepository{
		coll: db.Collection(JoinedEventsCollection),
	}
}

func (r *joinedEventRepository) Insert(ctx context.Context, joined domain.JoinedEvent) (*domain.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, bson.M(joined))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateJoin
		}
		return nil, err
	}
	return insertAck(res), nil
}

func (r *joinedEventRepository) ListByUserEmail(ctx context.Context, email string) ([]domain.JoinedEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: domain.FieldEventDate, Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{domain.FieldUserEmail: email}, opts)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	joined := make([]domain.JoinedEvent, 0, len(docs))
	for _, d := range docs {
		joined = append(joined, domain.JoinedEvent(d))
	}
	return joined, nil
}

func (r *joinedEventRepository) FindByEventAndUser(ctx context.Context, eventID any, email string) (domain.JoinedEvent, error) {
	filter := bson.M{domain.FieldEventID: eventID, domain.FieldUserEmail: email}
	return r.findOne(ctx, filter)
}

func (r *joinedEventRepository) GetByID(ctx context.Context, id string) (domain.JoinedEvent, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{domain.FieldID: oid})
}

func (r *joinedEventRepository) DeleteByID(ctx context.Context, id string) (*domain.DeleteAck, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{domain.FieldID: oid})
	if err != nil {
		return nil, err
	}
	return deleteAck(res), nil
}

func (r *joinedEventRepository) findOne(ctx context.Context, filter bson.M) (domain.JoinedEvent, error) {
	var doc bson.M
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return domain.JoinedEvent(doc), nil
}
