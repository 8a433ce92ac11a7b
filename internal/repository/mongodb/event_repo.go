package mongodb

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"actforbd/internal/domain"
)

type eventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return &eventRepository{
		coll: db.Collection(EventsCollection),
	}
}

func (r *eventRepository) Insert(ctx context.Context, event domain.Event) (*domain.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, bson.M(event))
	if err != nil {
		return nil, err
	}
	return insertAck(res), nil
}

func (r *eventRepository) Find(ctx context.Context, q domain.EventQuery) ([]domain.Event, error) {
	filter := bson.M{}
	if q.EventType != "" {
		filter[domain.FieldEventType] = q.EventType
	}
	if q.TitleContains != "" {
		filter[domain.FieldTitle] = primitive.Regex{Pattern: regexp.QuoteMeta(q.TitleContains), Options: "i"}
	}
	if q.Email != "" {
		filter[domain.FieldEmail] = q.Email
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.Event(d))
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (domain.Event, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	err = r.coll.FindOne(ctx, bson.M{domain.FieldID: oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return domain.Event(doc), nil
}

func (r *eventRepository) UpdateOwned(ctx context.Context, id, ownerEmail string, fields domain.Event) (*domain.UpdateAck, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	filter := bson.M{domain.FieldID: oid, domain.FieldEmail: ownerEmail}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return nil, err
	}
	return updateAck(res), nil
}

func (r *eventRepository) DeleteOwned(ctx context.Context, id, ownerEmail string) (*domain.DeleteAck, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{domain.FieldID: oid, domain.FieldEmail: ownerEmail})
	if err != nil {
		return nil, err
	}
	return deleteAck(res), nil
}

// DistinctEventTypes returns the distinct string eventType values. Documents
// whose eventType is not a string are skipped.
func (r *eventRepository) DistinctEventTypes(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, domain.FieldEventType, bson.D{})
	if err != nil {
		return nil, err
	}
	types := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			types = append(types, s)
		}
	}
	return types, nil
}
