package services

import (
	"context"
	"fmt"
	"strings"

	"actforbd/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]domain.Event
	order     []string
	nextID    int
	err       error // if set, every call returns this error
	lastQuery domain.EventQuery
	lastSet   domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[string]domain.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Insert(_ context.Context, e domain.Event) (*domain.InsertAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := fmt.Sprintf("%024x", f.nextID)
	f.nextID++
	stored := domain.Event{domain.FieldID: id}
	for k, v := range e {
		stored[k] = v
	}
	f.byID[id] = stored
	f.order = append(f.order, id)
	return &domain.InsertAck{Acknowledged: true, InsertedID: id}, nil
}

func (f *fakeEventRepo) Find(_ context.Context, q domain.EventQuery) ([]domain.Event, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Event{}
	for _, id := range f.order {
		e, ok := f.byID[id]
		if !ok {
			continue
		}
		if q.EventType != "" && e.EventType() != q.EventType {
			continue
		}
		if q.Email != "" && e.Email() != q.Email {
			continue
		}
		if q.TitleContains != "" && !strings.Contains(strings.ToLower(e.Title()), strings.ToLower(q.TitleContains)) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) UpdateOwned(_ context.Context, id, ownerEmail string, fields domain.Event) (*domain.UpdateAck, error) {
	f.lastSet = fields
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok || e.Email() != ownerEmail {
		return &domain.UpdateAck{Acknowledged: true}, nil
	}
	for k, v := range fields {
		e[k] = v
	}
	return &domain.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeEventRepo) DeleteOwned(_ context.Context, id, ownerEmail string) (*domain.DeleteAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok || e.Email() != ownerEmail {
		return &domain.DeleteAck{Acknowledged: true}, nil
	}
	delete(f.byID, id)
	return &domain.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

func (f *fakeEventRepo) DistinctEventTypes(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, id := range f.order {
		e, ok := f.byID[id]
		if !ok || e.EventType() == "" || seen[e.EventType()] {
			continue
		}
		seen[e.EventType()] = true
		out = append(out, e.EventType())
	}
	return out, nil
}

// fakeJoinedRepo is an in-memory JoinedEventRepository for tests.
type fakeJoinedRepo struct {
	byID      map[string]domain.JoinedEvent
	nextID    int
	findErr   error
	insertErr error
	getErr    error
	deleteErr error
	inserts   int
}

func newFakeJoinedRepo() *fakeJoinedRepo {
	return &fakeJoinedRepo{
		byID:   make(map[string]domain.JoinedEvent),
		nextID: 1,
	}
}

func (f *fakeJoinedRepo) add(j domain.JoinedEvent) string {
	id := fmt.Sprintf("%024x", 1000+f.nextID)
	f.nextID++
	stored := domain.JoinedEvent{domain.FieldID: id}
	for k, v := range j {
		stored[k] = v
	}
	f.byID[id] = stored
	return id
}

func (f *fakeJoinedRepo) Insert(_ context.Context, j domain.JoinedEvent) (*domain.InsertAck, error) {
	f.inserts++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return &domain.InsertAck{Acknowledged: true, InsertedID: f.add(j)}, nil
}

func (f *fakeJoinedRepo) ListByUserEmail(_ context.Context, email string) ([]domain.JoinedEvent, error) {
	out := []domain.JoinedEvent{}
	for _, j := range f.byID {
		if j.UserEmail() == email {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJoinedRepo) FindByEventAndUser(_ context.Context, eventID any, email string) (domain.JoinedEvent, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, j := range f.byID {
		if j.EventID() == eventID && j.UserEmail() == email {
			return j, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeJoinedRepo) GetByID(_ context.Context, id string) (domain.JoinedEvent, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if j, ok := f.byID[id]; ok {
		return j, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeJoinedRepo) DeleteByID(_ context.Context, id string) (*domain.DeleteAck, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return &domain.DeleteAck{Acknowledged: true}, nil
	}
	delete(f.byID, id)
	return &domain.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}
