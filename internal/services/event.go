package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"actforbd/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event domain.Event) (*domain.InsertAck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ack, err := s.eventRepo.Insert(ctx, withoutID(event))
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return ack, nil
}

func (s *eventService) ListEvents(ctx context.Context, eventType, search string) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	q := domain.EventQuery{TitleContains: search}
	if eventType != domain.AllEventTypes {
		q.EventType = eventType
	}
	events, err := s.eventRepo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListEventsByOwner(ctx context.Context, email string) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// An empty email would disable the filter and return every event.
	if email == "" {
		return []domain.Event{}, nil
	}
	events, err := s.eventRepo.Find(ctx, domain.EventQuery{Email: email})
	if err != nil {
		return nil, fmt.Errorf("list events by owner: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// UpdateEvent sets every field of event on the stored event whose id and
// email both match. A missing event and a foreign owner are both reported as
// ErrForbidden.
func (s *eventService) UpdateEvent(ctx context.Context, id string, event domain.Event) (*domain.UpdateAck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	owner := event.Email()
	if owner == "" {
		return nil, domain.ErrForbidden
	}
	ack, err := s.eventRepo.UpdateOwned(ctx, id, owner, withoutID(event))
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if ack.MatchedCount == 0 {
		return nil, domain.ErrForbidden
	}
	return ack, nil
}

// DeleteEvent removes the event owned by email. A missing event and a foreign
// owner are both reported as ErrForbidden.
func (s *eventService) DeleteEvent(ctx context.Context, id, email string) (*domain.DeleteAck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ack, err := s.eventRepo.DeleteOwned(ctx, id, email)
	if err != nil {
		return nil, fmt.Errorf("delete event: %w", err)
	}
	if ack.DeletedCount == 0 {
		return nil, domain.ErrForbidden
	}
	return ack, nil
}

func (s *eventService) ListEventTypes(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	types, err := s.eventRepo.DistinctEventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	return types, nil
}

// withoutID returns a shallow copy of doc without the _id field.
func withoutID[M ~map[string]any](doc M) M {
	out := make(M, len(doc))
	for k, v := range doc {
		if k == domain.FieldID {
			continue
		}
		out[k] = v
	}
	return out
}
