package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"actforbd/internal/domain"
)

type joinedEventService struct {
	joinedRepo     domain.JoinedEventRepository
	contextTimeout time.Duration
}

func NewJoinedEventService(joinedRepo domain.JoinedEventRepository, timeout time.Duration) domain.JoinedEventService {
	return &joinedEventService{
		joinedRepo:     joinedRepo,
		contextTimeout: timeout,
	}
}

func (s *joinedEventService) ListJoinedEvents(ctx context.Context, email string) ([]domain.JoinedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	joined, err := s.joinedRepo.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list joined events: %w", err)
	}
	return joined, nil
}

// JoinEvent stores a join unless the same user already joined the same event.
// The lookup and the insert are separate operations; concurrent duplicates are
// rejected by the store's unique index and surface as ErrDuplicateJoin too.
func (s *joinedEventService) JoinEvent(ctx context.Context, joined domain.JoinedEvent) (*domain.InsertAck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, err := s.joinedRepo.FindByEventAndUser(ctx, joined.EventID(), joined.UserEmail())
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateJoin
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("check existing join: %w", err)
	}

	ack, err := s.joinedRepo.Insert(ctx, withoutID(joined))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateJoin) {
			return nil, err
		}
		return nil, fmt.Errorf("insert joined event: %w", err)
	}
	return ack, nil
}

func (s *joinedEventService) LeaveEvent(ctx context.Context, id, callerEmail string) (*domain.DeleteAck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	joined, err := s.joinedRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get joined event: %w", err)
	}
	if callerEmail == "" || joined.UserEmail() != callerEmail {
		return nil, domain.ErrForbidden
	}

	ack, err := s.joinedRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete joined event: %w", err)
	}
	return ack, nil
}
