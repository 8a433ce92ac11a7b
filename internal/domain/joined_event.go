package domain

import "context"

// Joined event field names as stored in the joinedEvent collection.
const (
	FieldEventID   = "eventId"
	FieldUserEmail = "userEmail"
)

// JoinedEvent records that a user joined an event. There is at most one per
// (eventId, userEmail) pair.
// swagger:model JoinedEvent
type JoinedEvent map[string]any

// ID returns the store identifier as a hex string, or "" if unset.
func (j JoinedEvent) ID() string { return idString(j[FieldID]) }

// EventID returns the referenced event id. It is not enforced as a foreign key.
func (j JoinedEvent) EventID() any { return j[FieldEventID] }

// UserEmail returns the joining user's identity.
func (j JoinedEvent) UserEmail() string { return stringField(j, FieldUserEmail) }

// JoinedEventRepository defines the interface for joined event storage.
type JoinedEventRepository interface {
	// Insert returns ErrDuplicateJoin when the store rejects a second (eventId, userEmail) pair.
	Insert(ctx context.Context, joined JoinedEvent) (*InsertAck, error)
	// ListByUserEmail returns joins sorted by eventDate ascending.
	ListByUserEmail(ctx context.Context, email string) ([]JoinedEvent, error)
	// FindByEventAndUser returns ErrNotFound when the pair has not been joined.
	FindByEventAndUser(ctx context.Context, eventID any, email string) (JoinedEvent, error)
	GetByID(ctx context.Context, id string) (JoinedEvent, error)
	DeleteByID(ctx context.Context, id string) (*DeleteAck, error)
}

// JoinedEventService defines joined event use cases.
type JoinedEventService interface {
	ListJoinedEvents(ctx context.Context, email string) ([]JoinedEvent, error)
	// JoinEvent returns ErrDuplicateJoin if the user already joined the event.
	JoinEvent(ctx context.Context, joined JoinedEvent) (*InsertAck, error)
	// LeaveEvent deletes the join by id. It returns ErrNotFound if absent and
	// ErrForbidden if the join belongs to someone other than callerEmail.
	LeaveEvent(ctx context.Context, id, callerEmail string) (*DeleteAck, error)
}
