package domain

import (
	"context"
)

// Well-known event field names as stored in the events collection.
const (
	FieldID        = "_id"
	FieldTitle     = "title"
	FieldEventType = "eventType"
	FieldEmail     = "email"
	FieldEventDate = "eventDate"
)

// AllEventTypes is the eventType filter value that disables type filtering.
const AllEventTypes = "All"

// Event is a community event. Apart from the well-known fields, any field the
// client submits is stored and returned verbatim.
// swagger:model Event
type Event map[string]any

// ID returns the store identifier as a hex string, or "" if unset.
func (e Event) ID() string { return idString(e[FieldID]) }

// Title returns the event title.
func (e Event) Title() string { return stringField(e, FieldTitle) }

// EventType returns the category tag.
func (e Event) EventType() string { return stringField(e, FieldEventType) }

// Email returns the owner identity.
func (e Event) Email() string { return stringField(e, FieldEmail) }

// EventQuery narrows a listing of events. Empty fields do not filter.
type EventQuery struct {
	// EventType is matched exactly.
	EventType string
	// TitleContains is a case-insensitive literal substring of title.
	TitleContains string
	// Email is matched exactly against the owner field.
	Email string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Insert(ctx context.Context, event Event) (*InsertAck, error)
	Find(ctx context.Context, q EventQuery) ([]Event, error)
	// GetByID returns ErrNotFound when no event has the id and ErrInvalidID when id is malformed.
	GetByID(ctx context.Context, id string) (Event, error)
	// UpdateOwned sets fields on the event matching both id and ownerEmail.
	UpdateOwned(ctx context.Context, id, ownerEmail string, fields Event) (*UpdateAck, error)
	// DeleteOwned removes the event matching both id and ownerEmail.
	DeleteOwned(ctx context.Context, id, ownerEmail string) (*DeleteAck, error)
	DistinctEventTypes(ctx context.Context) ([]string, error)
}

// EventService defines event use cases.
type EventService interface {
	CreateEvent(ctx context.Context, event Event) (*InsertAck, error)
	// ListEvents applies the public eventType and search filters.
	ListEvents(ctx context.Context, eventType, search string) ([]Event, error)
	ListEventsByOwner(ctx context.Context, email string) ([]Event, error)
	// GetEvent returns a nil Event and no error when the event does not exist.
	GetEvent(ctx context.Context, id string) (Event, error)
	// UpdateEvent returns ErrForbidden when no event matches id and the body's email.
	UpdateEvent(ctx context.Context, id string, event Event) (*UpdateAck, error)
	// DeleteEvent returns ErrForbidden when no event matches id and email.
	DeleteEvent(ctx context.Context, id, email string) (*DeleteAck, error)
	ListEventTypes(ctx context.Context) ([]string, error)
}

func stringField(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

// idString renders an identifier value. Store identifiers expose Hex().
func idString(v any) string {
	switch id := v.(type) {
	case interface{ Hex() string }:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}
