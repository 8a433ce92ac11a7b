package services

import (
	"context"
	"errors"
	"testing"

	"actforbd/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinedEventService_JoinEvent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJoinedRepo()
	svc := NewJoinedEventService(repo, testTimeout)

	ack, err := svc.JoinEvent(ctx, domain.JoinedEvent{"eventId": "E1", "userEmail": "c@x.com", "eventDate": "2026-03-01"})
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)

	again, err := svc.JoinEvent(ctx, domain.JoinedEvent{"eventId": "E1", "userEmail": "c@x.com"})
	require.ErrorIs(t, err, domain.ErrDuplicateJoin)
	assert.Nil(t, again)
	assert.Equal(t, 1, repo.inserts, "duplicate does not reach insert")
	assert.Len(t, repo.byID, 1)

	_, err = svc.JoinEvent(ctx, domain.JoinedEvent{"eventId": "E2", "userEmail": "c@x.com"})
	require.NoError(t, err)
	_, err = svc.JoinEvent(ctx, domain.JoinedEvent{"eventId": "E1", "userEmail": "d@x.com"})
	require.NoError(t, err)
	assert.Len(t, repo.byID, 3)
}

func TestJoinedEventService_JoinEvent_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup failure", func(t *testing.T) {
		repo := newFakeJoinedRepo()
		repo.findErr = errors.New("db down")
		_, err := NewJoinedEventService(repo, testTimeout).JoinEvent(ctx, domain.JoinedEvent{"eventId": "E1"})
		require.Error(t, err)
		assert.Zero(t, repo.inserts)
	})

	t.Run("index rejects concurrent duplicate", func(t *testing.T) {
		repo := newFakeJoinedRepo()
		repo.insertErr = domain.ErrDuplicateJoin
		_, err := NewJoinedEventService(repo, testTimeout).JoinEvent(ctx, domain.JoinedEvent{"eventId": "E1", "userEmail": "c@x.com"})
		require.ErrorIs(t, err, domain.ErrDuplicateJoin)
	})

	t.Run("insert failure", func(t *testing.T) {
		repo := newFakeJoinedRepo()
		repo.insertErr = errors.New("write conflict")
		_, err := NewJoinedEventService(repo, testTimeout).JoinEvent(ctx, domain.JoinedEvent{"eventId": "E1", "userEmail": "c@x.com"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrDuplicateJoin)
	})
}

func TestJoinedEventService_ListJoinedEvents(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJoinedRepo()
	repo.add(domain.JoinedEvent{"eventId": "E1", "userEmail": "c@x.com"})
	repo.add(domain.JoinedEvent{"eventId": "E2", "userEmail": "d@x.com"})
	svc := NewJoinedEventService(repo, testTimeout)

	joined, err := svc.ListJoinedEvents(ctx, "c@x.com")
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, "E1", joined[0].EventID())
}

func TestJoinedEventService_LeaveEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		caller     string
		setup      func(r *fakeJoinedRepo)
		wantErr    error
		wantAnyErr bool
	}{
		{name: "owner leaves", caller: "c@x.com"},
		{name: "other user", caller: "d@x.com", wantErr: domain.ErrForbidden},
		{name: "caller without email", caller: "", wantErr: domain.ErrForbidden},
		{name: "missing", id: "ffffffffffffffffffffffff", caller: "c@x.com", wantErr: domain.ErrNotFound},
		{
			name:       "lookup failure",
			caller:     "c@x.com",
			setup:      func(r *fakeJoinedRepo) { r.getErr = errors.New("db down") },
			wantAnyErr: true,
		},
		{
			name:       "delete failure",
			caller:     "c@x.com",
			setup:      func(r *fakeJoinedRepo) { r.deleteErr = errors.New("db down") },
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeJoinedRepo()
			id := repo.add(domain.JoinedEvent{"eventId": "E1", "userEmail": "c@x.com"})
			if tt.id != "" {
				id = tt.id
			}
			if tt.setup != nil {
				tt.setup(repo)
			}
			svc := NewJoinedEventService(repo, testTimeout)

			ack, err := svc.LeaveEvent(ctx, id, tt.caller)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, repo.byID, 1)
			case tt.wantAnyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrNotFound)
				assert.NotErrorIs(t, err, domain.ErrForbidden)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(1), ack.DeletedCount)
				assert.Empty(t, repo.byID)
			}
		})
	}
}
