package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nikhil10982006/MRI-Soundscape/internal"
)

func newTestStore() *MemoryStorage {
	return NewMemoryStorage(internal.NewZapLogger(zap.NewNop().Sugar()))
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore()
	u, err := s.GetUser(context.Background(), "missing")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrNotFound)
}

// CreateUser performs no uniqueness check; two users may share a username and
// username lookup returns the earliest created one. This mirrors the behavior
// the API has always had, it is not an endorsement of it.
func TestCreateUser_DuplicateUsernamesAllowed(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	first := &internal.User{ID: "id1", Username: "bob", Password: "a"}
	second := &internal.User{ID: "id2", Username: "bob", Password: "b"}
	assert.NoError(t, s.CreateUser(ctx, first))
	assert.NoError(t, s.CreateUser(ctx, second))

	got, err := s.GetUserByUsername(ctx, "bob")
	assert.NoError(t, err)
	assert.Equal(t, "id1", got.ID)
}

func TestGetUserSessions_FiltersByUser(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for i, userID := range []string{"u1", "u2", "u1"} {
		sess := &internal.SoundscapeSession{
			ID:             fmt.Sprintf("s%d", i),
			UserID:         strPtr(userID),
			SoundscapeType: "ocean",
		}
		assert.NoError(t, s.CreateSession(ctx, sess))
	}
	// Anonymous session belongs to nobody
	assert.NoError(t, s.CreateSession(ctx, &internal.SoundscapeSession{ID: "anon", SoundscapeType: "rain"}))

	sessions, err := s.GetUserSessions(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)
	assert.Equal(t, "s0", sessions[0].ID)
	assert.Equal(t, "s2", sessions[1].ID)

	empty, err := s.GetUserSessions(ctx, "u9")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetEventsBySession(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	assert.NoError(t, s.RecordEvent(ctx, &internal.UsageAnalytics{ID: "e1", SessionID: strPtr("s1"), EventType: "play"}))
	assert.NoError(t, s.RecordEvent(ctx, &internal.UsageAnalytics{ID: "e2", SessionID: strPtr("s2"), EventType: "play"}))
	assert.NoError(t, s.RecordEvent(ctx, &internal.UsageAnalytics{ID: "e3", EventType: "pause"}))

	events, err := s.GetEventsBySession(ctx, "s1")
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
}

func TestGetSummary_RecentEventsWindow(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		event := &internal.UsageAnalytics{
			ID:        fmt.Sprintf("e%d", i),
			EventType: "play",
			EventData: internal.EventData{"soundscape": "ocean"},
		}
		assert.NoError(t, s.RecordEvent(ctx, event))
	}

	summary, err := s.GetSummary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 13, summary.TotalEvents)
	assert.Equal(t, 13, summary.EventTypes["play"])
	assert.Equal(t, 13, summary.SoundscapeUsage["ocean"])
	// Last 10 in insertion order
	assert.Len(t, summary.RecentEvents, 10)
	assert.Equal(t, "e3", summary.RecentEvents[0].ID)
	assert.Equal(t, "e12", summary.RecentEvents[9].ID)
}

func TestUpsertPreferences_SingleRowPerKey(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.UpsertPreferences(ctx, &internal.PreferencesUpdate{
			UserID:         "u1",
			SoundscapeType: "ocean",
		})
		assert.NoError(t, err)
	}
	// A different soundscape type gets its own row
	_, err := s.UpsertPreferences(ctx, &internal.PreferencesUpdate{
		UserID:          "u1",
		SoundscapeType:  "rain",
		PreferredVolume: intPtr(30),
	})
	assert.NoError(t, err)

	prefs, err := s.GetPreferences(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, prefs, 2)
	for _, p := range prefs {
		switch p.SoundscapeType {
		case "ocean":
			assert.Equal(t, 3, p.UseCount)
			assert.Equal(t, DefaultVolume, p.PreferredVolume)
		case "rain":
			assert.Equal(t, 1, p.UseCount)
			assert.Equal(t, 30, p.PreferredVolume)
		default:
			t.Fatalf("unexpected soundscape type %q", p.SoundscapeType)
		}
	}
}

func TestGetPreferences_EmptyForUnknownUser(t *testing.T) {
	s := newTestStore()
	prefs, err := s.GetPreferences(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Empty(t, prefs)
}
