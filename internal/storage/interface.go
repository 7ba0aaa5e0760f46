package storage

import (
	"context"

	"github.com/nikhil10982006/MRI-Soundscape/internal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *internal.User) error
	GetUser(ctx context.Context, id string) (*internal.User, error)
	GetUserByUsername(ctx context.Context, username string) (*internal.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *internal.SoundscapeSession) error
	GetSession(ctx context.Context, id string) (*internal.SoundscapeSession, error)
	GetUserSessions(ctx context.Context, userID string) ([]internal.SoundscapeSession, error)
}

type AnalyticsRepository interface {
	RecordEvent(ctx context.Context, event *internal.UsageAnalytics) error
	GetEventsBySession(ctx context.Context, sessionID string) ([]internal.UsageAnalytics, error)
	GetSummary(ctx context.Context) (*internal.AnalyticsSummary, error)
}

type PreferencesRepository interface {
	GetPreferences(ctx context.Context, userID string) ([]internal.SoundscapePreferences, error)
	// UpsertPreferences merges the update over the existing row keyed by
	// (UserID, SoundscapeType), incrementing its use count, or inserts a
	// fresh row with useCount 1. The stored row is returned.
	UpsertPreferences(ctx context.Context, upd *internal.PreferencesUpdate) (*internal.SoundscapePreferences, error)
}
