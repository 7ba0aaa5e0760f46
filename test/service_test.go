package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nikhil10982006/MRI-Soundscape/internal"
	"github.com/nikhil10982006/MRI-Soundscape/internal/service"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

func setupRepos(t *testing.T) *storage.Repositories {
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	return storage.NewMemoryRepositories(logger)
}

func intPtr(v int) *int { return &v }

func TestCreateSession_Defaults(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	req := &service.CreateSessionRequest{SoundscapeType: "ocean", Volume: intPtr(50)}
	assert.NoError(t, service.ValidateCreateSessionRequest(req))

	session, err := service.CreateSession(ctx, repos.Sessions, req)
	assert.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.CreatedAt.IsZero())
	assert.Equal(t, 50, session.Volume)
	assert.Equal(t, 100, session.FrequencyLow)
	assert.Equal(t, 4000, session.FrequencyHigh)
	assert.Nil(t, session.Duration)

	stored, err := repos.Sessions.GetSession(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, session.ID, stored.ID)
	assert.Equal(t, 50, stored.Volume)
}

func TestCreateSession_ValidationFails(t *testing.T) {
	assert.Error(t, service.ValidateCreateSessionRequest(&service.CreateSessionRequest{}))
	assert.Error(t, service.ValidateCreateSessionRequest(&service.CreateSessionRequest{
		SoundscapeType: "ocean",
		Volume:         intPtr(101),
	}))
}

func TestRecordEvent_SummaryMath(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	ocean := internal.EventData{"soundscape": "ocean"}
	for _, tc := range []struct {
		eventType string
		data      internal.EventData
	}{
		{"play", ocean},
		{"pause", nil},
		{"play", ocean},
		{"volume_change", internal.EventData{"soundscape": 42}}, // not a string, skipped
	} {
		_, err := service.RecordEvent(ctx, repos.Analytics, &service.RecordEventRequest{
			EventType: tc.eventType,
			EventData: tc.data,
		})
		assert.NoError(t, err)
	}

	summary, err := repos.Analytics.GetSummary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 4, summary.TotalEvents)
	assert.Equal(t, 2, summary.EventTypes["play"])
	assert.Equal(t, 1, summary.EventTypes["pause"])
	assert.Equal(t, 1, summary.EventTypes["volume_change"])
	assert.Equal(t, map[string]int{"ocean": 2}, summary.SoundscapeUsage)

	sum := 0
	for _, n := range summary.EventTypes {
		sum += n
	}
	assert.Equal(t, summary.TotalEvents, sum)
}

func TestSavePreferences_MergeKeepsUnsetFields(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	first, err := service.SavePreferences(ctx, repos.Preferences, "u1", &service.PreferencesRequest{
		SoundscapeType:  "ocean",
		PreferredVolume: intPtr(60),
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, first.UseCount)
	assert.Equal(t, 60, first.PreferredVolume)
	assert.Equal(t, 100, first.PreferredFrequencyLow)
	assert.Equal(t, 4000, first.PreferredFrequencyHigh)

	second, err := service.SavePreferences(ctx, repos.Preferences, "u1", &service.PreferencesRequest{
		SoundscapeType:  "ocean",
		PreferredVolume: intPtr(80),
	})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.UseCount)
	assert.Equal(t, 80, second.PreferredVolume)
	// Fields absent from the second save keep their stored values
	assert.Equal(t, 100, second.PreferredFrequencyLow)
	assert.Equal(t, 4000, second.PreferredFrequencyHigh)
	assert.False(t, second.LastUsed.Before(first.LastUsed))
}

func TestCreateUser_Roundtrip(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	user, err := service.CreateUser(ctx, repos.Users, &service.CreateUserRequest{
		Username: "alice",
		Password: "secret",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	got, err := repos.Users.GetUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, *user, *got)

	byName, err := repos.Users.GetUserByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}
