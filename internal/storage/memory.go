package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikhil10982006/MRI-Soundscape/internal"
)

var ErrNotFound = errors.New("storage: not found")

const (
	DefaultVolume        = 75
	DefaultFrequencyLow  = 100
	DefaultFrequencyHigh = 4000
)

type MemoryStorage struct {
	users     map[string]*internal.User
	userOrder []*internal.User // insertion order, first match wins in username lookup

	sessions         map[string]*internal.SoundscapeSession
	userSessionIndex map[string][]*internal.SoundscapeSession // userID -> sessions in insertion order

	events            []*internal.UsageAnalytics // insertion order
	sessionEventIndex map[string][]*internal.UsageAnalytics

	preferences map[string]map[string]*internal.SoundscapePreferences // userID -> soundscapeType -> row

	mu     sync.RWMutex
	logger internal.Logger
}

func NewMemoryStorage(logger internal.Logger) *MemoryStorage {
	return &MemoryStorage{
		users:             make(map[string]*internal.User),
		sessions:          make(map[string]*internal.SoundscapeSession),
		userSessionIndex:  make(map[string][]*internal.SoundscapeSession),
		sessionEventIndex: make(map[string][]*internal.UsageAnalytics),
		preferences:       make(map[string]map[string]*internal.SoundscapePreferences),
		logger:            logger,
	}
}

// --- UserRepository ---

// CreateUser does not enforce username uniqueness; duplicate usernames are
// tolerated and GetUserByUsername returns the earliest created match.
func (s *MemoryStorage) CreateUser(ctx context.Context, user *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user)
	return nil
}

func (s *MemoryStorage) GetUser(ctx context.Context, id string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.userOrder {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// --- SessionRepository ---

func (s *MemoryStorage) CreateSession(ctx context.Context, session *internal.SoundscapeSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	if session.UserID != nil {
		s.userSessionIndex[*session.UserID] = append(s.userSessionIndex[*session.UserID], session)
	}
	return nil
}

func (s *MemoryStorage) GetSession(ctx context.Context, id string) (*internal.SoundscapeSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *MemoryStorage) GetUserSessions(ctx context.Context, userID string) ([]internal.SoundscapeSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessionsPtr, ok := s.userSessionIndex[userID]
	if !ok {
		return []internal.SoundscapeSession{}, nil
	}
	sessions := make([]internal.SoundscapeSession, len(sessionsPtr))
	for i, sess := range sessionsPtr {
		sessions[i] = *sess
	}
	return sessions, nil
}

// --- AnalyticsRepository ---

func (s *MemoryStorage) RecordEvent(ctx context.Context, event *internal.UsageAnalytics) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if event.SessionID != nil {
		s.sessionEventIndex[*event.SessionID] = append(s.sessionEventIndex[*event.SessionID], event)
	}
	return nil
}

func (s *MemoryStorage) GetEventsBySession(ctx context.Context, sessionID string) ([]internal.UsageAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	eventsPtr, ok := s.sessionEventIndex[sessionID]
	if !ok {
		return []internal.UsageAnalytics{}, nil
	}
	events := make([]internal.UsageAnalytics, len(eventsPtr))
	for i, e := range eventsPtr {
		events[i] = *e
	}
	return events, nil
}

// GetSummary does a full scan over all recorded events. Nothing is maintained
// incrementally.
func (s *MemoryStorage) GetSummary(ctx context.Context) (*internal.AnalyticsSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &internal.AnalyticsSummary{
		TotalEvents:     len(s.events),
		EventTypes:      make(map[string]int),
		SoundscapeUsage: make(map[string]int),
	}

	for _, e := range s.events {
		summary.EventTypes[e.EventType]++
		if name, ok := e.EventData.Soundscape(); ok {
			summary.SoundscapeUsage[name]++
		}
	}

	s.logger.Debugf("computed analytics summary over %d events", len(s.events))

	start := len(s.events) - 10
	if start < 0 {
		start = 0
	}
	recent := make([]internal.UsageAnalytics, 0, len(s.events)-start)
	for _, e := range s.events[start:] {
		recent = append(recent, *e)
	}
	summary.RecentEvents = recent

	return summary, nil
}

// --- PreferencesRepository ---

func (s *MemoryStorage) GetPreferences(ctx context.Context, userID string) ([]internal.SoundscapePreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	typeMap, ok := s.preferences[userID]
	if !ok {
		return []internal.SoundscapePreferences{}, nil
	}
	prefs := make([]internal.SoundscapePreferences, 0, len(typeMap))
	for _, p := range typeMap {
		prefs = append(prefs, *p)
	}
	return prefs, nil
}

// UpsertPreferences runs the whole find-merge-store sequence under the write
// lock so concurrent saves for the same (user, type) pair cannot race.
func (s *MemoryStorage) UpsertPreferences(ctx context.Context, upd *internal.PreferencesUpdate) (*internal.SoundscapePreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.preferences[upd.UserID] == nil {
		s.preferences[upd.UserID] = make(map[string]*internal.SoundscapePreferences)
	}

	existing, ok := s.preferences[upd.UserID][upd.SoundscapeType]
	if ok {
		if upd.PreferredVolume != nil {
			existing.PreferredVolume = *upd.PreferredVolume
		}
		if upd.PreferredFrequencyLow != nil {
			existing.PreferredFrequencyLow = *upd.PreferredFrequencyLow
		}
		if upd.PreferredFrequencyHigh != nil {
			existing.PreferredFrequencyHigh = *upd.PreferredFrequencyHigh
		}
		if upd.AvgRating != nil {
			existing.AvgRating = upd.AvgRating
		}
		existing.UseCount++
		existing.LastUsed = time.Now()
		copied := *existing
		return &copied, nil
	}

	prefs := &internal.SoundscapePreferences{
		ID:                     uuid.NewString(),
		UserID:                 upd.UserID,
		SoundscapeType:         upd.SoundscapeType,
		PreferredVolume:        valueOr(upd.PreferredVolume, DefaultVolume),
		PreferredFrequencyLow:  valueOr(upd.PreferredFrequencyLow, DefaultFrequencyLow),
		PreferredFrequencyHigh: valueOr(upd.PreferredFrequencyHigh, DefaultFrequencyHigh),
		UseCount:               1,
		AvgRating:              upd.AvgRating,
		LastUsed:               time.Now(),
	}
	s.preferences[upd.UserID][upd.SoundscapeType] = prefs
	copied := *prefs
	return &copied, nil
}

func valueOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

// --- Compile-time assertions ---
var _ UserRepository = (*MemoryStorage)(nil)
var _ SessionRepository = (*MemoryStorage)(nil)
var _ AnalyticsRepository = (*MemoryStorage)(nil)
var _ PreferencesRepository = (*MemoryStorage)(nil)
