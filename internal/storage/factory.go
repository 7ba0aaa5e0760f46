package storage

import "github.com/nikhil10982006/MRI-Soundscape/internal"

// Repositories bundles the per-entity views of one backing store.
type Repositories struct {
	Users       UserRepository
	Sessions    SessionRepository
	Analytics   AnalyticsRepository
	Preferences PreferencesRepository
}

func NewMemoryRepositories(logger internal.Logger) *Repositories {
	store := NewMemoryStorage(logger)
	return &Repositories{
		Users:       store,
		Sessions:    store,
		Analytics:   store,
		Preferences: store,
	}
}
