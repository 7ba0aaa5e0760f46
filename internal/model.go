package internal

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SoundscapeSession struct {
	ID             string    `json:"id"`
	UserID         *string   `json:"userId"`
	SoundscapeType string    `json:"soundscapeType"`
	Volume         int       `json:"volume"`        // 0-100, default 75
	FrequencyLow   int       `json:"frequencyLow"`  // Hz, default 100
	FrequencyHigh  int       `json:"frequencyHigh"` // Hz, default 4000
	Duration       *int      `json:"duration"`      // seconds, optional
	CreatedAt      time.Time `json:"createdAt"`
}

// EventData is the free-form payload attached to an analytics event.
// The only field the backend itself reads is "soundscape".
type EventData map[string]interface{}

// Soundscape returns the soundscape name carried in the payload, if any.
func (d EventData) Soundscape() (string, bool) {
	v, ok := d["soundscape"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

type UsageAnalytics struct {
	ID        string    `json:"id"`
	SessionID *string   `json:"sessionId"`
	EventType string    `json:"eventType"` // play, pause, download, volume_change, ...
	EventData EventData `json:"eventData"`
	Timestamp time.Time `json:"timestamp"`
}

type SoundscapePreferences struct {
	ID                     string    `json:"id"`
	UserID                 string    `json:"userId"`
	SoundscapeType         string    `json:"soundscapeType"`
	PreferredVolume        int       `json:"preferredVolume"`
	PreferredFrequencyLow  int       `json:"preferredFrequencyLow"`
	PreferredFrequencyHigh int       `json:"preferredFrequencyHigh"`
	UseCount               int       `json:"useCount"`
	AvgRating              *float64  `json:"avgRating"`
	LastUsed               time.Time `json:"lastUsed"`
}

// PreferencesUpdate carries one save of a user's settings for a soundscape
// type. Nil fields leave the stored value untouched on update.
type PreferencesUpdate struct {
	UserID                 string
	SoundscapeType         string
	PreferredVolume        *int
	PreferredFrequencyLow  *int
	PreferredFrequencyHigh *int
	AvgRating              *float64
}

// AnalyticsSummary is recomputed from scratch on every request.
type AnalyticsSummary struct {
	TotalEvents     int              `json:"totalEvents"`
	EventTypes      map[string]int   `json:"eventTypes"`
	SoundscapeUsage map[string]int   `json:"soundscapeUsage"`
	RecentEvents    []UsageAnalytics `json:"recentEvents"`
}
