package service

import (
	"context"

	"github.com/nikhil10982006/MRI-Soundscape/internal"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

type PreferencesRequest struct {
	UserID                 string   `json:"userId"` // the path parameter wins over this
	SoundscapeType         string   `json:"soundscapeType" validate:"required"`
	PreferredVolume        *int     `json:"preferredVolume" validate:"omitempty,gte=0,lte=100"`
	PreferredFrequencyLow  *int     `json:"preferredFrequencyLow" validate:"omitempty,gte=0"`
	PreferredFrequencyHigh *int     `json:"preferredFrequencyHigh" validate:"omitempty,gte=0"`
	AvgRating              *float64 `json:"avgRating" validate:"omitempty,gte=0,lte=5"`
}

func ValidatePreferencesRequest(req *PreferencesRequest) error {
	return validate.Struct(req)
}

// SavePreferences upserts the row keyed by (userID, req.SoundscapeType).
// Absent fields keep their stored values on update and fall back to the
// documented defaults on insert; the use count grows by one either way.
func SavePreferences(ctx context.Context, prefsRepo storage.PreferencesRepository, userID string, req *PreferencesRequest) (*internal.SoundscapePreferences, error) {
	upd := &internal.PreferencesUpdate{
		UserID:                 userID,
		SoundscapeType:         req.SoundscapeType,
		PreferredVolume:        req.PreferredVolume,
		PreferredFrequencyLow:  req.PreferredFrequencyLow,
		PreferredFrequencyHigh: req.PreferredFrequencyHigh,
		AvgRating:              req.AvgRating,
	}
	return prefsRepo.UpsertPreferences(ctx, upd)
}
