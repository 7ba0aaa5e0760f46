package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikhil10982006/MRI-Soundscape/internal"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

type CreateSessionRequest struct {
	UserID         *string `json:"userId"`
	SoundscapeType string  `json:"soundscapeType" validate:"required"`
	Volume         *int    `json:"volume" validate:"omitempty,gte=0,lte=100"`
	FrequencyLow   *int    `json:"frequencyLow" validate:"omitempty,gte=0"`
	FrequencyHigh  *int    `json:"frequencyHigh" validate:"omitempty,gte=0"`
	Duration       *int    `json:"duration" validate:"omitempty,gte=0"` // seconds
}

func ValidateCreateSessionRequest(req *CreateSessionRequest) error {
	return validate.Struct(req)
}

// CreateSession stamps id and creation time and falls back to the documented
// defaults for absent numeric fields.
func CreateSession(ctx context.Context, sessionRepo storage.SessionRepository, req *CreateSessionRequest) (*internal.SoundscapeSession, error) {
	session := &internal.SoundscapeSession{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		SoundscapeType: req.SoundscapeType,
		Volume:         intOrDefault(req.Volume, storage.DefaultVolume),
		FrequencyLow:   intOrDefault(req.FrequencyLow, storage.DefaultFrequencyLow),
		FrequencyHigh:  intOrDefault(req.FrequencyHigh, storage.DefaultFrequencyHigh),
		Duration:       req.Duration,
		CreatedAt:      time.Now(),
	}
	if err := sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func intOrDefault(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
