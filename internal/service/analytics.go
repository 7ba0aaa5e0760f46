package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikhil10982006/MRI-Soundscape/internal"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

type RecordEventRequest struct {
	SessionID *string            `json:"sessionId"`
	EventType string             `json:"eventType" validate:"required"`
	EventData internal.EventData `json:"eventData"`
}

func ValidateRecordEventRequest(req *RecordEventRequest) error {
	return validate.Struct(req)
}

func RecordEvent(ctx context.Context, analyticsRepo storage.AnalyticsRepository, req *RecordEventRequest) (*internal.UsageAnalytics, error) {
	event := &internal.UsageAnalytics{
		ID:        uuid.NewString(),
		SessionID: req.SessionID,
		EventType: req.EventType,
		EventData: req.EventData,
		Timestamp: time.Now(),
	}
	if err := analyticsRepo.RecordEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
