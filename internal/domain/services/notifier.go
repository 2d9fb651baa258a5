package services

import (
	"context"
	"time"

	"room-manager/internal/domain/models"
)

// IncidentStatusEvent describes a committed incident status change.
type IncidentStatusEvent struct {
	IncidentID string                `json:"incidentId"`
	RoomID     string                `json:"roomId"`
	Previous   models.IncidentStatus `json:"previous"`
	Status     models.IncidentStatus `json:"status"`
	Message    string                `json:"message"`
	At         time.Time             `json:"at"`
}

// IncidentNotifier publishes incident status changes to interested parties.
type IncidentNotifier interface {
	PublishStatusChange(ctx context.Context, event IncidentStatusEvent) error
}

// NopIncidentNotifier drops every event.
type NopIncidentNotifier struct{}

// PublishStatusChange implements IncidentNotifier.
func (NopIncidentNotifier) PublishStatusChange(context.Context, IncidentStatusEvent) error {
	return nil
}
