package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
)

// AppendTimelineEvent adds an event to the timeline of an application.
func (r *Repository) AppendTimelineEvent(ctx context.Context, e *models.TimelineEvent) error {
	return create(ctx, r.db, e)
}

// Timeline returns the events of an application, newest first.
func (r *Repository) Timeline(ctx context.Context, applicationID uuid.UUID) ([]models.TimelineEvent, error) {
	events := []models.TimelineEvent{}
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}
