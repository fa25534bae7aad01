package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
)

// CreateApplication persists a new application.
func (r *Repository) CreateApplication(ctx context.Context, a *models.Application) error {
	return create(ctx, r.db, a)
}

// Application returns the application with the ID.
func (r *Repository) Application(ctx context.Context, id uuid.UUID) (models.Application, bool, error) {
	return first[models.Application](ctx, r.db, "id = ?", id)
}

// Applications lists all applications, most recently submitted first.
func (r *Repository) Applications(ctx context.Context) ([]models.Application, error) {
	applications := []models.Application{}
	err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&applications).Error
	return applications, err
}

// UpdateReview writes the status and review fields of an application.
// No other field is changed.
func (r *Repository) UpdateReview(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).
		Model(a).
		Select("Status", "ReviewedAt", "ReviewedBy", "ReviewNotes").
		Updates(a).Error
}

// CountApplications counts applications. If statuses are given, only
// applications in one of them are counted.
func (r *Repository) CountApplications(ctx context.Context, statuses ...models.ApplicationStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Application{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
