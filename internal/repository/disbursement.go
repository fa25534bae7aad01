package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/types"
)

// CreateDisbursement persists a new disbursement for an existing application.
func (r *Repository) CreateDisbursement(ctx context.Context, d *models.Disbursement) error {
	d.Amount = types.NewMoney(d.Amount.Decimal)
	d.ScheduledDate = types.DateOf(d.ScheduledDate.Time())

	if d.ApplicationID != uuid.Nil {
		_, found, err := r.Application(ctx, d.ApplicationID)
		if err != nil {
			return err
		}

		if !found {
			return models.NewValidationError("applicationId", "there is no application with this ID")
		}
	}

	return create(ctx, r.db, d)
}

// Disbursements lists the disbursements of an application, latest
// scheduled date first.
func (r *Repository) Disbursements(ctx context.Context, applicationID uuid.UUID) ([]models.Disbursement, error) {
	disbursements := []models.Disbursement{}
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("scheduled_date DESC, created_at DESC").
		Find(&disbursements).Error
	return disbursements, err
}

// DisbursementAmounts returns the amounts of all disbursements with the status.
func (r *Repository) DisbursementAmounts(ctx context.Context, status models.DisbursementStatus) ([]types.Money, error) {
	amounts := []types.Money{}
	err := r.db.WithContext(ctx).
		Model(&models.Disbursement{}).
		Where("status = ?", status).
		Pluck("amount", &amounts).Error
	return amounts, err
}
