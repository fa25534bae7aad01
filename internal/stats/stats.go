// Package stats computes the figures shown on the dashboard.
package stats

import (
	"context"

	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/repository"
	"github.com/grantdesk/backend/internal/types"
)

// Stats are the dashboard statistics.
type Stats struct {
	TotalGrants       types.Money `json:"totalGrants" swaggertype:"string" example:"1250000.00"`    // Sum of the budgets of all programs
	TotalApplications int64       `json:"totalApplications" example:"42"`                            // Number of applications
	ApprovedCount     int64       `json:"approvedCount" example:"17"`                                // Number of applications that have been approved, including disbursed and completed ones
	DisbursedAmount   types.Money `json:"disbursedAmount" swaggertype:"string" example:"310000.00"` // Sum of all disbursements that have been paid out
}

type Service struct {
	repo *repository.Repository
}

func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// Compute calculates the statistics from one consistent view of the database.
//
// All sums use fixed-point arithmetic.
func (s *Service) Compute(ctx context.Context) (stats Stats, err error) {
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		budgets, err := tx.ProgramBudgets(ctx)
		if err != nil {
			return err
		}
		stats.TotalGrants = types.Sum(budgets...)

		stats.TotalApplications, err = tx.CountApplications(ctx)
		if err != nil {
			return err
		}

		stats.ApprovedCount, err = tx.CountApplications(ctx, models.ApprovedStatuses...)
		if err != nil {
			return err
		}

		disbursed, err := tx.DisbursementAmounts(ctx, models.DisbursementDisbursed)
		if err != nil {
			return err
		}
		stats.DisbursedAmount = types.Sum(disbursed...)

		return nil
	})

	return stats, err
}
