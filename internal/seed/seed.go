// Package seed creates demo data for an empty database.
package seed

import (
	"context"
	"time"

	"github.com/grantdesk/backend/internal/lifecycle"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/repository"
	"github.com/grantdesk/backend/internal/types"
	"github.com/rs/zerolog/log"
)

const reviewer = "Admin User"

type demoApplication struct {
	amount      string
	description string
	reviews     []lifecycle.Review
}

// Run creates three applicants, three grant programs and one application
// for each pair of them. Nothing is created if any grant program exists.
//
// It reports if data has been created.
func Run(ctx context.Context, repo *repository.Repository) (bool, error) {
	programs, err := repo.Programs(ctx)
	if err != nil {
		return false, err
	}

	if len(programs) > 0 {
		log.Info().Int("programs", len(programs)).Msg("Database is not empty, not seeding demo data")
		return false, nil
	}

	err = repo.Transaction(ctx, func(tx *repository.Repository) error {
		return seed(ctx, tx)
	})
	if err != nil {
		return false, err
	}

	log.Info().Msg("Seeded demo data")
	return true, nil
}

func seed(ctx context.Context, tx *repository.Repository) error {
	applicants := []models.Applicant{
		{Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Phone: ptr("+1 (555) 123-4567"), BusinessName: ptr("Sweet Delights Bakery"), YearsInBusiness: ptr(5), Employees: ptr(8)},
		{Name: "Michael Chen", Email: "michael.chen@example.com", Phone: ptr("+1 (555) 234-5678"), BusinessName: ptr("TechStart Solutions"), YearsInBusiness: ptr(2), Employees: ptr(15)},
		{Name: "Emily Rodriguez", Email: "emily.rodriguez@example.com", Phone: ptr("+1 (555) 345-6789"), BusinessName: ptr("Community Health Services"), YearsInBusiness: ptr(10), Employees: ptr(45)},
	}

	today := types.DateOf(time.Now().UTC()).Time()
	programs := []models.GrantProgram{
		{
			Name:        "Small Business Development Grant",
			Description: "Support for local entrepreneurs and small business owners looking to expand operations and create jobs.",
			Budget:      types.MustMoney("500000"),
			Deadline:    types.DateOf(today.AddDate(0, 3, 0)),
			IsActive:    types.True,
		},
		{
			Name:        "Education Innovation Fund",
			Description: "Funding for innovative educational programs and technology integration in schools.",
			Budget:      types.MustMoney("250000"),
			Deadline:    types.DateOf(today.AddDate(0, 2, 0)),
			IsActive:    types.True,
		},
		{
			Name:        "Community Health Initiative",
			Description: "Healthcare access and wellness programs for underserved populations.",
			Budget:      types.MustMoney("400000"),
			Deadline:    types.DateOf(today.AddDate(0, 4, 0)),
			IsActive:    types.True,
		},
	}

	applications := []demoApplication{
		{
			amount:      "50000",
			description: "Requesting funding to expand our local bakery operations, including new equipment purchases, staff training, and facility improvements.",
		},
		{
			amount:      "75000",
			description: "STEM program development for underserved communities with focus on coding bootcamps and technology access.",
			reviews: []lifecycle.Review{
				{Status: string(models.StatusUnderReview), ReviewedBy: ptr(reviewer), ReviewNotes: ptr("Application assigned to review committee")},
			},
		},
		{
			amount:      "100000",
			description: "Mobile health clinic services for rural areas with comprehensive preventive care and health education programs.",
			reviews: []lifecycle.Review{
				{Status: string(models.StatusApproved), ReviewedBy: ptr(reviewer), ReviewNotes: ptr("Excellent proposal with strong community impact")},
			},
		},
	}

	manager := lifecycle.New(tx)
	for i := range applicants {
		err := tx.CreateApplicant(ctx, &applicants[i])
		if err != nil {
			return err
		}

		err = tx.CreateProgram(ctx, &programs[i])
		if err != nil {
			return err
		}

		application, err := manager.Create(ctx, lifecycle.Submission{
			ApplicantID: applicants[i].ID,
			ProgramID:   programs[i].ID,
			Amount:      types.MustMoney(applications[i].amount),
			Description: applications[i].description,
		})
		if err != nil {
			return err
		}

		for _, review := range applications[i].reviews {
			_, err = manager.SetStatus(ctx, application.ID, review)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}
