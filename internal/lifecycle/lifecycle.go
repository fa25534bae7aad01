// Package lifecycle implements the status workflow of applications.
//
// Every change is recorded on the timeline of the application in the same
// transaction as the change itself.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/repository"
	"github.com/grantdesk/backend/internal/types"
	"github.com/rs/zerolog/log"
)

var ErrInvalidTransition = errors.New("the application cannot change to this status")

const (
	submittedLabel   = "Submitted"
	submittedComment = "Application submitted for review"
)

// Manager creates applications and changes their status.
type Manager struct {
	repo *repository.Repository
}

func New(repo *repository.Repository) *Manager {
	return &Manager{repo: repo}
}

// Submission is a new application.
type Submission struct {
	ApplicantID uuid.UUID
	ProgramID   uuid.UUID
	Amount      types.Money
	Description string
}

// Review is a status change with optional reviewer and notes.
type Review struct {
	Status      string
	ReviewedBy  *string
	ReviewNotes *string
}

// Create submits a new application. It starts as pending.
func (m *Manager) Create(ctx context.Context, s Submission) (application models.Application, err error) {
	err = m.repo.Transaction(ctx, func(tx *repository.Repository) error {
		err := checkReferences(ctx, tx, s)
		if err != nil {
			return err
		}

		application = models.Application{
			ApplicantID: s.ApplicantID,
			ProgramID:   s.ProgramID,
			Amount:      s.Amount,
			Description: s.Description,
			Status:      models.StatusPending,
		}

		err = tx.CreateApplication(ctx, &application)
		if err != nil {
			return err
		}

		comment := submittedComment
		return tx.AppendTimelineEvent(ctx, &models.TimelineEvent{
			ApplicationID: application.ID,
			Status:        submittedLabel,
			User:          models.SystemUser,
			Comment:       &comment,
		})
	})
	if err != nil {
		return models.Application{}, err
	}

	log.Debug().Str("application", application.ID.String()).Str("program", s.ProgramID.String()).Msg("Application submitted")
	return application, nil
}

func checkReferences(ctx context.Context, tx *repository.Repository, s Submission) error {
	_, found, err := tx.Applicant(ctx, s.ApplicantID)
	if err != nil {
		return err
	}

	if !found {
		return models.NewValidationError("applicantId", "there is no applicant with this ID")
	}

	program, found, err := tx.Program(ctx, s.ProgramID)
	if err != nil {
		return err
	}

	if !found {
		return models.NewValidationError("programId", "there is no grant program with this ID")
	}

	if !program.IsActive.Bool() {
		return models.Wrap(models.ErrProgramInactive, models.FieldError{
			Field:   "programId",
			Message: fmt.Sprintf("the grant program %q is not active", program.Name),
		})
	}

	return nil
}

// SetStatus changes the status of an application and records the review.
//
// When an application is approved, its amount is allocated from the
// budget of its program.
func (m *Manager) SetStatus(ctx context.Context, id uuid.UUID, review Review) (application models.Application, err error) {
	status, err := parseStatus(review.Status)
	if err != nil {
		return models.Application{}, err
	}

	err = m.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var found bool
		application, found, err = tx.Application(ctx, id)
		if err != nil {
			return err
		}

		if !found {
			return fmt.Errorf("%w application with this ID", models.ErrResourceNotFound)
		}

		if !CanTransition(application.Status, status) {
			return models.Wrap(ErrInvalidTransition, models.FieldError{
				Field:   "status",
				Message: fmt.Sprintf("status cannot change from %s to %s", application.Status, status),
			})
		}

		if status == models.StatusApproved {
			err = allocate(ctx, tx, application)
			if err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		application.Status = status
		application.ReviewedAt = &now
		application.ReviewedBy = review.ReviewedBy
		application.ReviewNotes = review.ReviewNotes

		err = tx.UpdateReview(ctx, &application)
		if err != nil {
			return err
		}

		return tx.AppendTimelineEvent(ctx, event(application.ID, status, review))
	})
	if err != nil {
		return models.Application{}, err
	}

	log.Debug().Str("application", id.String()).Str("status", string(status)).Msg("Application status changed")
	return application, nil
}

func parseStatus(s string) (models.ApplicationStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", models.NewValidationError("status", "status is required")
	}

	status, err := models.ParseApplicationStatus(s)
	if err != nil {
		return "", models.NewValidationError("status", err.Error())
	}

	return status, nil
}

// allocate adds the amount of the application to the allocated amount
// of its program.
func allocate(ctx context.Context, tx *repository.Repository, application models.Application) error {
	program, found, err := tx.Program(ctx, application.ProgramID)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("%w grant program for this application", models.ErrResourceNotFound)
	}

	allocated := program.Allocated.Add(application.Amount)
	if allocated.GreaterThan(program.Budget) {
		return models.Wrap(models.ErrBudgetExceeded, models.FieldError{
			Field:   "amount",
			Message: fmt.Sprintf("amount %s exceeds the remaining budget of %s", application.Amount, program.Remaining()),
		})
	}

	program.Allocated = allocated
	return tx.SaveProgram(ctx, &program)
}

// event returns the timeline entry for a status change.
func event(applicationID uuid.UUID, status models.ApplicationStatus, review Review) *models.TimelineEvent {
	user := models.SystemUser
	if review.ReviewedBy != nil && strings.TrimSpace(*review.ReviewedBy) != "" {
		user = *review.ReviewedBy
	}

	comment := fmt.Sprintf("Application status changed to %s", status)
	if review.ReviewNotes != nil && strings.TrimSpace(*review.ReviewNotes) != "" {
		comment = *review.ReviewNotes
	}

	return &models.TimelineEvent{
		ApplicationID: applicationID,
		Status:        Label(status),
		User:          user,
		Comment:       &comment,
	}
}

// Get returns the application with the ID.
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (models.Application, error) {
	application, found, err := m.repo.Application(ctx, id)
	if err != nil {
		return models.Application{}, err
	}

	if !found {
		return models.Application{}, fmt.Errorf("%w application with this ID", models.ErrResourceNotFound)
	}

	return application, nil
}

// List returns all applications, most recently submitted first.
func (m *Manager) List(ctx context.Context) ([]models.Application, error) {
	return m.repo.Applications(ctx)
}

// Timeline returns the timeline of an application, newest first.
func (m *Manager) Timeline(ctx context.Context, id uuid.UUID) ([]models.TimelineEvent, error) {
	return m.repo.Timeline(ctx, id)
}
