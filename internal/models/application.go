package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/types"
	"gorm.io/gorm"
)

// Application is a request of an applicant for funding from a program.
type Application struct {
	DefaultModel
	ApplicantID uuid.UUID         `json:"applicantId" gorm:"not null;index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Applicant   Applicant         `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	ProgramID   uuid.UUID         `json:"programId" gorm:"not null;index" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Program     GrantProgram      `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Amount      types.Money       `json:"amount" gorm:"type:DECIMAL(12,2);not null" swaggertype:"string" example:"50000.00"`
	Description string            `json:"description" gorm:"not null" example:"Solar panel installation for the workshop"`
	Status      ApplicationStatus `json:"status" gorm:"not null;index" swaggertype:"string" enums:"pending,under_review,approved,rejected,disbursed,completed" example:"pending"`
	SubmittedAt time.Time         `json:"submittedAt" gorm:"not null" example:"2024-03-02T19:28:44.491514Z"`
	ReviewedAt  *time.Time        `json:"reviewedAt" example:"2024-03-05T08:12:00.000000Z"`
	ReviewedBy  *string           `json:"reviewedBy" example:"Admin"`
	ReviewNotes *string           `json:"reviewNotes" example:"Strong proposal"`
}

func (a *Application) AfterFind(_ *gorm.DB) (err error) {
	utc(&a.SubmittedAt, a.ReviewedAt)
	return nil
}

// BeforeCreate sets the ID, the submission time and the initial status.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	err := a.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	a.SubmittedAt = tx.NowFunc()
	if a.Status == "" {
		a.Status = StatusPending
	}

	return nil
}

// BeforeSave trims whitespace and validates the application.
func (a *Application) BeforeSave(_ *gorm.DB) error {
	a.Description = strings.TrimSpace(a.Description)
	a.ReviewedBy = trimOptional(a.ReviewedBy)
	a.ReviewNotes = trimOptional(a.ReviewNotes)

	var v validation
	if a.ApplicantID == uuid.Nil {
		v.add("applicantId", "applicantId is required")
	}

	if a.ProgramID == uuid.Nil {
		v.add("programId", "programId is required")
	}

	if !a.Amount.IsPositive() {
		v.add("amount", "amount must be greater than 0")
	}

	if a.Description == "" {
		v.add("description", "description is required")
	}

	if a.Status != "" && !a.Status.Valid() {
		v.add("status", "status is not a valid application status")
	}

	return v.err()
}
