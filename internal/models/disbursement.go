package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/types"
	"gorm.io/gorm"
)

// Disbursement is a payment made for an application.
//
// Disbursements are records of fact and cannot be changed or deleted.
type Disbursement struct {
	DefaultModel
	ApplicationID uuid.UUID          `json:"applicationId" gorm:"not null;index" example:"8cb4c7a1-4dd0-4d2e-9c0c-97cbb6a5e0d5"`
	Application   Application        `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Amount        types.Money        `json:"amount" gorm:"type:DECIMAL(12,2);not null" swaggertype:"string" example:"25000.00"`
	ScheduledDate types.Date         `json:"scheduledDate" gorm:"not null" swaggertype:"string" example:"2024-06-01"`
	DisbursedDate *types.Date        `json:"disbursedDate" swaggertype:"string" example:"2024-06-03"`
	Status        DisbursementStatus `json:"status" gorm:"not null" swaggertype:"string" enums:"scheduled,disbursed,cancelled" example:"scheduled"`
	Notes         *string            `json:"notes" example:"First tranche"`
	CreatedAt     time.Time          `json:"createdAt" example:"2024-05-02T19:28:44.491514Z"`
}

func (d *Disbursement) AfterFind(_ *gorm.DB) (err error) {
	utc(&d.CreatedAt)
	return nil
}

func (d *Disbursement) BeforeSave(_ *gorm.DB) error {
	d.Notes = trimOptional(d.Notes)
	d.Status = DisbursementStatus(strings.TrimSpace(string(d.Status)))
	if d.Status == "" {
		d.Status = DisbursementScheduled
	}

	var v validation
	if d.ApplicationID == uuid.Nil {
		v.add("applicationId", "applicationId is required")
	}

	if !d.Amount.IsPositive() {
		v.add("amount", "amount must be greater than 0")
	}

	if d.ScheduledDate.IsZero() {
		v.add("scheduledDate", "scheduledDate is required")
	}

	if !d.Status.Valid() {
		v.add("status", "status must be one of scheduled, disbursed, cancelled")
	}

	return v.err()
}

func (d *Disbursement) BeforeUpdate(_ *gorm.DB) error {
	return ErrAppendOnly
}

func (d *Disbursement) BeforeDelete(_ *gorm.DB) error {
	return ErrAppendOnly
}
