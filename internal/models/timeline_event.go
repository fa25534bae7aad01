package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemUser is the actor for events not caused by a named person.
const SystemUser = "System"

// TimelineEvent is an entry in the audit trail of an application.
//
// Timeline events are only ever appended.
type TimelineEvent struct {
	DefaultModel
	ApplicationID uuid.UUID   `json:"applicationId" gorm:"not null;index" example:"8cb4c7a1-4dd0-4d2e-9c0c-97cbb6a5e0d5"`
	Application   Application `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Status        string      `json:"status" gorm:"not null" example:"Under Review"` // Human readable label of the status
	User          string      `json:"user" gorm:"not null" example:"Admin"`          // Actor that caused the event
	Comment       *string     `json:"comment" example:"Application submitted for review"`
	CreatedAt     time.Time   `json:"createdAt" gorm:"index" example:"2024-03-02T19:28:44.491514Z"`
}

func (e *TimelineEvent) AfterFind(_ *gorm.DB) (err error) {
	utc(&e.CreatedAt)
	return nil
}

func (e *TimelineEvent) BeforeSave(_ *gorm.DB) error {
	e.Status = strings.TrimSpace(e.Status)
	e.User = strings.TrimSpace(e.User)
	e.Comment = trimOptional(e.Comment)

	if e.User == "" {
		e.User = SystemUser
	}

	var v validation
	if e.ApplicationID == uuid.Nil {
		v.add("applicationId", "applicationId is required")
	}

	if e.Status == "" {
		v.add("status", "status is required")
	}

	return v.err()
}

func (e *TimelineEvent) BeforeUpdate(_ *gorm.DB) error {
	return ErrAppendOnly
}

func (e *TimelineEvent) BeforeDelete(_ *gorm.DB) error {
	return ErrAppendOnly
}
