package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base for all resources.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID = uuid.New()
	return nil
}

// utc converts times read from the database to UTC.
//
// They are stored in UTC, but reading them returns them as +0000.
func utc(times ...*time.Time) {
	for _, t := range times {
		if t != nil {
			*t = t.In(time.UTC)
		}
	}
}
