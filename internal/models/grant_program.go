package models

import (
	"strings"
	"time"

	"github.com/grantdesk/backend/internal/types"
	"gorm.io/gorm"
)

// GrantProgram is a funding program applications are made to.
type GrantProgram struct {
	DefaultModel
	Name        string        `json:"name" gorm:"not null" example:"Small Business Innovation Grant"`
	Description string        `json:"description" gorm:"not null" example:"Supports innovative small businesses"`
	Budget      types.Money   `json:"budget" gorm:"type:DECIMAL(12,2);not null" swaggertype:"string" example:"500000.00"`
	Allocated   types.Money   `json:"allocated" gorm:"type:DECIMAL(12,2);not null" swaggertype:"string" example:"125000.00"` // Sum of the amounts of all approved applications
	Deadline    types.Date    `json:"deadline" gorm:"not null" swaggertype:"string" example:"2025-12-31"`
	IsActive    types.IntBool `json:"isActive" gorm:"not null" swaggertype:"integer" example:"1"` // 1 if the program accepts applications, 0 otherwise
	CreatedAt   time.Time     `json:"createdAt" example:"2024-03-02T19:28:44.491514Z"`
	UpdatedAt   time.Time     `json:"updatedAt" example:"2024-04-17T20:14:01.048145Z"`
}

func (p *GrantProgram) AfterFind(_ *gorm.DB) (err error) {
	utc(&p.CreatedAt, &p.UpdatedAt)
	return nil
}

// BeforeSave trims whitespace and validates the program.
func (p *GrantProgram) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	var v validation
	if p.Name == "" {
		v.add("name", "name is required")
	}

	if p.Description == "" {
		v.add("description", "description is required")
	}

	if !p.Budget.IsPositive() {
		v.add("budget", "budget must be greater than 0")
	}

	if p.Allocated.IsNegative() {
		v.add("allocated", "allocated must not be negative")
	}

	if p.Allocated.GreaterThan(p.Budget) {
		v.add("budget", "budget must not be lower than the amount already allocated")
	}

	if p.Deadline.IsZero() {
		v.add("deadline", "deadline is required")
	}

	if p.IsActive != types.False && p.IsActive != types.True {
		v.add("isActive", "isActive must be 0 or 1")
	}

	return v.err()
}

// Remaining returns the part of the budget not yet allocated.
func (p GrantProgram) Remaining() types.Money {
	return p.Budget.Sub(p.Allocated)
}
