package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// Applicant is a person or business applying for grants.
//
// Applicants are never changed after they have been created.
type Applicant struct {
	DefaultModel
	Name            string    `json:"name" gorm:"not null" example:"Maria Rodriguez"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null" example:"maria@greentech.example"`
	Phone           *string   `json:"phone" example:"+1 555-123-4567"`
	BusinessName    *string   `json:"businessName" example:"GreenTech Solutions"`
	YearsInBusiness *int      `json:"yearsInBusiness" example:"5"`
	Employees       *int      `json:"employees" example:"12"`
	CreatedAt       time.Time `json:"createdAt" example:"2024-03-02T19:28:44.491514Z"`
}

func (a *Applicant) AfterFind(_ *gorm.DB) (err error) {
	utc(&a.CreatedAt)
	return nil
}

// BeforeSave trims whitespace and validates the applicant.
func (a *Applicant) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = trimOptional(a.Phone)
	a.BusinessName = trimOptional(a.BusinessName)

	var v validation
	if a.Name == "" {
		v.add("name", "name is required")
	}

	if a.Email == "" {
		v.add("email", "email is required")
	} else if validate.Var(a.Email, "email") != nil {
		v.add("email", "email is not a valid email address")
	}

	if a.YearsInBusiness != nil && *a.YearsInBusiness < 0 {
		v.add("yearsInBusiness", "yearsInBusiness must not be negative")
	}

	if a.Employees != nil && *a.Employees < 0 {
		v.add("employees", "employees must not be negative")
	}

	return v.err()
}

func (a *Applicant) BeforeUpdate(_ *gorm.DB) error {
	return ErrAppendOnly
}

// trimOptional trims whitespace and returns nil for empty strings.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
