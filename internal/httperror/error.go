// Package httperror defines the body of error responses.
package httperror

import (
	"errors"

	"github.com/grantdesk/backend/internal/models"
)

type Error struct {
	Message string              `json:"error" example:"the specified resource ID is not a valid UUID"`
	Fields  []models.FieldError `json:"fields,omitempty"` // Set for validation errors
}

func New(e error) Error {
	r := Error{
		Message: e.Error(),
	}

	var validationErr models.ValidationError
	if errors.As(e, &validationErr) {
		for _, f := range validationErr.Fields {
			if f.Field != "" {
				r.Fields = append(r.Fields, f)
			}
		}
	}

	return r
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
