package models

import (
	"errors"
	"strings"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrAppendOnly       = errors.New("this resource is append-only and cannot be changed or deleted")
	ErrBudgetExceeded   = errors.New("approving this application would exceed the program budget")
	ErrProgramInactive  = errors.New("the grant program is not accepting applications")
	ErrEmailNotUnique   = errors.New("an applicant with this email address already exists")
	ErrReferenceMissing = errors.New("a referenced resource does not exist")
)

// FieldError describes why the value of a single field is invalid.
type FieldError struct {
	Field   string `json:"field" example:"amount"`                          // JSON name of the invalid field
	Message string `json:"message" example:"amount must be greater than 0"` // Human readable problem description
}

// ValidationError is returned for all requests that cannot be processed
// because of the data they contain.
//
// Err is an optional sentinel that can be checked with errors.Is.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{
		Fields: []FieldError{{Field: field, Message: message}},
	}
}

// Wrap returns a ValidationError caused by err.
func Wrap(err error, fields ...FieldError) ValidationError {
	return ValidationError{Err: err, Fields: fields}
}

func (e ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields)+1)
	if e.Err != nil {
		messages = append(messages, e.Err.Error())
	}

	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}

	if len(messages) == 0 {
		return "the request contains invalid data"
	}

	return strings.Join(messages, "; ")
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// validation collects field errors while checking a resource.
type validation []FieldError

func (v *validation) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

func (v validation) err() error {
	if len(v) == 0 {
		return nil
	}

	return ValidationError{Fields: v}
}
