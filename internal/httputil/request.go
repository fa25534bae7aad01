// Package httputil contains helpers for handling requests.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/grantdesk/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data and validates it.
//
// Validation failures are returned as models.ValidationError.
func BindData(c *gin.Context, data any) error {
	if c.Request.Body == nil {
		return ErrRequestBodyEmpty
	}

	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return ValidationError(validationErrors)
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return models.Wrap(ErrInvalidBody, models.FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return models.Wrap(ErrInvalidBody)
	}

	// Errors of custom unmarshalers, e.g. for an unparseable date
	return models.Wrap(ErrInvalidBody, models.FieldError{Message: err.Error()})
}

// ValidationError converts the errors of the validator.
func ValidationError(errs validator.ValidationErrors) models.ValidationError {
	fields := make([]models.FieldError, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, models.FieldError{
			Field:   e.Field(),
			Message: ValidationErrorToText(e),
		})
	}

	return models.ValidationError{Fields: fields}
}

// ValidationErrorToText returns a human readable message for a failed
// validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// RegisterJSONFieldNames makes the validator used by gin report fields
// by their JSON name.
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
}
