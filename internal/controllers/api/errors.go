package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/httperror"
	"github.com/grantdesk/backend/internal/httputil"
	"github.com/grantdesk/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// status returns the appropriate status for an error
func status(err error) int {
	var validationErr models.ValidationError

	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErr),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidUUID):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondError writes the error response. The details of server errors
// are only logged.
func respondError(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(s, httperror.New(models.ErrGeneral))
		return
	}

	c.JSON(s, httperror.New(err))
}

func notFound(resource string) error {
	return fmt.Errorf("%w %s with this ID", models.ErrResourceNotFound, resource)
}

// bindID returns the ID from the path of the request.
func bindID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	return uri.ID.UUID, nil
}
