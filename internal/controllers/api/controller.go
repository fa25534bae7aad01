// Package api contains the handlers for the /api endpoints.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/grantdesk/backend/internal/lifecycle"
	"github.com/grantdesk/backend/internal/repository"
	"github.com/grantdesk/backend/internal/stats"
	"gorm.io/gorm"
)

// Controller holds the services the handlers use.
type Controller struct {
	Repository *repository.Repository
	Lifecycle  *lifecycle.Manager
	Stats      *stats.Service
}

// NewController returns a Controller for the database.
func NewController(db *gorm.DB, options ...repository.Option) Controller {
	repo := repository.New(db, options...)

	return Controller{
		Repository: repo,
		Lifecycle:  lifecycle.New(repo),
		Stats:      stats.New(repo),
	}
}

// RegisterRoutes registers all /api routes with the RouterGroup.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRoot)
		r.GET("", GetRoot)
	}

	co.RegisterProgramRoutes(r.Group("/programs"))
	co.RegisterApplicantRoutes(r.Group("/applicants"))
	co.RegisterApplicationRoutes(r.Group("/applications"))
	co.RegisterDisbursementRoutes(r.Group("/disbursements"))
	co.RegisterStatsRoutes(r.Group("/stats"))
}
