package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/httputil"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/types"
)

// DisbursementCreate is the body for new disbursements.
type DisbursementCreate struct {
	ApplicationID uuid.UUID                 `json:"applicationId" binding:"required" example:"8cb4c7a1-4dd0-4d2e-9c0c-97cbb6a5e0d5"`
	Amount        types.Money               `json:"amount" swaggertype:"string" example:"25000.00"`
	ScheduledDate types.Date                `json:"scheduledDate" swaggertype:"string" example:"2024-06-01"`
	DisbursedDate *types.Date               `json:"disbursedDate" swaggertype:"string" example:"2024-06-03"` // Defaults to today for disbursements with status disbursed
	Status        models.DisbursementStatus `json:"status" swaggertype:"string" enums:"scheduled,disbursed,cancelled" example:"scheduled"` // Defaults to scheduled
	Notes         *string                   `json:"notes" example:"First tranche"`
}

func (d DisbursementCreate) model() models.Disbursement {
	disbursement := models.Disbursement{
		ApplicationID: d.ApplicationID,
		Amount:        d.Amount,
		ScheduledDate: d.ScheduledDate,
		DisbursedDate: d.DisbursedDate,
		Status:        d.Status,
		Notes:         d.Notes,
	}

	if disbursement.Status == models.DisbursementDisbursed && disbursement.DisbursedDate == nil {
		today := types.DateOf(time.Now().UTC())
		disbursement.DisbursedDate = &today
	}

	return disbursement
}

// RegisterDisbursementRoutes registers the routes for disbursements with
// the RouterGroup that is passed.
//
// Disbursements are listed per application.
func (co Controller) RegisterDisbursementRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDisbursementList)
	r.POST("", co.CreateDisbursement)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Disbursements
// @Success		204
// @Router			/api/disbursements [options]
func OptionsDisbursementList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create disbursement
// @Description	Records a payment for an application. Disbursements cannot be changed once created.
// @Tags			Disbursements
// @Accept			json
// @Produce		json
// @Success		201				{object}	models.Disbursement
// @Failure		400				{object}	httperror.Error
// @Failure		500				{object}	httperror.Error
// @Param			disbursement	body		DisbursementCreate	true	"Disbursement"
// @Router			/api/disbursements [post]
func (co Controller) CreateDisbursement(c *gin.Context) {
	var data DisbursementCreate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	disbursement := data.model()
	if err := co.Repository.CreateDisbursement(c, &disbursement); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, disbursement)
}
