package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/backend/internal/httputil"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/repository"
)

// ApplicantCreate is the body for new applicants.
type ApplicantCreate struct {
	Name            string  `json:"name" example:"Maria Rodriguez"`
	Email           string  `json:"email" binding:"omitempty,email" example:"maria@greentech.example"`
	Phone           *string `json:"phone" example:"+1 555-123-4567"`
	BusinessName    *string `json:"businessName" example:"GreenTech Solutions"`
	YearsInBusiness *int    `json:"yearsInBusiness" binding:"omitempty,gte=0" example:"5"`
	Employees       *int    `json:"employees" binding:"omitempty,gte=0" example:"12"`
}

func (a ApplicantCreate) model() models.Applicant {
	return models.Applicant{
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		BusinessName:    a.BusinessName,
		YearsInBusiness: a.YearsInBusiness,
		Employees:       a.Employees,
	}
}

type ApplicantQueryFilter struct {
	Email string `form:"email" example:"*@greentech.example"` // Exact email address or glob pattern
}

// RegisterApplicantRoutes registers the routes for applicants with
// the RouterGroup that is passed.
func (co Controller) RegisterApplicantRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsApplicantList)
		r.GET("", co.GetApplicants)
		r.POST("", co.CreateApplicant)
	}

	// Applicant with ID
	{
		r.OPTIONS("/:id", co.OptionsApplicantDetail)
		r.GET("/:id", co.GetApplicant)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Applicants
// @Success		204
// @Router			/api/applicants [options]
func OptionsApplicantList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Applicants
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/applicants/{id} [options]
func (co Controller) OptionsApplicantDetail(c *gin.Context) {
	if _, err := co.applicant(c); err != nil {
		respondError(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List applicants
// @Description	Returns all applicants, newest first
// @Tags			Applicants
// @Produce		json
// @Success		200		{array}		models.Applicant
// @Failure		500		{object}	httperror.Error
// @Param			email	query		string	false	"Filter by email address. A pattern containing * matches as glob."
// @Router			/api/applicants [get]
func (co Controller) GetApplicants(c *gin.Context) {
	var filter ApplicantQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	applicants, err := co.Repository.Applicants(c, repository.ApplicantFilter{
		Email: filter.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applicants)
}

// @Summary		Get applicant
// @Description	Returns a specific applicant
// @Tags			Applicants
// @Produce		json
// @Success		200	{object}	models.Applicant
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/applicants/{id} [get]
func (co Controller) GetApplicant(c *gin.Context) {
	applicant, err := co.applicant(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applicant)
}

// @Summary		Create applicant
// @Description	Creates a new applicant. The email address must not be in use by another applicant.
// @Tags			Applicants
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Applicant
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			applicant	body		ApplicantCreate	true	"Applicant"
// @Router			/api/applicants [post]
func (co Controller) CreateApplicant(c *gin.Context) {
	var data ApplicantCreate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	applicant := data.model()
	if err := co.Repository.CreateApplicant(c, &applicant); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, applicant)
}

func (co Controller) applicant(c *gin.Context) (models.Applicant, error) {
	id, err := bindID(c)
	if err != nil {
		return models.Applicant{}, err
	}

	applicant, found, err := co.Repository.Applicant(c, id)
	if err != nil {
		return models.Applicant{}, err
	}

	if !found {
		return models.Applicant{}, notFound("applicant")
	}

	return applicant, nil
}
