package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/httputil"
	"github.com/grantdesk/backend/internal/lifecycle"
	"github.com/grantdesk/backend/internal/types"
)

// ApplicationCreate is the body for new applications.
type ApplicationCreate struct {
	ApplicantID uuid.UUID   `json:"applicantId" binding:"required" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	ProgramID   uuid.UUID   `json:"programId" binding:"required" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Amount      types.Money `json:"amount" swaggertype:"string" example:"50000.00"`
	Description string      `json:"description" example:"Solar panel installation for the workshop"`
}

func (a ApplicationCreate) submission() lifecycle.Submission {
	return lifecycle.Submission{
		ApplicantID: a.ApplicantID,
		ProgramID:   a.ProgramID,
		Amount:      a.Amount,
		Description: a.Description,
	}
}

// StatusUpdate is the body for a status change of an application.
type StatusUpdate struct {
	Status      string  `json:"status" enums:"pending,under_review,approved,rejected,disbursed,completed" example:"approved"`
	ReviewedBy  *string `json:"reviewedBy" example:"Admin"`           // Shown as user on the timeline. Defaults to System.
	ReviewNotes *string `json:"reviewNotes" example:"Strong proposal"` // Shown as comment on the timeline
}

func (s StatusUpdate) review() lifecycle.Review {
	return lifecycle.Review{
		Status:      s.Status,
		ReviewedBy:  s.ReviewedBy,
		ReviewNotes: s.ReviewNotes,
	}
}

// RegisterApplicationRoutes registers the routes for applications with
// the RouterGroup that is passed.
func (co Controller) RegisterApplicationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsApplicationList)
		r.GET("", co.GetApplications)
		r.POST("", co.CreateApplication)
	}

	// Application with ID
	{
		r.OPTIONS("/:id", co.OptionsApplicationDetail)
		r.GET("/:id", co.GetApplication)
		r.OPTIONS("/:id/status", OptionsApplicationStatus)
		r.PATCH("/:id/status", co.UpdateApplicationStatus)
		r.OPTIONS("/:id/timeline", OptionsApplicationTimeline)
		r.GET("/:id/timeline", co.GetApplicationTimeline)
		r.OPTIONS("/:id/disbursements", OptionsApplicationDisbursements)
		r.GET("/:id/disbursements", co.GetApplicationDisbursements)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Applications
// @Success		204
// @Router			/api/applications [options]
func OptionsApplicationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Applications
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/applications/{id} [options]
func (co Controller) OptionsApplicationDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := co.Lifecycle.Get(c, id); err != nil {
		respondError(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Applications
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/api/applications/{id}/status [options]
func OptionsApplicationStatus(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Applications
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/api/applications/{id}/timeline [options]
func OptionsApplicationTimeline(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Applications
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/api/applications/{id}/disbursements [options]
func OptionsApplicationDisbursements(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List applications
// @Description	Returns all applications, most recently submitted first
// @Tags			Applications
// @Produce		json
// @Success		200	{array}		models.Application
// @Failure		500	{object}	httperror.Error
// @Router			/api/applications [get]
func (co Controller) GetApplications(c *gin.Context) {
	applications, err := co.Lifecycle.List(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// @Summary		Get application
// @Description	Returns a specific application
// @Tags			Applications
// @Produce		json
// @Success		200	{object}	models.Application
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/applications/{id} [get]
func (co Controller) GetApplication(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	application, err := co.Lifecycle.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// @Summary		Submit application
// @Description	Submits a new application to an active grant program. The application starts as pending.
// @Tags			Applications
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Application
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			application	body		ApplicationCreate	true	"Application"
// @Router			/api/applications [post]
func (co Controller) CreateApplication(c *gin.Context) {
	var data ApplicationCreate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	application, err := co.Lifecycle.Create(c, data.submission())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// @Summary		Change application status
// @Description	Moves the application to a new status and records the change on its timeline.
// @Description	Approving allocates the amount from the budget of the program.
// @Tags			Applications
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Application
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string			true	"ID formatted as string"
// @Param			status	body		StatusUpdate	true	"Status change"
// @Router			/api/applications/{id}/status [patch]
func (co Controller) UpdateApplicationStatus(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var data StatusUpdate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	application, err := co.Lifecycle.SetStatus(c, id, data.review())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// @Summary		Get application timeline
// @Description	Returns the timeline of an application, newest event first
// @Tags			Applications
// @Produce		json
// @Success		200	{array}		models.TimelineEvent
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/applications/{id}/timeline [get]
func (co Controller) GetApplicationTimeline(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	events, err := co.Lifecycle.Timeline(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// @Summary		Get application disbursements
// @Description	Returns the disbursements of an application, latest scheduled date first
// @Tags			Applications
// @Produce		json
// @Success		200	{array}		models.Disbursement
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/applications/{id}/disbursements [get]
func (co Controller) GetApplicationDisbursements(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	disbursements, err := co.Repository.Disbursements(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, disbursements)
}
