package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/backend/internal/httputil"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/repository"
	"github.com/grantdesk/backend/internal/types"
)

// ProgramCreate is the body for new grant programs.
type ProgramCreate struct {
	Name        string         `json:"name" example:"Small Business Innovation Grant"`
	Description string         `json:"description" example:"Supports innovative small businesses"`
	Budget      types.Money    `json:"budget" swaggertype:"string" example:"500000.00"`
	Deadline    types.Date     `json:"deadline" swaggertype:"string" example:"2025-12-31"`
	IsActive    *types.IntBool `json:"isActive" swaggertype:"integer" example:"1"` // Defaults to 1
}

func (p ProgramCreate) model() models.GrantProgram {
	isActive := types.True
	if p.IsActive != nil {
		isActive = *p.IsActive
	}

	return models.GrantProgram{
		Name:        p.Name,
		Description: p.Description,
		Budget:      p.Budget,
		Deadline:    p.Deadline,
		IsActive:    isActive,
	}
}

// ProgramUpdate is the body for changes to a grant program. Fields that
// are not set are not changed.
type ProgramUpdate struct {
	Name        *string        `json:"name" example:"Small Business Innovation Grant"`
	Description *string        `json:"description" example:"Supports innovative small businesses"`
	Budget      *types.Money   `json:"budget" swaggertype:"string" example:"750000.00"`
	Deadline    *types.Date    `json:"deadline" swaggertype:"string" example:"2026-03-31"`
	IsActive    *types.IntBool `json:"isActive" swaggertype:"integer" example:"0"`
}

func (p ProgramUpdate) update() repository.ProgramUpdate {
	return repository.ProgramUpdate{
		Name:        p.Name,
		Description: p.Description,
		Budget:      p.Budget,
		Deadline:    p.Deadline,
		IsActive:    p.IsActive,
	}
}

// RegisterProgramRoutes registers the routes for grant programs with
// the RouterGroup that is passed.
func (co Controller) RegisterProgramRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProgramList)
		r.GET("", co.GetPrograms)
		r.POST("", co.CreateProgram)
	}

	// Program with ID
	{
		r.OPTIONS("/:id", co.OptionsProgramDetail)
		r.GET("/:id", co.GetProgram)
		r.PATCH("/:id", co.UpdateProgram)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Programs
// @Success		204
// @Router			/api/programs [options]
func OptionsProgramList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Programs
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/programs/{id} [options]
func (co Controller) OptionsProgramDetail(c *gin.Context) {
	if _, err := co.program(c); err != nil {
		respondError(c, err)
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List grant programs
// @Description	Returns all grant programs, newest first
// @Tags			Programs
// @Produce		json
// @Success		200	{array}		models.GrantProgram
// @Failure		500	{object}	httperror.Error
// @Router			/api/programs [get]
func (co Controller) GetPrograms(c *gin.Context) {
	programs, err := co.Repository.Programs(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, programs)
}

// @Summary		Get grant program
// @Description	Returns a specific grant program
// @Tags			Programs
// @Produce		json
// @Success		200	{object}	models.GrantProgram
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/programs/{id} [get]
func (co Controller) GetProgram(c *gin.Context) {
	program, err := co.program(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}

// @Summary		Create grant program
// @Description	Creates a new grant program. Nothing is allocated for a new program.
// @Tags			Programs
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.GrantProgram
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			program	body		ProgramCreate	true	"Grant program"
// @Router			/api/programs [post]
func (co Controller) CreateProgram(c *gin.Context) {
	var data ProgramCreate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	program := data.model()
	if err := co.Repository.CreateProgram(c, &program); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, program)
}

// @Summary		Update grant program
// @Description	Updates a grant program. Only values to be updated need to be specified.
// @Tags			Programs
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.GrantProgram
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string			true	"ID formatted as string"
// @Param			program	body		ProgramUpdate	true	"Grant program"
// @Router			/api/programs/{id} [patch]
func (co Controller) UpdateProgram(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var data ProgramUpdate
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	program, err := co.Repository.UpdateProgram(c, id, data.update())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}

func (co Controller) program(c *gin.Context) (models.GrantProgram, error) {
	id, err := bindID(c)
	if err != nil {
		return models.GrantProgram{}, err
	}

	program, found, err := co.Repository.Program(c, id)
	if err != nil {
		return models.GrantProgram{}, err
	}

	if !found {
		return models.GrantProgram{}, notFound("grant program")
	}

	return program, nil
}
