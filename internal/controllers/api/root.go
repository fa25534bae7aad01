package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/backend/internal/database"
	"github.com/grantdesk/backend/internal/httputil"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the API
}

type RootLinks struct {
	Programs      string `json:"programs" example:"https://example.com/api/programs"`           // URL of the grant program list endpoint
	Applicants    string `json:"applicants" example:"https://example.com/api/applicants"`       // URL of the applicant list endpoint
	Applications  string `json:"applications" example:"https://example.com/api/applications"`   // URL of the application list endpoint
	Disbursements string `json:"disbursements" example:"https://example.com/api/disbursements"` // URL of the disbursement endpoint
	Stats         string `json:"stats" example:"https://example.com/api/stats"`                 // URL of the statistics endpoint
}

// @Summary		API
// @Description	Returns the links to all collections of the API
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/api [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(database.ContextURL)) + "/api"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Programs:      url + "/programs",
			Applicants:    url + "/applicants",
			Applications:  url + "/applications",
			Disbursements: url + "/disbursements",
			Stats:         url + "/stats",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
