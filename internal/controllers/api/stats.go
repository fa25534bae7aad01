package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/backend/internal/httputil"
)

// RegisterStatsRoutes registers the routes for the statistics with
// the RouterGroup that is passed.
func (co Controller) RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", co.GetStats)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/api/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns the totals shown on the dashboard
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	stats.Stats
// @Failure		500	{object}	httperror.Error
// @Router			/api/stats [get]
func (co Controller) GetStats(c *gin.Context) {
	s, err := co.Stats.Compute(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}
