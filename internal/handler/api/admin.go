package api

import (
	"net/http"

	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	stats   queries.StatsQueries
	overdue commands.OverdueCommands
}

func NewAdminHandler(stats queries.StatsQueries, overdue commands.OverdueCommands) *AdminHandler {
	return &AdminHandler{stats: stats, overdue: overdue}
}

// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardStatsResponse
// @Failure 403 {object} map[string]string
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		abortWithKind(c, err, "dashboard stats")
		return
	}

	resp, err := resdto.FromDashboardStats(stats)
	if err != nil {
		abortWithKind(c, err, "map stats")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Run the overdue sweep
// @Description Mark every BORROWED reservation past its expected return date as OVERDUE
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 403 {object} map[string]string
// @Router /admin/sweeps/overdue [post]
func (h *AdminHandler) Sweep(c *gin.Context) {
	result, err := h.overdue.Sweep(c.Request.Context())
	if err != nil {
		abortWithKind(c, err, "overdue sweep")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}
