package controller

import (
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary Dashboard
// @Description Today's tasks, totals, level, weekly stats, impact and a random tip
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.GetUserDashboard(ctx.Request.Context(), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

// @Summary Profile summary
// @Description Badges, activity history, today's and total impact, next badge
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ProfileSummary}
// @Failure 404 {object} util.Response
// @Router /api/profile/summary [get]
func (c *DashboardController) GetProfileSummary(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.DashboardService.GetProfileSummary(ctx.Request.Context(), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// @Summary Personal statistics
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StatsView}
// @Router /api/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.DashboardService.GetStats(ctx.Request.Context(), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
