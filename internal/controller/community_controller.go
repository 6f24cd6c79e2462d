package controller

import (
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	StatsService *service.StatsService
}

func NewCommunityController(statsService *service.StatsService) *CommunityController {
	return &CommunityController{StatsService: statsService}
}

// @Summary Community impact
// @Description Site-wide user and task counts with the estimated savings
// @Tags Community
// @Produce json
// @Success 200 {object} util.Response{data=service.CommunityStats}
// @Router /api/community/stats [get]
func (c *CommunityController) GetStats(ctx *gin.Context) {
	stats, err := c.StatsService.GetCommunityStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
