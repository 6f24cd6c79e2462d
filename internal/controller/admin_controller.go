package controller

import (
	"strconv"

	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	StatsService *service.StatsService
	UserService  *service.UserService
}

func NewAdminController(statsService *service.StatsService, userService *service.UserService) *AdminController {
	return &AdminController{
		StatsService: statsService,
		UserService:  userService,
	}
}

// @Summary Site statistics
// @Description Totals, today's activity, weekly active users and the leaderboard
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AdminStats}
// @Router /api/admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.StatsService.GetAdminStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary List users
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.UserService.GetUsers(ctx.Request.Context(), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
