package controller

import (
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// BadgeController serves points, badges and the impact figures derived from them.
type BadgeController struct {
	BadgeService  *service.BadgeService
	LedgerService *service.LedgerService
}

func NewBadgeController(badgeService *service.BadgeService, ledgerService *service.LedgerService) *BadgeController {
	return &BadgeController{
		BadgeService:  badgeService,
		LedgerService: ledgerService,
	}
}

// @Summary User badges
// @Tags Badges
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Badge}
// @Router /api/badges [get]
func (c *BadgeController) GetBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.BadgeService.GetUserBadges(ctx.Request.Context(), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

// @Summary Progress towards the next badge
// @Tags Badges
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.BadgeProgress}
// @Router /api/badges/next [get]
func (c *BadgeController) GetNextBadge(ctx *gin.Context) {
	total, ok := c.totalPoints(ctx)
	if !ok {
		return
	}
	util.Success(ctx, service.NextBadgeInfo(total))
}

// @Summary Total points and level
// @Tags Badges
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/points/total [get]
func (c *BadgeController) GetTotalPoints(ctx *gin.Context) {
	total, ok := c.totalPoints(ctx)
	if !ok {
		return
	}
	util.Success(ctx, gin.H{
		"totalPoints": total,
		"level":       service.ComputeLevel(total),
	})
}

// @Summary Environmental impact of the user's points
// @Tags Badges
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/impact [get]
func (c *BadgeController) GetImpact(ctx *gin.Context) {
	total, ok := c.totalPoints(ctx)
	if !ok {
		return
	}
	impact := service.ComputeImpact(total)
	util.Success(ctx, gin.H{
		"totalPoints": total,
		"impact":      impact,
		"comparisons": service.ComputeComparisons(impact),
		"trees":       service.TreesEquivalent(impact.CO2Saved),
	})
}

func (c *BadgeController) totalPoints(ctx *gin.Context) (int, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return 0, false
	}

	total, err := c.LedgerService.GetUserTotalPoints(ctx.Request.Context(), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return 0, false
	}
	return total, true
}
