package controller

import (
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TipController struct {
	TipService *service.TipService
}

func NewTipController(tipService *service.TipService) *TipController {
	return &TipController{TipService: tipService}
}

// @Summary Random eco tip
// @Tags Tips
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/tips/random [get]
func (c *TipController) GetRandomTip(ctx *gin.Context) {
	util.Success(ctx, gin.H{"tip": c.TipService.GetRandomTip(ctx.Request.Context())})
}

// @Summary List all tips
// @Description Admin only
// @Tags Tips
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Tip}
// @Router /api/admin/tips [get]
func (c *TipController) ListTips(ctx *gin.Context) {
	tips, err := c.TipService.ListTips(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, tips)
}

// @Summary Create a tip
// @Description Admin only. Markup is stripped from the text.
// @Tags Tips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "{text, category}"
// @Success 201 {object} util.Response{data=model.Tip}
// @Failure 400 {object} util.Response
// @Router /api/admin/tips [post]
func (c *TipController) CreateTip(ctx *gin.Context) {
	var req struct {
		Text     string `json:"text" binding:"required,max=1000"`
		Category string `json:"category" binding:"required,max=50"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tip, err := c.TipService.CreateTip(ctx.Request.Context(), req.Text, req.Category)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, tip)
}

// @Summary Delete a tip
// @Description Admin only
// @Tags Tips
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Tip ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/tips/{id} [delete]
func (c *TipController) DeleteTip(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.TipService.DeleteTip(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
