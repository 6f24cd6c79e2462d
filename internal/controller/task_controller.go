package controller

import (
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	LedgerService *service.LedgerService
}

func NewTaskController(ledgerService *service.LedgerService) *TaskController {
	return &TaskController{LedgerService: ledgerService}
}

// CompleteTaskRequest
// swagger:model CompleteTaskRequest
type CompleteTaskRequest struct {
	TaskID int `json:"task_id" binding:"required,ecotask"`
	// Points defaults to the catalog value when omitted.
	Points *int `json:"points" binding:"omitempty,gt=0"`
}

// GetCatalog godoc
// @Summary Daily task catalog
// @Tags Tasks
// @Produce json
// @Success 200 {object} util.Response{data=[]service.DailyTask}
// @Router /api/tasks/catalog [get]
func (c *TaskController) GetCatalog(ctx *gin.Context) {
	util.Success(ctx, service.DailyTasks())
}

// GetTodayTasks godoc
// @Summary Today's tasks with completion state
// @Tags Tasks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.TaskStatus}
// @Router /api/tasks/today [get]
func (c *TaskController) GetTodayTasks(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	tasks, err := c.LedgerService.TodayTasks(ctx.Request.Context(), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, tasks)
}

// CompleteTask godoc
// @Summary Complete a daily task
// @Description Awards the task's points once per day and grants any newly reached badges.
// @Tags Tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CompleteTaskRequest true "Task"
// @Success 200 {object} util.Response{data=service.CompleteResult}
// @Failure 400 {object} util.Response "Unknown task or invalid points"
// @Failure 409 {object} util.Response "Already completed today"
// @Failure 500 {object} util.Response
// @Router /api/tasks/complete [post]
func (c *TaskController) CompleteTask(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, _ := service.FindDailyTask(req.TaskID)
	points := task.Points
	if req.Points != nil {
		points = *req.Points
	}

	result, err := c.LedgerService.CompleteTaskToday(ctx.Request.Context(), user.UserID, req.TaskID, points)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
