package controller

import (
	"errors"
	"net/http"

	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Anything unknown is
// logged and answered with a generic 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAlreadyCompletedToday):
		util.Conflict(ctx, util.MsgAlreadyCompleted)
	case errors.Is(err, util.ErrEmailRegistered):
		util.Conflict(ctx, "Email is already registered")
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidPoints), errors.Is(err, util.ErrInvalidInput):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrUserBusy):
		util.Error(ctx, http.StatusTooManyRequests, util.MsgRetryLater)
	default:
		util.LogInternalError(ctx, err)
	}
}

// parseID reads the :id path parameter, answering 400 when it is not a
// positive integer.
func parseID(ctx *gin.Context) (uint, bool) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "Invalid ID")
		return 0, false
	}
	return id, true
}
