package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"
)

func (h *handler) processListUsersRequest(c *gin.Context) (listUsersReq, model.Scope, error) {
	var req listUsersReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.processListUsersRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processCreateUserRequest(c *gin.Context) (createUserReq, model.Scope, error) {
	var req createUserReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.processCreateUserRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processUpdateAdminNotesRequest(c *gin.Context) (updateAdminNotesReq, model.Scope, error) {
	var req updateAdminNotesReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.processUpdateAdminNotesRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}
	req.UserID = c.Param("user_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processScheduleDemoRequest(c *gin.Context) (scheduleDemoReq, time.Time, model.Scope, error) {
	var req scheduleDemoReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.processScheduleDemoRequest: ShouldBindJSON failed: %v", err)
		return req, time.Time{}, model.Scope{}, err
	}
	req.UserID = c.Param("user_id")

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.processScheduleDemoRequest: invalid scheduled_at: %v", err)
		return req, time.Time{}, model.Scope{}, errInvalidScheduleTime
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, scheduledAt, sc, nil
}
