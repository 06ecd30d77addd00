package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/admin"
	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"
)

// @Summary List platform users
// @Description Return one page of users with demo pipeline state. Admin only.
// @Tags Admin
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Match against email or name"
// @Success 200 {object} listUsersResp
// @Failure 403 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/admin/users [get]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListUsersRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.ListUsers: processListUsersRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListUsers(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.ListUsers: usecase ListUsers failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListUsersResp(o))
}

// @Summary Create a platform user
// @Description Register a new user. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body createUserReq true "New user"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/admin/users [post]
func (h *handler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateUserRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.CreateUser: processCreateUserRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.CreateUser(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.CreateUser: usecase CreateUser failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newUserResp(o.User))
}

// @Summary List demo requests
// @Description Return all product demo requests, newest first. Admin only.
// @Tags Admin
// @Produce json
// @Success 200 {object} listDemoRequestsResp
// @Failure 403 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/users/demo-requests [get]
func (h *handler) ListDemoRequests(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	requests, err := h.uc.ListDemoRequests(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.ListDemoRequests: usecase ListDemoRequests failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListDemoRequestsResp(requests))
}

// @Summary Update admin notes for a user
// @Description Replace the internal notes kept about a user. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param body body updateAdminNotesReq true "New notes"
// @Success 200 {object} userResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/{user_id}/admin-notes [put]
func (h *handler) UpdateAdminNotes(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateAdminNotesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.UpdateAdminNotes: processUpdateAdminNotesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UpdateAdminNotes(ctx, sc, admin.UpdateAdminNotesInput{
		UserID: req.UserID,
		Notes:  req.Notes,
	})
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.UpdateAdminNotes: usecase UpdateAdminNotes failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newUserResp(o.User))
}

// @Summary Schedule a demo for a user
// @Description Record the agreed demo time. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param body body scheduleDemoReq true "Demo time (RFC3339)"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/{user_id}/demo-scheduled [put]
func (h *handler) ScheduleDemo(c *gin.Context) {
	ctx := c.Request.Context()

	req, scheduledAt, sc, err := h.processScheduleDemoRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.ScheduleDemo: processScheduleDemoRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ScheduleDemo(ctx, sc, admin.ScheduleDemoInput{
		UserID:      req.UserID,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.ScheduleDemo: usecase ScheduleDemo failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newUserResp(o.User))
}

// @Summary Mark a user's demo completed
// @Description Flag the demo as held. Admin only.
// @Tags Admin
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} userResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/{user_id}/demo-completed [put]
func (h *handler) CompleteDemo(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.CompleteDemo(ctx, sc, admin.CompleteDemoInput{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "admin.delivery.http.CompleteDemo: usecase CompleteDemo failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newUserResp(o.User))
}
