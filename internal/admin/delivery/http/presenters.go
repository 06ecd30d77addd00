package http

import (
	"time"

	"engagement-srv/internal/admin"
	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

type listUsersReq struct {
	paginator.PaginateQuery
	Search string `form:"search"`
}

func (r listUsersReq) toInput() admin.ListUsersInput {
	return admin.ListUsersInput{
		Search:   r.Search,
		PagQuery: r.PaginateQuery,
	}
}

type createUserReq struct {
	Email       string `json:"email" binding:"required"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	WorkspaceID string `json:"workspace_id"`
}

func (r createUserReq) toInput() admin.CreateUserInput {
	return admin.CreateUserInput{
		Email:       r.Email,
		FullName:    r.FullName,
		Role:        r.Role,
		WorkspaceID: r.WorkspaceID,
	}
}

type updateAdminNotesReq struct {
	UserID string `json:"-"`
	Notes  string `json:"notes"`
}

type scheduleDemoReq struct {
	UserID      string `json:"-"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}

type userResp struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	DisplayName   string  `json:"display_name"`
	Role          string  `json:"role"`
	WorkspaceID   string  `json:"workspace_id,omitempty"`
	AdminNotes    string  `json:"admin_notes,omitempty"`
	DemoScheduled *string `json:"demo_scheduled,omitempty"`
	DemoCompleted bool    `json:"demo_completed"`
	CreatedAt     string  `json:"created_at"`
}

type listUsersResp struct {
	Users      []userResp          `json:"users"`
	Pagination paginator.Paginator `json:"pagination"`
}

type demoRequestResp struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id,omitempty"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	CompanyName string  `json:"company_name,omitempty"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requested_at"`
	ScheduledAt *string `json:"scheduled_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type listDemoRequestsResp struct {
	Requests []demoRequestResp `json:"requests"`
}

func newUserResp(u model.AdminUser) userResp {
	resp := userResp{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName(),
		Role:          u.Role,
		WorkspaceID:   u.WorkspaceID,
		AdminNotes:    u.AdminNotes,
		DemoCompleted: u.DemoCompleted,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
	if u.DemoScheduled != nil {
		scheduled := u.DemoScheduled.Format(time.RFC3339)
		resp.DemoScheduled = &scheduled
	}
	return resp
}

func (h *handler) newListUsersResp(o admin.ListUsersOutput) listUsersResp {
	users := make([]userResp, 0, len(o.Users))
	for _, u := range o.Users {
		users = append(users, newUserResp(u))
	}
	return listUsersResp{
		Users:      users,
		Pagination: o.Pagination,
	}
}

func newDemoRequestResp(dr model.DemoRequest) demoRequestResp {
	resp := demoRequestResp{
		ID:          dr.ID,
		UserID:      dr.UserID,
		Email:       dr.Email,
		FullName:    dr.FullName,
		CompanyName: dr.CompanyName,
		Status:      dr.Status,
		RequestedAt: dr.RequestedAt.Format(time.RFC3339),
	}
	if dr.ScheduledAt != nil {
		scheduled := dr.ScheduledAt.Format(time.RFC3339)
		resp.ScheduledAt = &scheduled
	}
	if dr.CompletedAt != nil {
		completed := dr.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

func newListDemoRequestsResp(requests []model.DemoRequest) listDemoRequestsResp {
	resps := make([]demoRequestResp, 0, len(requests))
	for _, dr := range requests {
		resps = append(resps, newDemoRequestResp(dr))
	}
	return listDemoRequestsResp{Requests: resps}
}
