package admin

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

type ListUsersInput struct {
	Search   string
	PagQuery paginator.PaginateQuery
}

type ListUsersOutput struct {
	Users      []model.AdminUser
	Pagination paginator.Paginator
}

type CreateUserInput struct {
	Email       string
	FullName    string
	Role        string
	WorkspaceID string
}

type UpdateAdminNotesInput struct {
	UserID string
	Notes  string
}

type ScheduleDemoInput struct {
	UserID      string
	ScheduledAt time.Time
}

type CompleteDemoInput struct {
	UserID string
}

type UserOutput struct {
	User model.AdminUser
}
