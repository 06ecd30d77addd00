package repository

import "time"

type ListUsersOptions struct {
	Search string
	Limit  int64
	Offset int64
}

type CreateUserOptions struct {
	ID          string
	Email       string
	FullName    string
	Role        string
	WorkspaceID string
}

type UpdateAdminNotesOptions struct {
	UserID string
	Notes  string
}

type SetDemoScheduledOptions struct {
	UserID      string
	ScheduledAt time.Time
}
