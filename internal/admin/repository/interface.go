package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UserRepository
type UserRepository interface {
	ListUsers(ctx context.Context, opts ListUsersOptions) ([]model.AdminUser, int64, error)
	GetUserByID(ctx context.Context, id string) (*model.AdminUser, error)
	CreateUser(ctx context.Context, opts CreateUserOptions) (*model.AdminUser, error)
	UpdateAdminNotes(ctx context.Context, opts UpdateAdminNotesOptions) (*model.AdminUser, error)
	SetDemoScheduled(ctx context.Context, opts SetDemoScheduledOptions) (*model.AdminUser, error)
	SetDemoCompleted(ctx context.Context, userID string) (*model.AdminUser, error)
	ListDemoRequests(ctx context.Context) ([]model.DemoRequest, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	UserRepository
}
