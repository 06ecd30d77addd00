package admin

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListUsers(ctx context.Context, sc model.Scope, input ListUsersInput) (ListUsersOutput, error)
	CreateUser(ctx context.Context, sc model.Scope, input CreateUserInput) (UserOutput, error)
	ListDemoRequests(ctx context.Context, sc model.Scope) ([]model.DemoRequest, error)
	UpdateAdminNotes(ctx context.Context, sc model.Scope, input UpdateAdminNotesInput) (UserOutput, error)
	ScheduleDemo(ctx context.Context, sc model.Scope, input ScheduleDemoInput) (UserOutput, error)
	CompleteDemo(ctx context.Context, sc model.Scope, input CompleteDemoInput) (UserOutput, error)
}
