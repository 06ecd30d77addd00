package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"engagement-srv/internal/admin"
	"engagement-srv/internal/admin/repository"
	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

const defaultRole = "member"

// ListUsers returns one page of platform users. Admin only.
func (uc *implUseCase) ListUsers(ctx context.Context, sc model.Scope, input admin.ListUsersInput) (admin.ListUsersOutput, error) {
	if !sc.IsAdmin() {
		return admin.ListUsersOutput{}, admin.ErrNotAdmin
	}
	input.PagQuery.Adjust()

	users, total, err := uc.repo.ListUsers(ctx, repository.ListUsersOptions{
		Search: input.Search,
		Limit:  input.PagQuery.Limit,
		Offset: input.PagQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "admin.usecase.ListUsers: Failed to list users: %v", err)
		return admin.ListUsersOutput{}, err
	}

	return admin.ListUsersOutput{
		Users: users,
		Pagination: paginator.Paginator{
			Total:       total,
			CurrentPage: input.PagQuery.Page,
			PerPage:     input.PagQuery.Limit,
		},
	}, nil
}

// CreateUser registers a new platform user. Admin only.
func (uc *implUseCase) CreateUser(ctx context.Context, sc model.Scope, input admin.CreateUserInput) (admin.UserOutput, error) {
	if !sc.IsAdmin() {
		return admin.UserOutput{}, admin.ErrNotAdmin
	}
	if input.Email == "" {
		return admin.UserOutput{}, admin.ErrEmailRequired
	}
	if input.Role == "" {
		input.Role = defaultRole
	}

	user, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		ID:          uuid.New().String(),
		Email:       input.Email,
		FullName:    input.FullName,
		Role:        input.Role,
		WorkspaceID: input.WorkspaceID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return admin.UserOutput{}, admin.ErrDuplicateEmail
		}
		uc.l.Errorf(ctx, "admin.usecase.CreateUser: Failed to create user: %v", err)
		return admin.UserOutput{}, admin.ErrUserCreateFailed
	}

	return admin.UserOutput{User: *user}, nil
}

// ListDemoRequests returns all demo requests. Admin only.
func (uc *implUseCase) ListDemoRequests(ctx context.Context, sc model.Scope) ([]model.DemoRequest, error) {
	if !sc.IsAdmin() {
		return nil, admin.ErrNotAdmin
	}

	requests, err := uc.repo.ListDemoRequests(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "admin.usecase.ListDemoRequests: Failed to list demo requests: %v", err)
		return nil, err
	}
	return requests, nil
}

// UpdateAdminNotes replaces the internal notes kept about a user.
func (uc *implUseCase) UpdateAdminNotes(ctx context.Context, sc model.Scope, input admin.UpdateAdminNotesInput) (admin.UserOutput, error) {
	if !sc.IsAdmin() {
		return admin.UserOutput{}, admin.ErrNotAdmin
	}

	user, err := uc.repo.UpdateAdminNotes(ctx, repository.UpdateAdminNotesOptions{
		UserID: input.UserID,
		Notes:  input.Notes,
	})
	if err != nil {
		return admin.UserOutput{}, uc.mapUserErr(ctx, "UpdateAdminNotes", err)
	}
	return admin.UserOutput{User: *user}, nil
}

// ScheduleDemo records the demo time for a user.
func (uc *implUseCase) ScheduleDemo(ctx context.Context, sc model.Scope, input admin.ScheduleDemoInput) (admin.UserOutput, error) {
	if !sc.IsAdmin() {
		return admin.UserOutput{}, admin.ErrNotAdmin
	}

	user, err := uc.repo.SetDemoScheduled(ctx, repository.SetDemoScheduledOptions{
		UserID:      input.UserID,
		ScheduledAt: input.ScheduledAt,
	})
	if err != nil {
		return admin.UserOutput{}, uc.mapUserErr(ctx, "ScheduleDemo", err)
	}
	return admin.UserOutput{User: *user}, nil
}

// CompleteDemo marks the user's demo as held.
func (uc *implUseCase) CompleteDemo(ctx context.Context, sc model.Scope, input admin.CompleteDemoInput) (admin.UserOutput, error) {
	if !sc.IsAdmin() {
		return admin.UserOutput{}, admin.ErrNotAdmin
	}

	user, err := uc.repo.SetDemoCompleted(ctx, input.UserID)
	if err != nil {
		return admin.UserOutput{}, uc.mapUserErr(ctx, "CompleteDemo", err)
	}
	return admin.UserOutput{User: *user}, nil
}

func (uc *implUseCase) mapUserErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return admin.ErrUserNotFound
	}
	uc.l.Errorf(ctx, "admin.usecase.%s: %v", op, err)
	return err
}
