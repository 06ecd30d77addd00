package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"engagement-srv/internal/admin"
	"engagement-srv/internal/admin/repository"
	"engagement-srv/internal/model"
	"engagement-srv/pkg/log"
)

type fakeUserRepo struct {
	users    map[string]model.AdminUser
	requests []model.DemoRequest
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.AdminUser)}
}

func (f *fakeUserRepo) ListUsers(_ context.Context, opts repository.ListUsersOptions) ([]model.AdminUser, int64, error) {
	var out []model.AdminUser
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*model.AdminUser, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, opts repository.CreateUserOptions) (*model.AdminUser, error) {
	for _, u := range f.users {
		if u.Email == opts.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	u := model.AdminUser{
		ID:          opts.ID,
		Email:       opts.Email,
		FullName:    opts.FullName,
		Role:        opts.Role,
		WorkspaceID: opts.WorkspaceID,
		CreatedAt:   time.Now(),
	}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) UpdateAdminNotes(_ context.Context, opts repository.UpdateAdminNotesOptions) (*model.AdminUser, error) {
	u, ok := f.users[opts.UserID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.AdminNotes = opts.Notes
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) SetDemoScheduled(_ context.Context, opts repository.SetDemoScheduledOptions) (*model.AdminUser, error) {
	u, ok := f.users[opts.UserID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	at := opts.ScheduledAt
	u.DemoScheduled = &at
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) SetDemoCompleted(_ context.Context, userID string) (*model.AdminUser, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.DemoCompleted = true
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) ListDemoRequests(_ context.Context) ([]model.DemoRequest, error) {
	return f.requests, nil
}

func newTestUseCase(repo repository.PostgresRepository) admin.UseCase {
	l := log.Init(log.ZapConfig{Level: "fatal"})
	return New(repo, l)
}

func adminScope() model.Scope {
	return model.Scope{UserID: "u-admin", Role: "admin"}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with the default role", func(t *testing.T) {
		uc := newTestUseCase(newFakeUserRepo())

		o, err := uc.CreateUser(ctx, adminScope(), admin.CreateUserInput{Email: "casey@example.com"})
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if o.User.ID == "" {
			t.Error("expected a generated user id")
		}
		if o.User.Role != "member" {
			t.Errorf("role = %q, want member", o.User.Role)
		}
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		uc := newTestUseCase(newFakeUserRepo())

		_, err := uc.CreateUser(ctx, adminScope(), admin.CreateUserInput{})
		if !errors.Is(err, admin.ErrEmailRequired) {
			t.Fatalf("err = %v, want ErrEmailRequired", err)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		uc := newTestUseCase(newFakeUserRepo())

		if _, err := uc.CreateUser(ctx, adminScope(), admin.CreateUserInput{Email: "casey@example.com"}); err != nil {
			t.Fatalf("first CreateUser: %v", err)
		}
		_, err := uc.CreateUser(ctx, adminScope(), admin.CreateUserInput{Email: "casey@example.com"})
		if !errors.Is(err, admin.ErrDuplicateEmail) {
			t.Fatalf("err = %v, want ErrDuplicateEmail", err)
		}
	})

	t.Run("requires the admin role", func(t *testing.T) {
		uc := newTestUseCase(newFakeUserRepo())

		member := model.Scope{UserID: "u-1", Role: "member"}
		_, err := uc.CreateUser(ctx, member, admin.CreateUserInput{Email: "casey@example.com"})
		if !errors.Is(err, admin.ErrNotAdmin) {
			t.Fatalf("err = %v, want ErrNotAdmin", err)
		}
	})
}

func TestDemoPipeline(t *testing.T) {
	ctx := context.Background()

	t.Run("schedules then completes a demo", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newTestUseCase(repo)

		created, err := uc.CreateUser(ctx, adminScope(), admin.CreateUserInput{Email: "casey@example.com"})
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}

		at := time.Date(2026, 9, 3, 15, 0, 0, 0, time.UTC)
		scheduled, err := uc.ScheduleDemo(ctx, adminScope(), admin.ScheduleDemoInput{
			UserID:      created.User.ID,
			ScheduledAt: at,
		})
		if err != nil {
			t.Fatalf("ScheduleDemo: %v", err)
		}
		if scheduled.User.DemoScheduled == nil || !scheduled.User.DemoScheduled.Equal(at) {
			t.Errorf("DemoScheduled = %v, want %v", scheduled.User.DemoScheduled, at)
		}

		completed, err := uc.CompleteDemo(ctx, adminScope(), admin.CompleteDemoInput{UserID: created.User.ID})
		if err != nil {
			t.Fatalf("CompleteDemo: %v", err)
		}
		if !completed.User.DemoCompleted {
			t.Error("expected DemoCompleted to be true")
		}
	})

	t.Run("maps an unknown user to a domain error", func(t *testing.T) {
		uc := newTestUseCase(newFakeUserRepo())

		_, err := uc.CompleteDemo(ctx, adminScope(), admin.CompleteDemoInput{UserID: "ghost"})
		if !errors.Is(err, admin.ErrUserNotFound) {
			t.Fatalf("err = %v, want ErrUserNotFound", err)
		}
	})
}

func TestUpdateAdminNotes(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	created, err := uc.CreateUser(ctx, adminScope(), admin.CreateUserInput{Email: "casey@example.com"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	o, err := uc.UpdateAdminNotes(ctx, adminScope(), admin.UpdateAdminNotesInput{
		UserID: created.User.ID,
		Notes:  "interested in the agency plan",
	})
	if err != nil {
		t.Fatalf("UpdateAdminNotes: %v", err)
	}
	if o.User.AdminNotes != "interested in the agency plan" {
		t.Errorf("AdminNotes = %q", o.User.AdminNotes)
	}
}
