package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"engagement-srv/internal/admin/repository"
	"engagement-srv/internal/model"
)

const userColumns = `id, email, full_name, role, workspace_id, admin_notes,
	demo_scheduled_at, demo_completed, created_at`

type userRow struct {
	ID            string         `db:"id"`
	Email         string         `db:"email"`
	FullName      sql.NullString `db:"full_name"`
	Role          string         `db:"role"`
	WorkspaceID   sql.NullString `db:"workspace_id"`
	AdminNotes    sql.NullString `db:"admin_notes"`
	DemoScheduled *time.Time     `db:"demo_scheduled_at"`
	DemoCompleted bool           `db:"demo_completed"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (r userRow) toModel() model.AdminUser {
	return model.AdminUser{
		ID:            r.ID,
		Email:         r.Email,
		FullName:      r.FullName.String,
		Role:          r.Role,
		WorkspaceID:   r.WorkspaceID.String,
		AdminNotes:    r.AdminNotes.String,
		DemoScheduled: r.DemoScheduled,
		DemoCompleted: r.DemoCompleted,
		CreatedAt:     r.CreatedAt,
	}
}

// ListUsers - Paged user list with optional search over email and name.
func (r *implRepository) ListUsers(ctx context.Context, opts repository.ListUsersOptions) ([]model.AdminUser, int64, error) {
	where := "TRUE"
	args := []interface{}{}
	if opts.Search != "" {
		where = "(email ILIKE $1 OR full_name ILIKE $1)"
		args = append(args, "%"+opts.Search+"%")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total,
		fmt.Sprintf("SELECT COUNT(*) FROM users WHERE %s", where), args...); err != nil {
		r.l.Errorf(ctx, "admin.repository.postgre.ListUsers: Failed to count users: %v", err)
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		userColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, opts.Limit, opts.Offset)

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "admin.repository.postgre.ListUsers: Failed to list users: %v", err)
		return nil, 0, err
	}

	users := make([]model.AdminUser, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}
	return users, total, nil
}

// GetUserByID - Get user by primary key.
func (r *implRepository) GetUserByID(ctx context.Context, id string) (*model.AdminUser, error) {
	var row userRow
	err := r.db.GetContext(ctx,
		&row, fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "admin.repository.postgre.GetUserByID: Failed to get user: %v", err)
		return nil, err
	}

	user := row.toModel()
	return &user, nil
}

// CreateUser - Insert a new user; duplicate emails surface as ErrDuplicateEmail.
func (r *implRepository) CreateUser(ctx context.Context, opts repository.CreateUserOptions) (*model.AdminUser, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, email, full_name, role, workspace_id, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6)
		RETURNING %s`, userColumns)

	var row userRow
	err := r.db.GetContext(ctx, &row, query,
		opts.ID, opts.Email, opts.FullName, opts.Role, opts.WorkspaceID, time.Now())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, repository.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "admin.repository.postgre.CreateUser: Failed to insert user: %v", err)
		return nil, repository.ErrUserCreate
	}

	user := row.toModel()
	return &user, nil
}

func (r *implRepository) updateUser(ctx context.Context, set string, args ...interface{}) (*model.AdminUser, error) {
	query := fmt.Sprintf("UPDATE users SET %s RETURNING %s", set, userColumns)

	var row userRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "admin.repository.postgre.updateUser: Failed to update user: %v", err)
		return nil, repository.ErrUserUpdate
	}

	user := row.toModel()
	return &user, nil
}

// UpdateAdminNotes - Replace the admin notes for a user.
func (r *implRepository) UpdateAdminNotes(ctx context.Context, opts repository.UpdateAdminNotesOptions) (*model.AdminUser, error) {
	return r.updateUser(ctx, "admin_notes = NULLIF($1, '') WHERE id = $2", opts.Notes, opts.UserID)
}

// SetDemoScheduled - Record the scheduled demo time.
func (r *implRepository) SetDemoScheduled(ctx context.Context, opts repository.SetDemoScheduledOptions) (*model.AdminUser, error) {
	return r.updateUser(ctx, "demo_scheduled_at = $1 WHERE id = $2", opts.ScheduledAt, opts.UserID)
}

// SetDemoCompleted - Flag the demo as held.
func (r *implRepository) SetDemoCompleted(ctx context.Context, userID string) (*model.AdminUser, error) {
	return r.updateUser(ctx, "demo_completed = TRUE WHERE id = $1", userID)
}

// ListDemoRequests - All demo requests, newest first.
func (r *implRepository) ListDemoRequests(ctx context.Context) ([]model.DemoRequest, error) {
	type demoRow struct {
		ID          string         `db:"id"`
		UserID      sql.NullString `db:"user_id"`
		Email       string         `db:"email"`
		FullName    sql.NullString `db:"full_name"`
		CompanyName sql.NullString `db:"company_name"`
		Status      string         `db:"status"`
		RequestedAt time.Time      `db:"requested_at"`
		ScheduledAt *time.Time     `db:"scheduled_at"`
		CompletedAt *time.Time     `db:"completed_at"`
	}

	var rows []demoRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, email, full_name, company_name, status, requested_at, scheduled_at, completed_at
		FROM demo_requests ORDER BY requested_at DESC`)
	if err != nil {
		r.l.Errorf(ctx, "admin.repository.postgre.ListDemoRequests: Failed to list demo requests: %v", err)
		return nil, err
	}

	requests := make([]model.DemoRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, model.DemoRequest{
			ID:          row.ID,
			UserID:      row.UserID.String,
			Email:       row.Email,
			FullName:    row.FullName.String,
			CompanyName: row.CompanyName.String,
			Status:      row.Status,
			RequestedAt: row.RequestedAt,
			ScheduledAt: row.ScheduledAt,
			CompletedAt: row.CompletedAt,
		})
	}
	return requests, nil
}
