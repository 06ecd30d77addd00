package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"engagement-srv/internal/export/repository"
	"engagement-srv/internal/model"
)

type exportRow struct {
	ID            string         `db:"id"`
	WorkspaceID   string         `db:"workspace_id"`
	UserID        string         `db:"user_id"`
	Status        string         `db:"status"`
	ObjectKey     string         `db:"object_key"`
	FileSizeBytes int64          `db:"file_size_bytes"`
	RowCount      int            `db:"row_count"`
	ErrorMessage  sql.NullString `db:"error_message"`
	CreatedAt     time.Time      `db:"created_at"`
	CompletedAt   *time.Time     `db:"completed_at"`
}

func (r exportRow) toModel() model.Export {
	return model.Export{
		ID:            r.ID,
		WorkspaceID:   r.WorkspaceID,
		UserID:        r.UserID,
		Status:        model.ExportStatus(r.Status),
		ObjectKey:     r.ObjectKey,
		FileSizeBytes: r.FileSizeBytes,
		RowCount:      r.RowCount,
		ErrorMessage:  r.ErrorMessage.String,
		CreatedAt:     r.CreatedAt,
		CompletedAt:   r.CompletedAt,
	}
}

const exportColumns = `id, workspace_id, user_id, status, object_key, file_size_bytes, row_count, error_message, created_at, completed_at`

func (r *implRepository) CreateExport(ctx context.Context, opts repository.CreateExportOptions) (*model.Export, error) {
	query := `
		INSERT INTO exports (id, workspace_id, user_id, status, object_key, created_at)
		VALUES ($1, $2, $3, 'processing', $4, NOW())
		RETURNING ` + exportColumns

	var row exportRow
	if err := r.db.GetContext(ctx, &row, query, opts.ID, opts.WorkspaceID, opts.UserID, opts.ObjectKey); err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.CreateExport: Failed to insert export: %v", err)
		return nil, err
	}

	export := row.toModel()
	return &export, nil
}

func (r *implRepository) GetExportByID(ctx context.Context, workspaceID, id string) (*model.Export, error) {
	query := `SELECT ` + exportColumns + ` FROM exports WHERE id = $1 AND workspace_id = $2`

	var row exportRow
	err := r.db.GetContext(ctx, &row, query, id, workspaceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrExportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.GetExportByID: Failed to query export: %v", err)
		return nil, err
	}

	export := row.toModel()
	return &export, nil
}

func (r *implRepository) MarkCompleted(ctx context.Context, opts repository.MarkCompletedOptions) error {
	query := `
		UPDATE exports
		SET status = 'completed', file_size_bytes = $2, row_count = $3, completed_at = NOW()
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, opts.ID, opts.FileSizeBytes, opts.RowCount); err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.MarkCompleted: Failed to update export: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) MarkFailed(ctx context.Context, id, errorMessage string) error {
	query := `
		UPDATE exports
		SET status = 'failed', error_message = $2, completed_at = NOW()
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, errorMessage); err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.MarkFailed: Failed to update export: %v", err)
		return err
	}
	return nil
}
