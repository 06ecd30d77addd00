package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"engagement-srv/internal/approval/repository"
	"engagement-srv/internal/model"
)

const approvalColumns = `id, workspace_id, channel_id, response_id, payload,
	priority, status, urgent, created_at, resolved_at`

type approvalRow struct {
	ID          string          `db:"id"`
	WorkspaceID string          `db:"workspace_id"`
	ChannelID   string          `db:"channel_id"`
	ResponseID  string          `db:"response_id"`
	Payload     json.RawMessage `db:"payload"`
	Priority    int             `db:"priority"`
	Status      string          `db:"status"`
	Urgent      bool            `db:"urgent"`
	CreatedAt   time.Time       `db:"created_at"`
	ResolvedAt  *time.Time      `db:"resolved_at"`
}

func (r approvalRow) toModel() (model.ApprovalItem, error) {
	item := model.ApprovalItem{
		ID:          r.ID,
		WorkspaceID: r.WorkspaceID,
		ChannelID:   r.ChannelID,
		ResponseID:  r.ResponseID,
		Priority:    r.Priority,
		Status:      model.ApprovalStatus(r.Status),
		Urgent:      r.Urgent,
		CreatedAt:   r.CreatedAt,
		ResolvedAt:  r.ResolvedAt,
	}
	if err := json.Unmarshal(r.Payload, &item.Payload); err != nil {
		return item, fmt.Errorf("decode approval payload: %w", err)
	}
	return item, nil
}

// ListApprovals - Filtered page (urgent first, then priority, then age)
// plus the total matching count.
func (r *implRepository) ListApprovals(ctx context.Context, opts repository.ListApprovalsOptions) ([]model.ApprovalItem, int64, error) {
	conds := []string{"workspace_id = $1"}
	args := []interface{}{opts.WorkspaceID}

	if opts.Status != "" {
		args = append(args, string(opts.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if opts.Urgent != nil {
		args = append(args, *opts.Urgent)
		conds = append(conds, fmt.Sprintf("urgent = $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := r.db.GetContext(ctx, &total,
		fmt.Sprintf("SELECT COUNT(*) FROM approval_items WHERE %s", where), args...); err != nil {
		r.l.Errorf(ctx, "approval.repository.postgre.ListApprovals: Failed to count items: %v", err)
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM approval_items WHERE %s ORDER BY urgent DESC, priority DESC, created_at ASC LIMIT $%d OFFSET $%d",
		approvalColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, opts.Limit, opts.Offset)

	var rows []approvalRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "approval.repository.postgre.ListApprovals: Failed to list items: %v", err)
		return nil, 0, err
	}

	items := make([]model.ApprovalItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toModel()
		if err != nil {
			r.l.Errorf(ctx, "approval.repository.postgre.ListApprovals: %v", err)
			continue
		}
		items = append(items, item)
	}
	return items, total, nil
}

// GetApprovalByID - Get item by primary key.
func (r *implRepository) GetApprovalByID(ctx context.Context, id string) (*model.ApprovalItem, error) {
	var row approvalRow
	err := r.db.GetContext(ctx,
		&row, fmt.Sprintf("SELECT %s FROM approval_items WHERE id = $1", approvalColumns), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrApprovalNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "approval.repository.postgre.GetApprovalByID: Failed to get item: %v", err)
		return nil, err
	}

	item, err := row.toModel()
	if err != nil {
		r.l.Errorf(ctx, "approval.repository.postgre.GetApprovalByID: %v", err)
		return nil, err
	}
	return &item, nil
}

// CreateApproval - Insert a new pending item.
func (r *implRepository) CreateApproval(ctx context.Context, opts repository.CreateApprovalOptions) (*model.ApprovalItem, error) {
	payload, err := json.Marshal(opts.Payload)
	if err != nil {
		r.l.Errorf(ctx, "approval.repository.postgre.CreateApproval: Failed to marshal payload: %v", err)
		return nil, repository.ErrApprovalCreate
	}

	query := fmt.Sprintf(`
		INSERT INTO approval_items (id, workspace_id, channel_id, response_id, payload, priority, status, urgent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, approvalColumns)

	var row approvalRow
	err = r.db.GetContext(ctx, &row, query,
		opts.ID, opts.WorkspaceID, opts.ChannelID, opts.ResponseID,
		payload, opts.Priority, string(model.ApprovalPending), opts.Urgent, time.Now(),
	)
	if err != nil {
		r.l.Errorf(ctx, "approval.repository.postgre.CreateApproval: Failed to insert item: %v", err)
		return nil, repository.ErrApprovalCreate
	}

	item, err := row.toModel()
	if err != nil {
		return nil, repository.ErrApprovalCreate
	}
	return &item, nil
}

// ResolvePending - Terminal transition guarded at the database: only a row
// still in pending can move, so two racing resolutions cannot both win.
func (r *implRepository) ResolvePending(ctx context.Context, opts repository.ResolvePendingOptions) (*model.ApprovalItem, error) {
	query := fmt.Sprintf(`
		UPDATE approval_items
		SET status = $1, resolved_at = $2
		WHERE id = $3 AND workspace_id = $4 AND status = $5
		RETURNING %s`, approvalColumns)

	var row approvalRow
	err := r.db.GetContext(ctx, &row, query,
		string(opts.Status), time.Now(), opts.ApprovalID, opts.WorkspaceID, string(model.ApprovalPending),
	)
	if errors.Is(err, sql.ErrNoRows) {
		// Either absent or already terminal; let the caller distinguish.
		if _, getErr := r.GetApprovalByID(ctx, opts.ApprovalID); getErr != nil {
			return nil, repository.ErrApprovalNotFound
		}
		return nil, repository.ErrNotPending
	}
	if err != nil {
		r.l.Errorf(ctx, "approval.repository.postgre.ResolvePending: Failed to resolve item: %v", err)
		return nil, repository.ErrApprovalUpdate
	}

	item, err := row.toModel()
	if err != nil {
		return nil, repository.ErrApprovalUpdate
	}
	return &item, nil
}

// UpdateResponseText - Edit the drafted reply while the item is pending.
func (r *implRepository) UpdateResponseText(ctx context.Context, opts repository.UpdateResponseTextOptions) (*model.ApprovalItem, error) {
	query := fmt.Sprintf(`
		UPDATE approval_items
		SET payload = jsonb_set(payload, '{reply,response_text}', to_jsonb($1::text))
		WHERE id = $2 AND workspace_id = $3 AND status = $4
		RETURNING %s`, approvalColumns)

	var row approvalRow
	err := r.db.GetContext(ctx, &row, query,
		opts.ResponseText, opts.ApprovalID, opts.WorkspaceID, string(model.ApprovalPending),
	)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetApprovalByID(ctx, opts.ApprovalID); getErr != nil {
			return nil, repository.ErrApprovalNotFound
		}
		return nil, repository.ErrNotPending
	}
	if err != nil {
		r.l.Errorf(ctx, "approval.repository.postgre.UpdateResponseText: Failed to update item: %v", err)
		return nil, repository.ErrApprovalUpdate
	}

	item, err := row.toModel()
	if err != nil {
		return nil, repository.ErrApprovalUpdate
	}
	return &item, nil
}
