package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage/repository"
)

// ListInteractions - Filtered, sorted page plus the total matching count.
func (r *implRepository) ListInteractions(ctx context.Context, opts repository.ListInteractionsOptions) ([]model.Interaction, int64, error) {
	where, args := buildListWhere(opts)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM interactions WHERE %s", where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.ListInteractions: Failed to count interactions: %v", err)
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM interactions WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		interactionColumns, where, buildListOrder(opts.Sort), len(args)+1, len(args)+2,
	)
	args = append(args, opts.Limit, opts.Offset)

	var rows []interactionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.ListInteractions: Failed to list interactions: %v", err)
		return nil, 0, err
	}

	items := make([]model.Interaction, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, total, nil
}

// GetInteractionByID - Get interaction by primary key.
func (r *implRepository) GetInteractionByID(ctx context.Context, id string) (*model.Interaction, error) {
	query := fmt.Sprintf("SELECT %s FROM interactions WHERE id = $1", interactionColumns)

	var row interactionRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrInteractionNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.GetInteractionByID: Failed to get interaction: %v", err)
		return nil, err
	}

	it := row.toModel()
	return &it, nil
}

// UpdateInteraction - Apply the non-nil fields and return the updated row.
func (r *implRepository) UpdateInteraction(ctx context.Context, opts repository.UpdateInteractionOptions) (*model.Interaction, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	add := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if opts.Status != nil {
		add("status", string(*opts.Status))
	}
	if opts.Sentiment != nil {
		add("sentiment", string(*opts.Sentiment))
	}
	if opts.Priority != nil {
		add("priority", string(*opts.Priority))
	}
	if opts.AssignedTo != nil {
		if *opts.AssignedTo == "" {
			sets = append(sets, "assigned_to = NULL")
		} else {
			add("assigned_to", *opts.AssignedTo)
		}
	}
	if opts.Tags != nil {
		add("tags", pq.StringArray(opts.Tags))
	}

	args = append(args, opts.ID)
	query := fmt.Sprintf(
		"UPDATE interactions SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), interactionColumns,
	)

	var row interactionRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrInteractionNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.UpdateInteraction: Failed to update interaction: %v", err)
		return nil, repository.ErrInteractionUpdate
	}

	it := row.toModel()
	return &it, nil
}

// BulkUpdate - One statement over the id set; unknown ids simply do not match.
func (r *implRepository) BulkUpdate(ctx context.Context, opts repository.BulkUpdateOptions) (int64, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	add := func(clause string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf(clause, len(args)))
	}

	if opts.Status != nil {
		add("status = $%d", string(*opts.Status))
	}
	if opts.AssignedTo != nil {
		add("assigned_to = $%d", *opts.AssignedTo)
	}
	if opts.AddTag != "" {
		// array_append guarded by a membership check keeps the add idempotent.
		args = append(args, opts.AddTag, opts.AddTag)
		sets = append(sets, fmt.Sprintf(
			"tags = CASE WHEN $%d = ANY(tags) THEN tags ELSE array_append(tags, $%d) END",
			len(args)-1, len(args),
		))
	}

	args = append(args, opts.WorkspaceID, pq.StringArray(opts.IDs))
	query := fmt.Sprintf(
		"UPDATE interactions SET %s WHERE workspace_id = $%d AND id = ANY($%d)",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)
	if opts.FromStatus != nil {
		args = append(args, string(*opts.FromStatus))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.BulkUpdate: Failed to bulk update: %v", err)
		return 0, repository.ErrInteractionUpdate
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.BulkUpdate: Failed to read rows affected: %v", err)
		return 0, repository.ErrInteractionUpdate
	}
	return affected, nil
}

// BulkDelete - Delete the id set within the workspace, reporting matches.
func (r *implRepository) BulkDelete(ctx context.Context, workspaceID string, ids []string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM interactions WHERE workspace_id = $1 AND id = ANY($2)",
		workspaceID, pq.StringArray(ids),
	)
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.BulkDelete: Failed to bulk delete: %v", err)
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.BulkDelete: Failed to read rows affected: %v", err)
		return 0, err
	}
	return affected, nil
}

// UpsertInteraction - Insert or refresh by (platform, external_id). The bool
// reports whether a new row was created.
func (r *implRepository) UpsertInteraction(ctx context.Context, opts repository.UpsertInteractionOptions) (*model.Interaction, bool, error) {
	row := newInteractionRow(opts.Interaction)

	query := fmt.Sprintf(`
		INSERT INTO interactions (%s)
		VALUES (:id, :workspace_id, :external_id, :platform, :kind, :content,
			:author_name, :author_avatar_url, :author_followers, :created_at,
			:sentiment, :status, :priority, :tags, :assigned_to, :rating, :reply_count, :updated_at)
		ON CONFLICT (platform, external_id) DO UPDATE SET
			content = EXCLUDED.content,
			author_name = EXCLUDED.author_name,
			author_avatar_url = EXCLUDED.author_avatar_url,
			author_followers = EXCLUDED.author_followers,
			sentiment = EXCLUDED.sentiment,
			rating = EXCLUDED.rating,
			reply_count = EXCLUDED.reply_count,
			updated_at = EXCLUDED.updated_at
		RETURNING %s, (xmax = 0) AS inserted`, interactionColumns, interactionColumns)

	rows, err := r.db.NamedQueryContext(ctx, query, row)
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.UpsertInteraction: Failed to upsert interaction: %v", err)
		return nil, false, repository.ErrInteractionUpsert
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, false, repository.ErrInteractionUpsert
	}

	var out struct {
		interactionRow
		Inserted bool `db:"inserted"`
	}
	if err := rows.StructScan(&out); err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.UpsertInteraction: Failed to scan upsert result: %v", err)
		return nil, false, repository.ErrInteractionUpsert
	}

	it := out.toModel()
	return &it, out.Inserted, nil
}

// CountByStatus - Per-status counts for a workspace.
func (r *implRepository) CountByStatus(ctx context.Context, workspaceID string) (map[model.InteractionStatus]int64, error) {
	rows, err := r.db.QueryxContext(ctx,
		"SELECT status, COUNT(*) AS total FROM interactions WHERE workspace_id = $1 GROUP BY status",
		workspaceID,
	)
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.postgre.CountByStatus: Failed to count by status: %v", err)
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.InteractionStatus]int64)
	for rows.Next() {
		var status string
		var total int64
		if err := rows.Scan(&status, &total); err != nil {
			r.l.Errorf(ctx, "triage.repository.postgre.CountByStatus: Failed to scan count row: %v", err)
			return nil, err
		}
		counts[model.InteractionStatus(status)] = total
	}
	return counts, rows.Err()
}
