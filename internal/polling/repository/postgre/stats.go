package postgre

import (
	"context"

	"engagement-srv/internal/model"
)

// CountByStatus - Per-status interaction counts for a workspace.
func (r *implRepository) CountByStatus(ctx context.Context, workspaceID string) (map[model.InteractionStatus]int64, error) {
	rows, err := r.db.QueryxContext(ctx,
		"SELECT status, COUNT(*) AS total FROM interactions WHERE workspace_id = $1 GROUP BY status",
		workspaceID,
	)
	if err != nil {
		r.l.Errorf(ctx, "polling.repository.postgre.CountByStatus: Failed to count by status: %v", err)
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.InteractionStatus]int64)
	for rows.Next() {
		var status string
		var total int64
		if err := rows.Scan(&status, &total); err != nil {
			r.l.Errorf(ctx, "polling.repository.postgre.CountByStatus: Failed to scan count row: %v", err)
			return nil, err
		}
		counts[model.InteractionStatus(status)] = total
	}
	return counts, rows.Err()
}
