package postgre

import (
	"fmt"
	"strings"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage/repository"
)

const interactionColumns = `id, workspace_id, external_id, platform, kind, content,
	author_name, author_avatar_url, author_followers, created_at,
	sentiment, status, priority, tags, assigned_to, rating, reply_count, updated_at`

// buildListWhere translates list options to a WHERE clause. Stages mirror the
// in-memory filter pipeline so a database-backed page and a cached page agree.
func buildListWhere(opts repository.ListInteractionsOptions) (string, []interface{}) {
	conds := []string{"workspace_id = $1"}
	args := []interface{}{opts.WorkspaceID}

	next := func() int { return len(args) + 1 }

	if len(opts.Platforms) > 0 {
		placeholders := make([]string, 0, len(opts.Platforms))
		for _, p := range opts.Platforms {
			placeholders = append(placeholders, fmt.Sprintf("$%d", next()))
			args = append(args, string(p))
		}
		conds = append(conds, fmt.Sprintf("platform IN (%s)", strings.Join(placeholders, ", ")))
	}

	if opts.Sentiment != "" && opts.Sentiment != model.SentimentAll {
		conds = append(conds, fmt.Sprintf("sentiment = $%d", next()))
		args = append(args, string(opts.Sentiment))
	}

	if opts.Status != "" && opts.Status != model.StatusAll {
		conds = append(conds, fmt.Sprintf("status = $%d", next()))
		args = append(args, string(opts.Status))
	}

	if opts.Search != "" {
		cond := fmt.Sprintf("(content ILIKE $%d OR author_name ILIKE $%d)", next(), next()+1)
		conds = append(conds, cond)
		pattern := "%" + opts.Search + "%"
		args = append(args, pattern, pattern)
	}

	if opts.DateFrom != nil {
		conds = append(conds, fmt.Sprintf("created_at >= $%d", next()))
		args = append(args, *opts.DateFrom)
	}
	if opts.DateTo != nil {
		conds = append(conds, fmt.Sprintf("created_at <= $%d", next()))
		args = append(args, *opts.DateTo)
	}

	return strings.Join(conds, " AND "), args
}

func buildListOrder(sort model.SortOrder) string {
	switch sort {
	case model.SortOldest:
		return "created_at ASC"
	case model.SortPriority:
		return "CASE priority WHEN 'high' THEN 0 ELSE 1 END, created_at DESC"
	case model.SortEngagement:
		return "author_followers + reply_count * 100 DESC"
	default:
		return "created_at DESC"
	}
}
