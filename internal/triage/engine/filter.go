package engine

import (
	"strings"

	"engagement-srv/internal/model"
)

// Filter applies the compound filter to items and returns the survivors in
// input order. It never sorts; ordering is SortBy's concern, so filtering
// stays idempotent regardless of what ordering the caller applied upstream.
//
// Pipeline, in order: workspace scope, platforms, sentiment, status,
// free-text search (case-folded over content and author name), date range.
func Filter(items []model.Interaction, fs model.FilterState, workspaceID string) []model.Interaction {
	platforms := make(map[model.Platform]bool, len(fs.Platforms))
	for _, p := range fs.Platforms {
		platforms[p] = true
	}
	search := strings.ToLower(strings.TrimSpace(fs.Search))

	out := make([]model.Interaction, 0, len(items))
	for _, it := range items {
		if workspaceID != "" && it.WorkspaceID != workspaceID {
			continue
		}
		if len(platforms) > 0 && !platforms[it.Platform] {
			continue
		}
		if fs.Sentiment != "" && fs.Sentiment != model.SentimentAll && it.Sentiment != fs.Sentiment {
			continue
		}
		if fs.Status != "" && fs.Status != model.StatusAll && it.Status != fs.Status {
			continue
		}
		if search != "" && !matchesSearch(it, search) {
			continue
		}
		if fs.DateFrom != nil && it.CreatedAt.Before(*fs.DateFrom) {
			continue
		}
		if fs.DateTo != nil && it.CreatedAt.After(*fs.DateTo) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it model.Interaction, loweredSearch string) bool {
	return strings.Contains(strings.ToLower(it.Content), loweredSearch) ||
		strings.Contains(strings.ToLower(it.Author.Name), loweredSearch)
}
