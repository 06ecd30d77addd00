package engine

import (
	"sort"

	"engagement-srv/internal/model"
)

// SortBy returns a new slice ordered by the given order. The input slice is
// not modified. Sorting is stable so equal elements keep their relative
// order, and it is deliberately separate from Filter.
func SortBy(items []model.Interaction, order model.SortOrder) []model.Interaction {
	out := append([]model.Interaction(nil), items...)

	switch order {
	case model.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case model.SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Priority != out[j].Priority {
				return out[i].Priority == model.PriorityHigh
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case model.SortEngagement:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EngagementScore() > out[j].EngagementScore()
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
