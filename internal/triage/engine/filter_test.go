package engine

import (
	"testing"
	"time"

	"engagement-srv/internal/model"
)

func sampleInteractions() []model.Interaction {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []model.Interaction{
		{
			ID:          "int-1",
			WorkspaceID: "ws-1",
			Platform:    model.PlatformYouTube,
			Kind:        model.KindComment,
			Content:     "Loved the new video, great editing!",
			Author:      model.Author{Name: "Alex Rivera", Followers: 1200},
			CreatedAt:   base,
			Sentiment:   model.SentimentPositive,
			Status:      model.StatusUnread,
			Priority:    model.PriorityNormal,
		},
		{
			ID:          "int-2",
			WorkspaceID: "ws-1",
			Platform:    model.PlatformGoogle,
			Kind:        model.KindReview,
			Content:     "Service was slow, disappointed.",
			Author:      model.Author{Name: "Morgan Lee", Followers: 40},
			CreatedAt:   base.Add(-time.Hour),
			Sentiment:   model.SentimentNegative,
			Status:      model.StatusNeedsResponse,
			Priority:    model.PriorityHigh,
		},
		{
			ID:          "int-3",
			WorkspaceID: "ws-2",
			Platform:    model.PlatformInstagram,
			Kind:        model.KindMention,
			Content:     "Shoutout to this brand",
			Author:      model.Author{Name: "Sam Chen", Followers: 98000},
			CreatedAt:   base.Add(-2 * time.Hour),
			Sentiment:   model.SentimentNeutral,
			Status:      model.StatusResponded,
			Priority:    model.PriorityNormal,
		},
	}
}

func idsOf(items []model.Interaction) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	items := sampleInteractions()

	t.Run("zero filter passes everything in order", func(t *testing.T) {
		got := Filter(items, model.FilterState{}, "")
		if len(got) != len(items) {
			t.Fatalf("expected %d items, got %d", len(items), len(got))
		}
		for i := range got {
			if got[i].ID != items[i].ID {
				t.Errorf("order changed at %d: got %s, want %s", i, got[i].ID, items[i].ID)
			}
		}
	})

	t.Run("workspace scope", func(t *testing.T) {
		got := Filter(items, model.FilterState{}, "ws-1")
		if len(got) != 2 {
			t.Fatalf("expected 2 items, got %d: %v", len(got), idsOf(got))
		}
		for _, it := range got {
			if it.WorkspaceID != "ws-1" {
				t.Errorf("item %s escaped workspace scope", it.ID)
			}
		}
	})

	t.Run("platform filter keeps only members", func(t *testing.T) {
		fs := model.FilterState{Platforms: []model.Platform{model.PlatformYouTube}}
		got := Filter(items, fs, "")
		if len(got) != 1 || got[0].ID != "int-1" {
			t.Fatalf("expected only int-1, got %v", idsOf(got))
		}
	})

	t.Run("sentiment and status", func(t *testing.T) {
		fs := model.FilterState{
			Sentiment: model.SentimentNegative,
			Status:    model.StatusNeedsResponse,
		}
		got := Filter(items, fs, "")
		if len(got) != 1 || got[0].ID != "int-2" {
			t.Fatalf("expected only int-2, got %v", idsOf(got))
		}
	})

	t.Run("all sentinels disable their stage", func(t *testing.T) {
		fs := model.FilterState{Sentiment: model.SentimentAll, Status: model.StatusAll}
		got := Filter(items, fs, "")
		if len(got) != len(items) {
			t.Fatalf("expected %d items, got %d", len(items), len(got))
		}
	})

	t.Run("search is case-insensitive over content and author", func(t *testing.T) {
		got := Filter(items, model.FilterState{Search: "alex"}, "")
		if len(got) != 1 || got[0].ID != "int-1" {
			t.Fatalf("expected author match for int-1, got %v", idsOf(got))
		}

		got = Filter(items, model.FilterState{Search: "SLOW"}, "")
		if len(got) != 1 || got[0].ID != "int-2" {
			t.Fatalf("expected content match for int-2, got %v", idsOf(got))
		}
	})

	t.Run("date range bounds", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
		got := Filter(items, model.FilterState{DateFrom: &from}, "")
		if len(got) != 2 {
			t.Fatalf("expected 2 items at or after %v, got %v", from, idsOf(got))
		}
	})

	t.Run("idempotent for any filter state", func(t *testing.T) {
		states := []model.FilterState{
			{},
			{Platforms: []model.Platform{model.PlatformGoogle, model.PlatformInstagram}},
			{Sentiment: model.SentimentPositive},
			{Search: "brand"},
		}
		for _, fs := range states {
			once := Filter(items, fs, "")
			twice := Filter(once, fs, "")
			if len(once) != len(twice) {
				t.Fatalf("filter not idempotent for %+v: %d vs %d", fs, len(once), len(twice))
			}
			for i := range once {
				if once[i].ID != twice[i].ID {
					t.Fatalf("filter not idempotent for %+v at index %d", fs, i)
				}
			}
		}
	})

	t.Run("idempotent regardless of upstream sort", func(t *testing.T) {
		fs := model.FilterState{Sentiment: model.SentimentAll}
		sorted := SortBy(items, model.SortOldest)
		once := Filter(sorted, fs, "")
		twice := Filter(once, fs, "")
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Fatalf("re-filtering after sort changed order at %d", i)
			}
		}
	})
}

func TestSortBy(t *testing.T) {
	items := sampleInteractions()

	t.Run("newest first by default", func(t *testing.T) {
		got := SortBy(items, model.SortNewest)
		if got[0].ID != "int-1" || got[2].ID != "int-3" {
			t.Fatalf("unexpected newest order: %v", idsOf(got))
		}
	})

	t.Run("priority puts high first", func(t *testing.T) {
		got := SortBy(items, model.SortPriority)
		if got[0].ID != "int-2" {
			t.Fatalf("expected high-priority int-2 first, got %v", idsOf(got))
		}
	})

	t.Run("engagement orders by reach", func(t *testing.T) {
		got := SortBy(items, model.SortEngagement)
		if got[0].ID != "int-3" {
			t.Fatalf("expected int-3 (98k followers) first, got %v", idsOf(got))
		}
	})

	t.Run("input slice is untouched", func(t *testing.T) {
		before := idsOf(items)
		_ = SortBy(items, model.SortOldest)
		after := idsOf(items)
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("input mutated at %d", i)
			}
		}
	})
}
