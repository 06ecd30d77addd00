package engine

import (
	"fmt"
	"testing"
	"time"

	"engagement-srv/internal/model"
)

func TestStore(t *testing.T) {
	t.Run("update touches only the matching item", func(t *testing.T) {
		s := NewStore()
		s.SetInteractions(sampleInteractions())

		archived := model.StatusArchived
		ok := s.UpdateInteraction("int-2", Patch{Status: &archived})
		if !ok {
			t.Fatal("expected update to report a hit")
		}

		items := s.Snapshot()
		for _, it := range items {
			switch it.ID {
			case "int-2":
				if it.Status != model.StatusArchived {
					t.Errorf("int-2 status = %s, want archived", it.Status)
				}
			default:
				want := sampleInteractions()
				for _, w := range want {
					if w.ID == it.ID && w.Status != it.Status {
						t.Errorf("item %s changed: %s -> %s", it.ID, w.Status, it.Status)
					}
				}
			}
		}
	})

	t.Run("update of unknown id is a no-op", func(t *testing.T) {
		s := NewStore()
		s.SetInteractions(sampleInteractions())
		high := model.PriorityHigh
		if s.UpdateInteraction("nope", Patch{Priority: &high}) {
			t.Fatal("expected miss for unknown id")
		}
	})

	t.Run("add prepends and caps the feed", func(t *testing.T) {
		s := NewStore()
		items := make([]model.Interaction, MaxFeedSize)
		for i := range items {
			items[i] = model.Interaction{ID: fmt.Sprintf("old-%d", i), CreatedAt: time.Now()}
		}
		s.SetInteractions(items)

		s.AddInteractions([]model.Interaction{{ID: "fresh", CreatedAt: time.Now()}})
		if s.Len() != MaxFeedSize {
			t.Fatalf("feed size = %d, want %d", s.Len(), MaxFeedSize)
		}
		snap := s.Snapshot()
		if snap[0].ID != "fresh" {
			t.Fatalf("expected fresh item first, got %s", snap[0].ID)
		}
		if _, ok := s.Get(fmt.Sprintf("old-%d", MaxFeedSize-1)); ok {
			t.Error("oldest item should have been evicted")
		}
	})

	t.Run("re-delivered ids replace instead of duplicating", func(t *testing.T) {
		s := NewStore()
		s.SetInteractions(sampleInteractions())
		before := s.Len()

		redelivered, _ := s.Get("int-2")
		redelivered.Content = "refreshed"
		s.AddInteractions([]model.Interaction{redelivered})

		if s.Len() != before {
			t.Fatalf("feed size = %d, want %d", s.Len(), before)
		}
		snap := s.Snapshot()
		hits := 0
		for _, it := range snap {
			if it.ID == "int-2" {
				hits++
				if it.Content != "refreshed" {
					t.Errorf("content = %q, want refreshed copy", it.Content)
				}
			}
		}
		if hits != 1 {
			t.Fatalf("int-2 appears %d times, want 1", hits)
		}
		if snap[0].ID != "int-2" {
			t.Errorf("re-delivered item should move to the front, got %s", snap[0].ID)
		}
	})

	t.Run("remove reports how many matched", func(t *testing.T) {
		s := NewStore()
		s.SetInteractions(sampleInteractions())
		n := s.Remove([]string{"int-1", "int-3", "ghost"})
		if n != 2 {
			t.Fatalf("removed = %d, want 2", n)
		}
		if s.Len() != 1 {
			t.Fatalf("remaining = %d, want 1", s.Len())
		}
	})

	t.Run("snapshot is detached from internal state", func(t *testing.T) {
		s := NewStore()
		s.SetInteractions(sampleInteractions())
		snap := s.Snapshot()
		snap[0].Content = "mutated"
		got, _ := s.Get(snap[0].ID)
		if got.Content == "mutated" {
			t.Fatal("snapshot shares backing storage with the store")
		}
	})
}

func TestPatch(t *testing.T) {
	t.Run("tag add is idempotent", func(t *testing.T) {
		it := model.Interaction{ID: "int-1", Tags: []string{"vip"}}
		p := Patch{AddTags: []string{"vip", "follow-up"}}
		it = p.Apply(it)
		it = p.Apply(it)
		if len(it.Tags) != 2 {
			t.Fatalf("tags = %v, want exactly [vip follow-up]", it.Tags)
		}
	})

	t.Run("remove tags", func(t *testing.T) {
		it := model.Interaction{Tags: []string{"a", "b", "c"}}
		it = Patch{RemoveTags: []string{"b"}}.Apply(it)
		if len(it.Tags) != 2 || it.Tags[0] != "a" || it.Tags[1] != "c" {
			t.Fatalf("tags = %v", it.Tags)
		}
	})

	t.Run("nil fields leave values alone", func(t *testing.T) {
		it := model.Interaction{Status: model.StatusResponded, Priority: model.PriorityHigh}
		it = Patch{}.Apply(it)
		if it.Status != model.StatusResponded || it.Priority != model.PriorityHigh {
			t.Fatal("zero patch changed the item")
		}
	})

	t.Run("clearing the assignee", func(t *testing.T) {
		it := model.Interaction{AssignedTo: "casey"}
		cleared := ""
		it = Patch{AssignedTo: &cleared}.Apply(it)
		if it.AssignedTo != "" {
			t.Fatalf("assigned_to = %q, want empty", it.AssignedTo)
		}
	})
}
