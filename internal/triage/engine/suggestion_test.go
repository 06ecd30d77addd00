package engine

import "testing"

func TestSuggestionCache(t *testing.T) {
	t.Run("history preserves append order", func(t *testing.T) {
		c := NewSuggestionCache()
		c.Append("int-1", "first draft")
		c.Append("int-1", "second draft")
		c.Append("int-1", "third draft")

		got := c.History("int-1")
		want := []string{"first draft", "second draft", "third draft"}
		if len(got) != len(want) {
			t.Fatalf("history length = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("history[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("latest returns the newest entry", func(t *testing.T) {
		c := NewSuggestionCache()
		if _, ok := c.Latest("int-9"); ok {
			t.Fatal("expected no latest for an empty history")
		}
		c.Append("int-9", "a")
		c.Append("int-9", "b")
		latest, ok := c.Latest("int-9")
		if !ok || latest != "b" {
			t.Fatalf("latest = %q, ok = %v", latest, ok)
		}
	})

	t.Run("histories are isolated per interaction", func(t *testing.T) {
		c := NewSuggestionCache()
		c.Append("x", "for x")
		if got := c.History("y"); len(got) != 0 {
			t.Fatalf("unexpected history for y: %v", got)
		}
	})

	t.Run("history copy is detached", func(t *testing.T) {
		c := NewSuggestionCache()
		c.Append("x", "original")
		h := c.History("x")
		h[0] = "mutated"
		if got := c.History("x"); got[0] != "original" {
			t.Fatal("history shares backing storage with the cache")
		}
	})
}
