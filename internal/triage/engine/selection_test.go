package engine

import "testing"

func TestSelection(t *testing.T) {
	t.Run("toggle twice returns to the starting set", func(t *testing.T) {
		sel := NewSelection()
		sel.Set([]string{"a", "b"})

		sel.Toggle("c")
		sel.Toggle("c")
		if sel.Len() != 2 || sel.Contains("c") {
			t.Fatalf("toggle not symmetric: %v", sel.IDs())
		}

		sel.Toggle("a")
		sel.Toggle("a")
		if !sel.Contains("a") {
			t.Fatal("double-toggle dropped a previously selected id")
		}
	})

	t.Run("clear empties the set", func(t *testing.T) {
		sel := NewSelection()
		sel.Set([]string{"a", "b", "c"})
		sel.Clear()
		if sel.Len() != 0 {
			t.Fatalf("len = %d after clear", sel.Len())
		}
	})

	t.Run("ids survive items leaving the feed", func(t *testing.T) {
		// The set is independent of the store; selections for evicted
		// items stay until acted on or cleared.
		sel := NewSelection()
		sel.Toggle("gone-1")
		if !sel.Contains("gone-1") {
			t.Fatal("selection dropped an id it was never told to drop")
		}
	})
}
