package navigator

import "testing"

func TestColsForWidth(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{320, 1},
		{767, 1},
		{768, 2},
		{1279, 2},
		{1280, 3},
		{2560, 3},
	}
	for _, tc := range cases {
		if got := ColsForWidth(tc.width); got != tc.want {
			t.Errorf("ColsForWidth(%d) = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestNavigator(t *testing.T) {
	t.Run("row movement uses the column count", func(t *testing.T) {
		n := New(1400, 9) // 3 cols
		n.MoveRight()
		n.MoveRight() // cursor 2
		if got := n.MoveDown(); got != 5 {
			t.Fatalf("cursor = %d after MoveDown, want 5", got)
		}
		if got := n.MoveUp(); got != 2 {
			t.Fatalf("cursor = %d after MoveUp, want 2", got)
		}
	})

	t.Run("horizontal movement clamps at the edges", func(t *testing.T) {
		n := New(1400, 3)
		if got := n.MoveLeft(); got != 0 {
			t.Fatalf("cursor = %d, want 0", got)
		}
		n.MoveRight()
		n.MoveRight()
		if got := n.MoveRight(); got != 2 {
			t.Fatalf("cursor = %d, want clamp at 2", got)
		}
	})

	t.Run("down into a short last row is ignored", func(t *testing.T) {
		n := New(1400, 7) // rows of 3, last row has one item
		n.MoveRight()     // cursor 1
		n.MoveDown()      // 4
		if got := n.MoveDown(); got != 4 {
			t.Fatalf("cursor = %d, want to stay at 4", got)
		}
	})

	t.Run("cursor clamps when the queue shrinks", func(t *testing.T) {
		n := New(1400, 9)
		for i := 0; i < 8; i++ {
			n.MoveRight()
		}
		if n.Cursor() != 8 {
			t.Fatalf("cursor = %d, want 8", n.Cursor())
		}

		n.SetCount(4)
		if got := n.Cursor(); got != 3 {
			t.Fatalf("cursor = %d after shrink, want 3", got)
		}

		n.SetCount(0)
		if got := n.Cursor(); got != -1 {
			t.Fatalf("cursor = %d for empty queue, want -1", got)
		}
	})

	t.Run("viewport change keeps the cursor index", func(t *testing.T) {
		n := New(1400, 9)
		n.MoveRight()
		n.MoveRight()
		n.SetViewport(500) // 1 col now
		if n.Cursor() != 2 {
			t.Fatalf("cursor = %d after reflow, want 2", n.Cursor())
		}
		if n.Cols() != 1 {
			t.Fatalf("cols = %d, want 1", n.Cols())
		}
	})
}

func TestReduce(t *testing.T) {
	snap := Snapshot{
		Cursor:     1,
		VisibleIDs: []string{"ap-1", "ap-2", "ap-3"},
	}

	t.Run("approve targets the cursor item", func(t *testing.T) {
		got := Reduce(Event{Key: "a"}, snap)
		if got.Command != CmdApprove || got.TargetID != "ap-2" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("shift+a targets everything visible", func(t *testing.T) {
		got := Reduce(Event{Key: "A", Shift: true}, snap)
		if got.Command != CmdApproveAllVisible {
			t.Fatalf("command = %s", got.Command)
		}
		if len(got.TargetIDs) != 3 {
			t.Fatalf("targets = %v", got.TargetIDs)
		}
	})

	t.Run("approve and reject act on checked items first", func(t *testing.T) {
		checked := snap
		checked.SelectedIDs = []string{"ap-1", "ap-3"}

		got := Reduce(Event{Key: "a"}, checked)
		if got.Command != CmdApprove {
			t.Fatalf("command = %s", got.Command)
		}
		if got.TargetID != "" || len(got.TargetIDs) != 2 || got.TargetIDs[0] != "ap-1" || got.TargetIDs[1] != "ap-3" {
			t.Fatalf("targets = %+v", got)
		}

		if got := Reduce(Event{Key: "r"}, checked); got.Command != CmdReject || len(got.TargetIDs) != 2 {
			t.Fatalf("r: %+v", got)
		}
	})

	t.Run("edit follows a single checked item", func(t *testing.T) {
		one := snap
		one.SelectedIDs = []string{"ap-3"}
		if got := Reduce(Event{Key: "e"}, one); got.Command != CmdEdit || got.TargetID != "ap-3" {
			t.Fatalf("single selection: %+v", got)
		}

		many := snap
		many.SelectedIDs = []string{"ap-1", "ap-3"}
		if got := Reduce(Event{Key: "e"}, many); got.Command != CmdNone {
			t.Fatalf("multi selection: got %s, want none", got.Command)
		}

		// No selection falls back to the cursor item.
		if got := Reduce(Event{Key: "e"}, snap); got.Command != CmdEdit || got.TargetID != "ap-2" {
			t.Fatalf("cursor fallback: %+v", got)
		}
	})

	t.Run("reject edit toggle help", func(t *testing.T) {
		if got := Reduce(Event{Key: "r"}, snap); got.Command != CmdReject || got.TargetID != "ap-2" {
			t.Fatalf("r: %+v", got)
		}
		if got := Reduce(Event{Key: "E"}, snap); got.Command != CmdEdit {
			t.Fatalf("e: %+v", got)
		}
		if got := Reduce(Event{Key: " "}, snap); got.Command != CmdToggleSelect {
			t.Fatalf("space: %+v", got)
		}
		if got := Reduce(Event{Key: "?"}, snap); got.Command != CmdHelp {
			t.Fatalf("?: %+v", got)
		}
	})

	t.Run("system modifiers suppress", func(t *testing.T) {
		for _, ev := range []Event{
			{Key: "a", Ctrl: true},
			{Key: "a", Alt: true},
			{Key: "a", Meta: true},
		} {
			if got := Reduce(ev, snap); got.Command != CmdNone {
				t.Errorf("event %+v reduced to %s, want none", ev, got.Command)
			}
		}
	})

	t.Run("typing and modal suppress", func(t *testing.T) {
		typing := snap
		typing.Typing = true
		if got := Reduce(Event{Key: "a"}, typing); got.Command != CmdNone {
			t.Errorf("typing: got %s", got.Command)
		}

		modal := snap
		modal.ModalOpen = true
		if got := Reduce(Event{Key: "r"}, modal); got.Command != CmdNone {
			t.Errorf("modal: got %s", got.Command)
		}
	})

	t.Run("stale cursor cannot act", func(t *testing.T) {
		shrunk := Snapshot{Cursor: 5, VisibleIDs: []string{"ap-1"}}
		if got := Reduce(Event{Key: "a"}, shrunk); got.Command != CmdNone {
			t.Fatalf("got %s, want none for out-of-range cursor", got.Command)
		}
	})

	t.Run("shift+a on an empty queue does nothing", func(t *testing.T) {
		if got := Reduce(Event{Key: "a", Shift: true}, Snapshot{}); got.Command != CmdNone {
			t.Fatalf("got %s", got.Command)
		}
	})
}
