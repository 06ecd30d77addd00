// Package navigator implements keyboard-driven movement over the approval
// queue grid. The cursor is an index into the currently visible items;
// column count follows the viewport width.
package navigator

// Viewport breakpoints, in px. Widths below Tablet get one column,
// widths below Desktop get two, anything wider gets three.
const (
	BreakpointTablet  = 768
	BreakpointDesktop = 1280
)

// ColsForWidth maps a viewport width to a grid column count.
func ColsForWidth(width int) int {
	switch {
	case width < BreakpointTablet:
		return 1
	case width < BreakpointDesktop:
		return 2
	default:
		return 3
	}
}

// Navigator tracks the cursor position within the visible approval grid.
// Not safe for concurrent use; a navigator belongs to one session.
type Navigator struct {
	cursor int
	cols   int
	count  int
}

// New creates a navigator for the given viewport width and item count.
func New(width, count int) *Navigator {
	return &Navigator{
		cols:  ColsForWidth(width),
		count: count,
	}
}

// Cursor returns the current cursor index, or -1 when the grid is empty.
func (n *Navigator) Cursor() int {
	if n.count == 0 {
		return -1
	}
	return n.cursor
}

// Cols returns the active column count.
func (n *Navigator) Cols() int {
	return n.cols
}

// SetViewport recomputes the column count from a new viewport width.
// The cursor index is unaffected; it stays on the same item while the
// grid reflows around it.
func (n *Navigator) SetViewport(width int) {
	n.cols = ColsForWidth(width)
}

// SetCount updates the number of visible items and clamps the cursor
// back into range when the list shrank under it.
func (n *Navigator) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	n.clamp()
}

// MoveLeft moves the cursor one item back.
func (n *Navigator) MoveLeft() int {
	n.cursor--
	n.clamp()
	return n.Cursor()
}

// MoveRight moves the cursor one item forward.
func (n *Navigator) MoveRight() int {
	n.cursor++
	n.clamp()
	return n.Cursor()
}

// MoveUp moves the cursor one row up.
func (n *Navigator) MoveUp() int {
	if n.cursor-n.cols >= 0 {
		n.cursor -= n.cols
	}
	return n.Cursor()
}

// MoveDown moves the cursor one row down. The move is ignored when the
// target row has no item at this column.
func (n *Navigator) MoveDown() int {
	if n.cursor+n.cols < n.count {
		n.cursor += n.cols
	}
	return n.Cursor()
}

func (n *Navigator) clamp() {
	if n.cursor >= n.count {
		n.cursor = n.count - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
}
