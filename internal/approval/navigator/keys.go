package navigator

import "strings"

// Command is the outcome of reducing one key event.
type Command string

const (
	CmdNone              Command = ""
	CmdApprove           Command = "approve"
	CmdApproveAllVisible Command = "approve_all_visible"
	CmdReject            Command = "reject"
	CmdEdit              Command = "edit"
	CmdToggleSelect      Command = "toggle_select"
	CmdHelp              Command = "help"
	CmdMoveLeft          Command = "move_left"
	CmdMoveRight         Command = "move_right"
	CmdMoveUp            Command = "move_up"
	CmdMoveDown          Command = "move_down"
)

// Event is one raw key event.
type Event struct {
	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// Snapshot is the queue state captured at dispatch time. Reduce works only
// on this snapshot, never on state captured when the handler was bound, so
// a stale closure cannot act on items that already left the queue.
type Snapshot struct {
	Cursor      int
	VisibleIDs  []string
	SelectedIDs []string
	Typing      bool
	ModalOpen   bool
}

// Action is a resolved command with its target item ids.
type Action struct {
	Command   Command
	TargetID  string
	TargetIDs []string
}

// Reduce maps a key event to an action against the snapshot. Events with a
// system modifier held, events while typing in an input, and events while a
// modal is open all reduce to CmdNone.
func Reduce(ev Event, snap Snapshot) Action {
	if ev.Ctrl || ev.Alt || ev.Meta {
		return Action{Command: CmdNone}
	}
	if snap.Typing || snap.ModalOpen {
		return Action{Command: CmdNone}
	}

	switch strings.ToLower(ev.Key) {
	case "a":
		if ev.Shift {
			if len(snap.VisibleIDs) == 0 {
				return Action{Command: CmdNone}
			}
			ids := append([]string(nil), snap.VisibleIDs...)
			return Action{Command: CmdApproveAllVisible, TargetIDs: ids}
		}
		return selectedOrCursor(CmdApprove, snap)
	case "r":
		return selectedOrCursor(CmdReject, snap)
	case "e":
		// Edit is single-item only: the one checked item, or the cursor
		// item when nothing is checked.
		if len(snap.SelectedIDs) == 1 {
			return Action{Command: CmdEdit, TargetID: snap.SelectedIDs[0]}
		}
		if len(snap.SelectedIDs) > 1 {
			return Action{Command: CmdNone}
		}
		return targeted(CmdEdit, snap)
	case " ", "space":
		return targeted(CmdToggleSelect, snap)
	case "?":
		return Action{Command: CmdHelp}
	case "arrowleft":
		return Action{Command: CmdMoveLeft}
	case "arrowright":
		return Action{Command: CmdMoveRight}
	case "arrowup":
		return Action{Command: CmdMoveUp}
	case "arrowdown":
		return Action{Command: CmdMoveDown}
	default:
		return Action{Command: CmdNone}
	}
}

// selectedOrCursor resolves checked items when any exist, otherwise the
// cursor item.
func selectedOrCursor(cmd Command, snap Snapshot) Action {
	if len(snap.SelectedIDs) > 0 {
		ids := append([]string(nil), snap.SelectedIDs...)
		return Action{Command: cmd, TargetIDs: ids}
	}
	return targeted(cmd, snap)
}

// targeted resolves the cursor against the snapshot. A cursor outside the
// visible list yields CmdNone rather than a misdirected action.
func targeted(cmd Command, snap Snapshot) Action {
	if snap.Cursor < 0 || snap.Cursor >= len(snap.VisibleIDs) {
		return Action{Command: CmdNone}
	}
	return Action{Command: cmd, TargetID: snap.VisibleIDs[snap.Cursor]}
}
