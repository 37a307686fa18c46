package status

// NoCursor is the cursor value when the snapshot is empty.
const NoCursor = -1

// Navigation is the cursor state machine over one snapshot. It is the single
// source of truth for what is selected during a session. All transitions are
// pure, total, and clamp at the list edges; nothing wraps around.
//
// Invariants: the cursor is NoCursor exactly when the snapshot is empty,
// otherwise 0 <= cursor < len(snapshot).
type Navigation struct {
	entries Snapshot
	cursor  int
}

// NewNavigation creates navigation state positioned at the first entry, or
// with no cursor when the snapshot is empty.
func NewNavigation(entries Snapshot) Navigation {
	if len(entries) == 0 {
		return Navigation{cursor: NoCursor}
	}
	return Navigation{entries: entries, cursor: 0}
}

// Entries returns the snapshot being navigated.
func (n Navigation) Entries() Snapshot { return n.entries }

// Len returns the number of entries.
func (n Navigation) Len() int { return len(n.entries) }

// Cursor returns the selected index, or NoCursor when empty.
func (n Navigation) Cursor() int { return n.cursor }

// Selected returns the entry under the cursor.
func (n Navigation) Selected() (Entry, bool) {
	if n.cursor == NoCursor {
		return Entry{}, false
	}
	return n.entries[n.cursor], true
}

// Replace swaps in a freshly scanned snapshot, keeping the cursor position
// where possible and re-clamping it against the new length.
func (n *Navigation) Replace(entries Snapshot) {
	n.entries = entries
	switch {
	case len(entries) == 0:
		n.cursor = NoCursor
	case n.cursor == NoCursor:
		n.cursor = 0
	case n.cursor >= len(entries):
		n.cursor = len(entries) - 1
	}
}

// MoveDown advances the cursor by one, clamping at the last entry.
func (n *Navigation) MoveDown() {
	if n.cursor != NoCursor && n.cursor+1 < len(n.entries) {
		n.cursor++
	}
}

// MoveUp retreats the cursor by one, clamping at the first entry.
func (n *Navigation) MoveUp() {
	if n.cursor > 0 {
		n.cursor--
	}
}

// MoveHome jumps to the first entry.
func (n *Navigation) MoveHome() {
	if n.cursor != NoCursor {
		n.cursor = 0
	}
}

// MoveEnd jumps to the last entry.
func (n *Navigation) MoveEnd() {
	if n.cursor != NoCursor {
		n.cursor = len(n.entries) - 1
	}
}
