// Package status holds the working-tree snapshot model: classification of
// raw change records into display entries, and the cursor state machine the
// interactive list is driven by. Everything here is pure; backends and
// rendering live elsewhere.
package status

import "github.com/gitstatui/gst/internal/git"

// Category is the semantic classification of a changed path. The set is
// closed; Classify maps every raw record into exactly one of these.
type Category int

const (
	Untracked Category = iota
	Modified
	StagedAdded
	TypeChanged
	Renamed
	Deleted
	Conflicted
)

// Label returns the fixed display label for the category. These strings are
// part of the rendered output contract.
func (c Category) Label() string {
	switch c {
	case Untracked:
		return "untracked"
	case Modified:
		return "modified"
	case StagedAdded:
		return "added"
	case TypeChanged:
		return "typechange"
	case Renamed:
		return "renamed"
	case Deleted:
		return "deleted"
	case Conflicted:
		return "conflicted"
	default:
		return "modified"
	}
}

// Entry is one changed path in the working tree. Category is derived from
// the raw record at creation time and never changes afterwards; OldPath is
// set only for renames.
type Entry struct {
	Path     string
	OldPath  string
	Category Category
}

// Classify maps a raw change record to a display entry. It is total: kinds
// outside the known porcelain set fall back to Modified, since an
// unclassifiable entry is still displayable. A rename record that arrives
// without its original path degrades to Modified rather than producing a
// rename with a missing field.
func Classify(raw git.RawChange) Entry {
	e := Entry{Path: raw.Path}
	x, y := raw.Staging, raw.Worktree

	switch {
	case x == git.StatusUnmerged || y == git.StatusUnmerged,
		x == git.StatusAdded && y == git.StatusAdded,
		x == git.StatusDeleted && y == git.StatusDeleted:
		e.Category = Conflicted
	case x == git.StatusUntracked || y == git.StatusUntracked:
		e.Category = Untracked
	case x == git.StatusRenamed || y == git.StatusRenamed ||
		x == git.StatusCopied || y == git.StatusCopied:
		if raw.OldPath == "" {
			e.Category = Modified
		} else {
			e.Category = Renamed
			e.OldPath = raw.OldPath
		}
	case x == git.StatusTypeChanged || y == git.StatusTypeChanged:
		e.Category = TypeChanged
	case x == git.StatusDeleted || y == git.StatusDeleted:
		e.Category = Deleted
	case x == git.StatusAdded:
		e.Category = StagedAdded
	case x == git.StatusModified && y == git.StatusUnmodified:
		// Staged content change with a clean worktree counts as staged.
		e.Category = StagedAdded
	case y == git.StatusModified:
		e.Category = Modified
	default:
		e.Category = Modified
	}
	return e
}
