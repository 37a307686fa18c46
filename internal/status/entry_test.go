package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitstatui/gst/internal/git"
)

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		name string
		raw  git.RawChange
		want Category
	}{
		{"untracked", git.RawChange{Staging: git.StatusUntracked, Worktree: git.StatusUntracked, Path: "n.txt"}, Untracked},
		{"worktree modified", git.RawChange{Staging: git.StatusUnmodified, Worktree: git.StatusModified, Path: "m.go"}, Modified},
		{"staged new file", git.RawChange{Staging: git.StatusAdded, Worktree: git.StatusUnmodified, Path: "a.go"}, StagedAdded},
		{"staged modification", git.RawChange{Staging: git.StatusModified, Worktree: git.StatusUnmodified, Path: "s.go"}, StagedAdded},
		{"staged and dirty", git.RawChange{Staging: git.StatusModified, Worktree: git.StatusModified, Path: "mm.go"}, Modified},
		{"type changed", git.RawChange{Staging: git.StatusUnmodified, Worktree: git.StatusTypeChanged, Path: "link"}, TypeChanged},
		{"deleted from worktree", git.RawChange{Staging: git.StatusUnmodified, Worktree: git.StatusDeleted, Path: "d.txt"}, Deleted},
		{"deleted from index", git.RawChange{Staging: git.StatusDeleted, Worktree: git.StatusUnmodified, Path: "d2.txt"}, Deleted},
		{"renamed", git.RawChange{Staging: git.StatusRenamed, Worktree: git.StatusUnmodified, Path: "new.go", OldPath: "old.go"}, Renamed},
		{"copied", git.RawChange{Staging: git.StatusCopied, Worktree: git.StatusUnmodified, Path: "copy.go", OldPath: "orig.go"}, Renamed},
		{"both modified conflict", git.RawChange{Staging: git.StatusUnmerged, Worktree: git.StatusUnmerged, Path: "c.go"}, Conflicted},
		{"both added conflict", git.RawChange{Staging: git.StatusAdded, Worktree: git.StatusAdded, Path: "aa.go"}, Conflicted},
		{"both deleted conflict", git.RawChange{Staging: git.StatusDeleted, Worktree: git.StatusDeleted, Path: "dd.go"}, Conflicted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Classify(tt.raw)
			assert.Equal(t, tt.want, e.Category)
			assert.Equal(t, tt.raw.Path, e.Path)
		})
	}
}

func TestClassifyUnknownKindFallsBack(t *testing.T) {
	// Classification must never error, so kinds outside the porcelain set
	// still map to a displayable category.
	e := Classify(git.RawChange{Staging: 'Z', Worktree: 'z', Path: "weird"})
	assert.Equal(t, Modified, e.Category)
}

func TestClassifyRenameWithoutOldPath(t *testing.T) {
	e := Classify(git.RawChange{Staging: git.StatusRenamed, Worktree: git.StatusUnmodified, Path: "new.go"})
	assert.Equal(t, Modified, e.Category)
	assert.Empty(t, e.OldPath)
}

func TestClassifyKeepsOldPathOnlyForRenames(t *testing.T) {
	e := Classify(git.RawChange{Staging: git.StatusRenamed, Worktree: git.StatusUnmodified, Path: "new.go", OldPath: "old.go"})
	assert.Equal(t, "old.go", e.OldPath)

	e = Classify(git.RawChange{Staging: git.StatusUnmodified, Worktree: git.StatusModified, Path: "m.go"})
	assert.Empty(t, e.OldPath)
}

func TestCategoryLabels(t *testing.T) {
	want := map[Category]string{
		Untracked:   "untracked",
		Modified:    "modified",
		StagedAdded: "added",
		TypeChanged: "typechange",
		Renamed:     "renamed",
		Deleted:     "deleted",
		Conflicted:  "conflicted",
	}
	for cat, label := range want {
		assert.Equal(t, label, cat.Label())
	}
}
