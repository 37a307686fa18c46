package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitstatui/gst/internal/git"
	"github.com/gitstatui/gst/internal/status"
	"github.com/gitstatui/gst/internal/ui"
)

// fakeService is a canned-response backend for model tests.
type fakeService struct {
	changes []git.RawChange
	err     error
}

func (f *fakeService) RepoRoot() string                  { return "/repo" }
func (f *fakeService) GitDir() string                    { return "/repo/.git" }
func (f *fakeService) Head() (string, error)             { return "main", nil }
func (f *fakeService) AheadBehind() (int, int, error)    { return 0, 0, nil }
func (f *fakeService) Changes() ([]git.RawChange, error) { return f.changes, f.err }

func mixedChanges() []git.RawChange {
	return []git.RawChange{
		{Staging: git.StatusUntracked, Worktree: git.StatusUntracked, Path: "a.txt"},
		{Staging: git.StatusUnmodified, Worktree: git.StatusModified, Path: "b.txt"},
		{Staging: git.StatusRenamed, Worktree: git.StatusUnmodified, Path: "new.txt", OldPath: "old.txt"},
	}
}

// loadedModel builds a model, sizes it, and runs the initial scan to
// completion the way the tea runtime would.
func loadedModel(t *testing.T, svc git.Service) Model {
	t.Helper()
	m := New(svc, ui.DefaultStyles())

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = sized.(Model)

	cmd := m.scanCmd()
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelLoadsSnapshotInOrder(t *testing.T) {
	m := loadedModel(t, &fakeService{changes: mixedChanges()})

	require.Equal(t, 3, m.nav.Len())
	entries := m.nav.Entries()
	assert.Equal(t, status.Untracked, entries[0].Category)
	assert.Equal(t, status.Modified, entries[1].Category)
	assert.Equal(t, status.Renamed, entries[2].Category)
	assert.Equal(t, 0, m.nav.Cursor())
}

func TestModelNavigationKeys(t *testing.T) {
	m := loadedModel(t, &fakeService{changes: mixedChanges()})

	next, _ := m.Update(keyRune('j'))
	m = next.(Model)
	assert.Equal(t, 1, m.nav.Cursor())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 2, m.nav.Cursor())

	// End at the bottom stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = next.(Model)
	assert.Equal(t, 2, m.nav.Cursor())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = next.(Model)
	assert.Equal(t, 0, m.nav.Cursor())

	next, _ = m.Update(keyRune('k'))
	m = next.(Model)
	assert.Equal(t, 0, m.nav.Cursor())
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m := loadedModel(t, &fakeService{changes: mixedChanges()})

	for _, r := range []rune{'x', 'Z', '1', ' '} {
		next, cmd := m.Update(keyRune(r))
		m = next.(Model)
		assert.Nil(t, cmd)
		assert.Equal(t, 0, m.nav.Cursor())
	}
}

func TestModelQuitImmediately(t *testing.T) {
	m := loadedModel(t, &fakeService{changes: mixedChanges()})

	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.NoError(t, m.Err())
}

func TestModelQuitOnEscape(t *testing.T) {
	m := loadedModel(t, &fakeService{changes: mixedChanges()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelCleanTree(t *testing.T) {
	m := loadedModel(t, &fakeService{})

	assert.Equal(t, status.NoCursor, m.nav.Cursor())
	assert.Contains(t, m.View(), "Working tree clean")

	// Navigation keys are no-ops while the tree is clean.
	for _, msg := range []tea.Msg{
		keyRune('j'), keyRune('k'),
		tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyEnd},
	} {
		next, _ := m.Update(msg)
		m = next.(Model)
		assert.Equal(t, status.NoCursor, m.nav.Cursor())
	}
}

func TestModelViewShowsLabelsAndPaths(t *testing.T) {
	m := loadedModel(t, &fakeService{changes: mixedChanges()})
	view := m.View()

	assert.Contains(t, view, "untracked")
	assert.Contains(t, view, "modified")
	assert.Contains(t, view, "renamed")
	assert.Contains(t, view, "a.txt")
	assert.Contains(t, view, "b.txt")
	assert.Contains(t, view, "new.txt ← old.txt")
	assert.Contains(t, view, "▸")
}

func TestModelScanFailureIsFatal(t *testing.T) {
	scanErr := errors.New("repository unavailable")
	m := New(&fakeService{err: scanErr}, ui.DefaultStyles())

	cmd := m.scanCmd()
	msg := cmd()
	require.IsType(t, fatalMsg{}, msg)

	next, quit := m.Update(msg)
	m = next.(Model)
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
	assert.ErrorIs(t, m.Err(), scanErr)
}

func TestModelRefreshReplacesSnapshot(t *testing.T) {
	svc := &fakeService{changes: mixedChanges()}
	m := loadedModel(t, svc)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = next.(Model)
	require.Equal(t, 2, m.nav.Cursor())

	// The tree shrank underneath us; the cursor re-clamps.
	svc.changes = svc.changes[:1]
	_, cmd := m.Update(RefreshMsg{})
	require.NotNil(t, cmd)

	updated, _ := m.Update(m.scanCmd()())
	m = updated.(Model)
	assert.Equal(t, 1, m.nav.Len())
	assert.Equal(t, 0, m.nav.Cursor())
}

func TestModelRefreshKeyTriggersScan(t *testing.T) {
	m := loadedModel(t, &fakeService{changes: mixedChanges()})

	_, cmd := m.Update(keyRune('r'))
	assert.NotNil(t, cmd)
}
