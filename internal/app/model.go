// Package app implements the interactive status list: a single bubbletea
// model that scans the repository once, then loops read-event → update
// cursor → repaint until the user quits. Bubbletea owns the raw/alt-screen
// terminal mode and restores it on every exit path, including errors and
// signals; the model's job is to keep the navigation invariants and to carry
// a fatal error out of the loop instead of printing mid-session.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gitstatui/gst/internal/git"
	"github.com/gitstatui/gst/internal/log"
	"github.com/gitstatui/gst/internal/status"
	"github.com/gitstatui/gst/internal/ui"
)

// RefreshMsg asks the model to rescan the repository. The filesystem watcher
// injects it via Program.Send; the refresh key produces the same effect.
type RefreshMsg struct{}

type (
	snapshotMsg struct{ snap status.Snapshot }
	barMsg      struct{ data barData }
	fatalMsg    struct{ err error }
)

// Model is the bubbletea model for the status list.
type Model struct {
	scanner *status.Scanner
	svc     git.Service
	styles  ui.Styles
	keys    KeyMap

	nav    status.Navigation
	bar    barData
	loaded bool

	width  int
	height int

	err error
}

// New creates the status list model over the given backend.
func New(svc git.Service, styles ui.Styles) Model {
	return Model{
		scanner: status.NewScanner(svc),
		svc:     svc,
		styles:  styles,
		keys:    DefaultKeyMap(),
		nav:     status.NewNavigation(nil),
	}
}

// Err returns the fatal error that terminated the loop, if any. It is read
// by the caller after the program has exited and the terminal is restored.
func (m Model) Err() error { return m.err }

// Init triggers the initial scan and status bar load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scanCmd(), m.barCmd())
}

// scanCmd runs one scan in the background and delivers the snapshot.
// A scan failure is fatal to the session.
func (m Model) scanCmd() tea.Cmd {
	scanner := m.scanner
	return func() tea.Msg {
		snap, err := scanner.Scan()
		if err != nil {
			return fatalMsg{err: err}
		}
		return snapshotMsg{snap: snap}
	}
}

// barCmd gathers status bar data in the background. Bar data is cosmetic,
// so failures here degrade to empty fields rather than ending the session.
func (m Model) barCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		data := barData{}
		if head, err := svc.Head(); err == nil {
			data.branch = head
		}
		data.ahead, data.behind, _ = svc.AheadBehind()
		return barMsg{data: data}
	}
}

// Update processes one message: a key event, a scan result, or a refresh.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.nav.MoveDown()
		case key.Matches(msg, m.keys.Up):
			m.nav.MoveUp()
		case key.Matches(msg, m.keys.Home):
			m.nav.MoveHome()
		case key.Matches(msg, m.keys.End):
			m.nav.MoveEnd()
		case key.Matches(msg, m.keys.Refresh):
			return m, tea.Batch(m.scanCmd(), m.barCmd())
		}
		// Everything else is a no-op; the loop keeps running.
		return m, nil

	case snapshotMsg:
		m.loaded = true
		m.nav.Replace(msg.snap)
		log.Printf("scan: %d entries", m.nav.Len())
		return m, nil

	case barMsg:
		m.bar = msg.data
		return m, nil

	case RefreshMsg:
		return m, tea.Batch(m.scanCmd(), m.barCmd())

	case fatalMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the entire screen. Pure — no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	helpBar := m.renderHelpBar()
	statusBar := renderStatusBar(m.styles, m.bar, m.nav, m.width)
	contentH := m.height - lipgloss.Height(statusBar) - lipgloss.Height(helpBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case !m.loaded:
		content = ui.PlaceCentre(m.width, contentH, m.styles.Muted.Render("Scanning…"))
	case m.nav.Len() == 0:
		content = ui.PlaceCentre(m.width, contentH,
			lipgloss.NewStyle().Foreground(m.styles.Theme.Success).Render("✓ Working tree clean"))
	default:
		content = m.renderList(contentH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar, helpBar)
}

// labelWidth pads category labels into one column; "typechange" and
// "conflicted" are the widest at ten characters.
const labelWidth = 10

// renderList renders the entry list with a scroll window that keeps the
// cursor visible.
func (m Model) renderList(height int) string {
	entries := m.nav.Entries()
	cursor := m.nav.Cursor()

	// Scroll window centred on the cursor.
	start := 0
	if len(entries) > height {
		start = cursor - height/2
		if start < 0 {
			start = 0
		}
		if start+height > len(entries) {
			start = len(entries) - height
		}
	}
	end := start + height
	if end > len(entries) {
		end = len(entries)
	}

	maxPath := m.width - labelWidth - 6
	if maxPath < 10 {
		maxPath = 10
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderEntry(entries[i], i == cursor, maxPath))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.NewStyle().Width(m.width).Height(height).Render(list)
}

// renderEntry renders one row:
//
//	▸ modified   internal/app/model.go
//	  renamed    new_name.go ← old_name.go
func (m Model) renderEntry(e status.Entry, selected bool, maxPath int) string {
	t := m.styles.Theme

	label := lipgloss.NewStyle().
		Foreground(t.CategoryColor(e.Category)).
		Bold(true).
		Render(ui.PadRight(e.Category.Label(), labelWidth))

	path := e.Path
	if e.OldPath != "" {
		path = e.Path + " ← " + e.OldPath
	}
	path = ui.Truncate(path, maxPath)

	if selected {
		glyph := m.styles.Cursor.Render("▸")
		return " " + glyph + " " + label + " " + m.styles.Selected.Render(path)
	}
	return "   " + label + " " + lipgloss.NewStyle().Foreground(t.Text).Render(path)
}

// renderHelpBar renders the persistent one-line key hint bar.
func (m Model) renderHelpBar() string {
	s := m.styles
	sep := s.Subtle.Render("  ·  ")

	hints := []string{
		s.KeyBind.Render("j/k") + s.KeyDesc.Render(" navigate"),
		s.KeyBind.Render("g/G") + s.KeyDesc.Render(" top/bottom"),
		s.KeyBind.Render("r") + s.KeyDesc.Render(" refresh"),
		s.KeyBind.Render("q") + s.KeyDesc.Render(" quit"),
	}

	line := hints[0]
	for _, h := range hints[1:] {
		line = line + sep + h
	}
	return lipgloss.NewStyle().Width(m.width).Render(" " + line)
}
