package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gitstatui/gst/internal/status"
)

// Theme holds all colours for the application.
type Theme struct {
	Bg      lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color

	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	TextSubtle lipgloss.Color

	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Category colours. Untracked/Modified/Added/TypeChanged are fixed
	// contract colours (red/yellow/green/orange); the rest are distinct
	// picks from the same palette.
	Untracked   lipgloss.Color
	Modified    lipgloss.Color
	Added       lipgloss.Color
	TypeChanged lipgloss.Color
	Renamed     lipgloss.Color
	Deleted     lipgloss.Color
	Conflict    lipgloss.Color

	BranchHead lipgloss.Color
}

// DarkTheme returns the default dark theme (Catppuccin Mocha palette).
func DarkTheme() Theme {
	return Theme{
		Bg:      lipgloss.Color("#1e1e2e"),
		Surface: lipgloss.Color("#282840"),
		Border:  lipgloss.Color("#3b3b5c"),

		Text:       lipgloss.Color("#cdd6f4"),
		TextMuted:  lipgloss.Color("#9399b2"),
		TextSubtle: lipgloss.Color("#6c7086"),

		Primary: lipgloss.Color("#89b4fa"),
		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),

		Untracked:   lipgloss.Color("#f38ba8"),
		Modified:    lipgloss.Color("#f9e2af"),
		Added:       lipgloss.Color("#a6e3a1"),
		TypeChanged: lipgloss.Color("#fab387"),
		Renamed:     lipgloss.Color("#89dceb"),
		Deleted:     lipgloss.Color("#cba6f7"),
		Conflict:    lipgloss.Color("#eba0ac"),

		BranchHead: lipgloss.Color("#89b4fa"),
	}
}

// CategoryColor returns the colour for an entry category.
func (t Theme) CategoryColor(cat status.Category) lipgloss.Color {
	switch cat {
	case status.Untracked:
		return t.Untracked
	case status.Modified:
		return t.Modified
	case status.StagedAdded:
		return t.Added
	case status.TypeChanged:
		return t.TypeChanged
	case status.Renamed:
		return t.Renamed
	case status.Deleted:
		return t.Deleted
	case status.Conflicted:
		return t.Conflict
	default:
		return t.Modified
	}
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style

	StatusBar lipgloss.Style
	KeyBind   lipgloss.Style
	KeyDesc   lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.Title = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Subtle = lipgloss.NewStyle().Foreground(t.TextSubtle)
	s.Selected = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Cursor = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
