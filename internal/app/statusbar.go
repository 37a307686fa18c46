package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitstatui/gst/internal/status"
	"github.com/gitstatui/gst/internal/ui"
)

// barData carries the info displayed in the bottom status bar.
type barData struct {
	branch string
	ahead  int
	behind int
}

// renderStatusBar renders the bottom bar:
//
//	 main │ ↑2 ↓1 │ 5 changes                                    3/5
func renderStatusBar(styles ui.Styles, data barData, nav status.Navigation, width int) string {
	t := styles.Theme

	sep := lipgloss.NewStyle().Foreground(t.Border).Faint(true).Render(" │ ")

	branch := lipgloss.NewStyle().Foreground(t.BranchHead).Bold(true).Render(" " + data.branch)

	var sync string
	if data.ahead > 0 || data.behind > 0 {
		var parts []string
		if data.ahead > 0 {
			parts = append(parts, fmt.Sprintf("↑%d", data.ahead))
		}
		if data.behind > 0 {
			parts = append(parts, fmt.Sprintf("↓%d", data.behind))
		}
		sync = sep + lipgloss.NewStyle().Foreground(t.Warning).Render(strings.Join(parts, " "))
	}

	var state string
	if nav.Len() == 0 {
		state = sep + lipgloss.NewStyle().Foreground(t.Success).Render("clean")
	} else {
		state = sep + lipgloss.NewStyle().Foreground(t.Modified).
			Render(fmt.Sprintf("%d change(s)", nav.Len()))
	}

	left := branch + sync + state

	var pos string
	if nav.Cursor() != status.NoCursor {
		pos = lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("%d/%d", nav.Cursor()+1, nav.Len()))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(pos) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.StatusBar.Width(width).
		Render(left + strings.Repeat(" ", gap) + pos)
}
