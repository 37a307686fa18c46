package app

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/gitstatui/gst/internal/config"
	"github.com/gitstatui/gst/internal/git"
	"github.com/gitstatui/gst/internal/ui"
	"github.com/gitstatui/gst/internal/watcher"
)

// ErrUnsupportedTerminal is returned when stdout is not a terminal, before
// any terminal mode has been entered.
var ErrUnsupportedTerminal = errors.New("unsupported terminal: stdout is not a tty")

// Run drives one interactive session: scan, enter the alternate screen,
// loop until quit, restore the terminal, and surface any fatal error.
// Bubbletea guarantees the restore on every exit path — error, panic, and
// interrupt included — so a failure can never strand the user's shell in
// raw mode.
func Run(svc git.Service, cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrUnsupportedTerminal
	}

	m := New(svc, ui.DefaultStyles())
	p := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.Watch {
		debounce := time.Duration(cfg.WatchDebounceMs) * time.Millisecond
		if ch, stop, err := watcher.Watch(svc.GitDir(), debounce); err == nil {
			defer stop()
			go func() {
				for range ch {
					p.Send(RefreshMsg{})
				}
			}()
		}
	}

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
