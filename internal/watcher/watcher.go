// Package watcher monitors Git-internal state files and notifies the TUI to
// rescan. It deliberately watches only the .git directory, never the working
// tree: recursive working-tree watches would exhaust inotify/kqueue limits
// on large repos, and the index/HEAD/refs files change on every operation
// that matters to a status view anyway. Working-tree-only edits are picked
// up by the manual refresh key.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watcher detects relevant Git state changes.
type Event struct{}

// Watch monitors .git internals under gitDir and sends an Event after each
// (debounced) burst of changes. Call the returned stop function to tear the
// watcher down.
func Watch(gitDir string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	targets := []string{
		gitDir,                              // HEAD, index, MERGE_HEAD, packed-refs
		filepath.Join(gitDir, "refs"),       // ref namespace changes
		filepath.Join(gitDir, "refs/heads"), // local branch updates
	}
	for _, t := range targets {
		if info, statErr := os.Stat(t); statErr == nil && info.IsDir() {
			_ = w.Add(t)
		}
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if shouldIgnore(ev.Name) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// shouldIgnore reports whether an event path must not trigger a refresh.
// Lock files are the critical case: git holds them mid-operation, and
// re-invoking git while it holds a lock is exactly what we must not do.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)

	if strings.HasSuffix(base, ".lock") {
		return true
	}

	// Editor temp files that end up inside .git.
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") {
		return true
	}

	// COMMIT_EDITMSG churns while a commit message is being typed.
	if base == "COMMIT_EDITMSG" {
		return true
	}

	if base == "gc.log" || strings.HasPrefix(base, "fsmonitor") {
		return true
	}

	return false
}
