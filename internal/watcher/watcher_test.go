package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		path   string
		ignore bool
	}{
		{"/repo/.git/index.lock", true},
		{"/repo/.git/HEAD.lock", true},
		{"/repo/.git/COMMIT_EDITMSG", true},
		{"/repo/.git/gc.log", true},
		{"/repo/.git/fsmonitor--daemon.ipc", true},
		{"/repo/.git/.#HEAD", true},
		{"/repo/.git/index.swp", true},
		{"/repo/.git/backup~", true},
		{"/repo/.git/index", false},
		{"/repo/.git/HEAD", false},
		{"/repo/.git/MERGE_HEAD", false},
		{"/repo/.git/refs/heads/main", false},
		{"/repo/.git/packed-refs", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.ignore, shouldIgnore(tt.path))
		})
	}
}
