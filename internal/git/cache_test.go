package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingService counts backend hits per method.
type countingService struct {
	changesCalls int
	headCalls    int
}

func (c *countingService) RepoRoot() string { return "/repo" }
func (c *countingService) GitDir() string   { return "/repo/.git" }

func (c *countingService) Head() (string, error) {
	c.headCalls++
	return "main", nil
}

func (c *countingService) AheadBehind() (int, int, error) { return 1, 2, nil }

func (c *countingService) Changes() ([]RawChange, error) {
	c.changesCalls++
	return []RawChange{{Staging: StatusUnmodified, Worktree: StatusModified, Path: "a.go"}}, nil
}

func TestCachedServiceDeduplicatesReads(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Minute)

	for range 3 {
		changes, err := svc.Changes()
		require.NoError(t, err)
		require.Len(t, changes, 1)

		head, err := svc.Head()
		require.NoError(t, err)
		assert.Equal(t, "main", head)
	}

	assert.Equal(t, 1, inner.changesCalls)
	assert.Equal(t, 1, inner.headCalls)
}

func TestCachedServiceInvalidate(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Minute)

	_, err := svc.Changes()
	require.NoError(t, err)
	svc.Invalidate()
	_, err = svc.Changes()
	require.NoError(t, err)

	assert.Equal(t, 2, inner.changesCalls)
}

func TestCachedServiceExpiry(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, -time.Second) // already expired

	_, err := svc.Changes()
	require.NoError(t, err)
	_, err = svc.Changes()
	require.NoError(t, err)

	assert.Equal(t, 2, inner.changesCalls)
}

func TestCachedServiceDelegatesPaths(t *testing.T) {
	svc := NewCachedService(&countingService{}, time.Minute)
	assert.Equal(t, "/repo", svc.RepoRoot())
	assert.Equal(t, "/repo/.git", svc.GitDir())
}
