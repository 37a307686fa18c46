package git

import (
	"fmt"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// GoGitService implements Service using go-git, with no dependency on a git
// binary. Selected via the `backend: gogit` config option. go-git's status
// walk can be slower than the CLI on very large working trees, so the CLI
// backend stays the default.
type GoGitService struct {
	repo *gogit.Repository
	wt   *gogit.Worktree
	root string
}

// Compile-time check.
var _ Service = (*GoGitService)(nil)

// NewGoGitService opens the repository containing path.
func NewGoGitService(path string) (*GoGitService, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, ErrNotARepo
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	return &GoGitService{
		repo: repo,
		wt:   wt,
		root: wt.Filesystem.Root(),
	}, nil
}

// RepoRoot returns the repository root path.
func (s *GoGitService) RepoRoot() string { return s.root }

// GitDir returns the conventional .git path under the root. go-git does not
// expose the resolved dotgit location, so linked worktrees fall back to this.
func (s *GoGitService) GitDir() string { return filepath.Join(s.root, gogit.GitDirName) }

// Head returns the current branch, or a short hash when detached.
func (s *GoGitService) Head() (string, error) {
	ref, err := s.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	if ref.Name().IsBranch() {
		return ref.Name().Short(), nil
	}
	hash := ref.Hash().String()
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash, nil
}

// AheadBehind is not supported by this backend; counts read as zero.
func (s *GoGitService) AheadBehind() (int, int, error) { return 0, 0, nil }

// Changes enumerates the working-tree change records from go-git's status
// map. Map iteration order is random, so paths are sorted here to keep the
// record order deterministic across calls.
func (s *GoGitService) Changes() ([]RawChange, error) {
	st, err := s.wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	paths := make([]string, 0, len(st))
	for p, fs := range st {
		if fs.Staging == gogit.Unmodified && fs.Worktree == gogit.Unmodified {
			continue
		}
		paths = append(paths, p)
	}
	sort.Strings(paths)

	changes := make([]RawChange, 0, len(paths))
	for _, p := range paths {
		fs := st[p]
		// go-git status codes are the porcelain letters, so the byte values
		// carry over directly.
		changes = append(changes, RawChange{
			Staging:  StatusCode(fs.Staging),
			Worktree: StatusCode(fs.Worktree),
			Path:     p,
			OldPath:  fs.Extra,
		})
	}
	return changes, nil
}
