package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotARepo is returned when the path is not inside a Git repository.
var ErrNotARepo = errors.New("not a git repository")

// cmdTimeout is the maximum duration any single git command may run.
// Prevents hangs on huge repos or slow network filesystems.
const cmdTimeout = 30 * time.Second

// CLIService implements Service by shelling out to the git CLI.
// All commands are read-only and run with GIT_OPTIONAL_LOCKS=0 so a
// long-lived viewer never contends with the user's own git invocations.
type CLIService struct {
	root      string // Absolute path to the repo root.
	gitDir    string // Path to the .git directory.
	untracked string // --untracked-files mode: "normal", "all", or "no".
}

// Compile-time check that CLIService implements Service.
var _ Service = (*CLIService)(nil)

// NewCLIService opens a Git repository at the given path. untracked selects
// the --untracked-files mode used when enumerating changes ("normal" scans
// one directory level, which is the sane default for large repos).
func NewCLIService(path, untracked string) (*CLIService, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	topLevel, err := runGit(abs, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, ErrNotARepo
	}
	gitDir, err := runGit(abs, "rev-parse", "--git-dir")
	if err != nil {
		return nil, fmt.Errorf("finding .git directory: %w", err)
	}
	gd := strings.TrimSpace(gitDir)
	if !filepath.IsAbs(gd) {
		gd = filepath.Join(strings.TrimSpace(topLevel), gd)
	}
	if untracked == "" {
		untracked = "normal"
	}
	return &CLIService{
		root:      strings.TrimSpace(topLevel),
		gitDir:    gd,
		untracked: untracked,
	}, nil
}

// RepoRoot returns the repository root path.
func (s *CLIService) RepoRoot() string { return s.root }

// GitDir returns the path to the .git directory.
func (s *CLIService) GitDir() string { return s.gitDir }

// run executes a git command at the repo root.
func (s *CLIService) run(args ...string) (string, error) {
	return runGit(s.root, args...)
}

// runGit executes a read-only git command with a context timeout.
// Stdout and stderr are separated so stderr noise doesn't corrupt output.
func runGit(dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	// GIT_OPTIONAL_LOCKS=0 prevents git from acquiring optional locks,
	// which matters in large repos where lock contention stalls readers.
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), errMsg, err)
	}
	return stdout.String(), nil
}

// Head returns the current branch, falling back to a short hash on a
// detached HEAD.
func (s *CLIService) Head() (string, error) {
	ref, err := s.run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		hash, hashErr := s.run("rev-parse", "--short", "HEAD")
		if hashErr != nil {
			return "", fmt.Errorf("getting HEAD: %w", err)
		}
		return strings.TrimSpace(hash), nil
	}
	return strings.TrimSpace(ref), nil
}

// AheadBehind returns how many commits ahead/behind the upstream.
func (s *CLIService) AheadBehind() (int, int, error) {
	out, err := s.run("rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0, nil //nolint:nilerr // no upstream is not an error
	}
	parts := strings.Fields(strings.TrimSpace(out))
	if len(parts) != 2 {
		return 0, 0, nil
	}
	var ahead, behind int
	_, _ = fmt.Sscan(parts[0], &ahead)
	_, _ = fmt.Sscan(parts[1], &behind)
	return ahead, behind, nil
}

// Changes enumerates the working-tree change records via a single
// `git status --porcelain=v1 -z` query.
func (s *CLIService) Changes() ([]RawChange, error) {
	out, err := s.run("status", "--porcelain=v1", "-z",
		"--no-optional-locks", "--untracked-files="+s.untracked)
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}
	return ParseChanges(out), nil
}
