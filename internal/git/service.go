package git

// Service is the narrow capability the viewer needs from a repository
// backend. The UI depends on this interface, never on exec.Command or a
// specific Git implementation, which keeps it testable via fakes and lets
// the backend be swapped (CLI vs go-git) from config.
type Service interface {
	// RepoRoot returns the absolute path to the working tree root.
	RepoRoot() string
	// GitDir returns the path to the .git directory.
	GitDir() string
	// Head returns the current branch name, or a short hash when detached.
	Head() (string, error)
	// AheadBehind returns how many commits ahead/behind the upstream.
	// No upstream is not an error; both counts are zero then.
	AheadBehind() (ahead, behind int, err error)
	// Changes enumerates the full set of working-tree change records in a
	// single bulk query. A clean tree yields an empty slice, not an error.
	Changes() ([]RawChange, error)
}
