package git

// StatusCode is a single-character Git status indicator, one axis of the
// porcelain XY pair.
type StatusCode byte

// Git status codes as single-byte indicators.
const (
	StatusUnmodified  StatusCode = ' '
	StatusModified    StatusCode = 'M'
	StatusTypeChanged StatusCode = 'T'
	StatusAdded       StatusCode = 'A'
	StatusDeleted     StatusCode = 'D'
	StatusRenamed     StatusCode = 'R'
	StatusCopied      StatusCode = 'C'
	StatusUnmerged    StatusCode = 'U'
	StatusUntracked   StatusCode = '?'
	StatusIgnored     StatusCode = '!'
)

// String returns the single-character representation.
func (s StatusCode) String() string { return string(s) }

// RawChange is one unprocessed change record as reported by a status backend,
// prior to classification. Staging and Worktree carry the porcelain X and Y
// codes; OldPath is set only for renames and copies.
type RawChange struct {
	Staging  StatusCode
	Worktree StatusCode
	Path     string
	OldPath  string
}
