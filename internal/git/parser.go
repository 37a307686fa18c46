package git

import "strings"

// ParseChanges parses `git status --porcelain=v1 -z` output into raw change
// records. NUL-delimited scanning avoids allocating a massive []string for
// repos with thousands of changed files.
func ParseChanges(out string) []RawChange {
	if len(out) == 0 {
		return nil
	}

	changes := make([]RawChange, 0, 32)

	for len(out) > 0 {
		nul := strings.IndexByte(out, '\x00')
		var entry string
		if nul < 0 {
			entry = out
			out = ""
		} else {
			entry = out[:nul]
			out = out[nul+1:]
		}
		if len(entry) < 4 {
			continue
		}

		rc := RawChange{
			Staging:  StatusCode(entry[0]),
			Worktree: StatusCode(entry[1]),
			Path:     entry[3:],
		}

		// Renames/copies have an extra NUL-separated field holding the
		// original path.
		if rc.Staging == StatusRenamed || rc.Staging == StatusCopied ||
			rc.Worktree == StatusRenamed || rc.Worktree == StatusCopied {
			nul2 := strings.IndexByte(out, '\x00')
			if nul2 < 0 {
				rc.OldPath = out
				out = ""
			} else {
				rc.OldPath = out[:nul2]
				out = out[nul2+1:]
			}
		}

		changes = append(changes, rc)
	}
	return changes
}
