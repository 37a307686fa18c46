package status

import (
	"fmt"
	"sort"

	"github.com/gitstatui/gst/internal/git"
)

// Snapshot is the ordered sequence of entries produced by one scan. It is
// immutable after creation; navigation only ever reads it. Ordering is
// lexicographic by path so the list is deterministic regardless of which
// backend produced the raw records.
type Snapshot []Entry

// Scanner turns a backend's raw change records into a classified snapshot.
type Scanner struct {
	svc git.Service
}

// NewScanner creates a scanner over the given backend.
func NewScanner(svc git.Service) *Scanner {
	return &Scanner{svc: svc}
}

// Scan performs one bulk status query and classifies every record. A clean
// working tree yields an empty snapshot and no error; a backend failure
// yields no snapshot at all. Every raw record maps to exactly one entry.
func (s *Scanner) Scan() (Snapshot, error) {
	raw, err := s.svc.Changes()
	if err != nil {
		return nil, fmt.Errorf("scanning repository: %w", err)
	}

	snap := make(Snapshot, 0, len(raw))
	for _, rc := range raw {
		snap = append(snap, Classify(rc))
	}

	sort.SliceStable(snap, func(i, j int) bool { return snap[i].Path < snap[j].Path })
	return snap, nil
}
