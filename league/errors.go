// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package league

import "fmt"

// IntegrityKind identifies which foreign-key join failed.
type IntegrityKind string

const (
	OrphanSubmission IntegrityKind = "orphan_submission" // submission references a missing round or competitor
	OrphanVote       IntegrityKind = "orphan_vote"       // vote references a missing (round, track) submission
	OrphanVoter      IntegrityKind = "orphan_voter"      // vote references a missing competitor
)

// IntegrityError reports a referenced entity that does not exist. It is
// fatal to resolution: an orphan row must never be silently dropped into
// an empty join, since that would undercount every downstream aggregate.
type IntegrityError struct {
	Kind     IntegrityKind
	RoundID  string
	TrackURI string
	RefID    string // the dangling competitor or round reference
}

func (e *IntegrityError) Error() string {
	switch e.Kind {
	case OrphanSubmission:
		return fmt.Sprintf("integrity: submission %s in round %s references missing %s", e.TrackURI, e.RoundID, e.RefID)
	case OrphanVote:
		return fmt.Sprintf("integrity: vote references missing submission %s in round %s", e.TrackURI, e.RoundID)
	case OrphanVoter:
		return fmt.Sprintf("integrity: vote on %s in round %s references missing voter %s", e.TrackURI, e.RoundID, e.RefID)
	default:
		return fmt.Sprintf("integrity: %s", e.Kind)
	}
}

// AmbiguousNameError reports a display name shared by several entities.
// Name lookup refuses to guess; callers must fall back to stable IDs.
type AmbiguousNameError struct {
	Entity string // "round" or "competitor"
	Name   string
	IDs    []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("ambiguous %s name %q matches ids %v", e.Entity, e.Name, e.IDs)
}
