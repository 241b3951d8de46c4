// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package league

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/league-lens/models"
)

// submissionKey identifies a submission: the same track can be resubmitted
// in a later round, so track URI alone is not enough.
type submissionKey struct {
	roundID  string
	trackURI string
}

// Snapshot is an immutable resolved view of one loaded dataset. All joins
// are performed once at construction and reused by every report; reloading
// the source produces a wholly new snapshot, never a mutation of this one,
// so in-flight computations holding a reference stay consistent.
type Snapshot struct {
	ID       string
	LoadedAt time.Time

	Competitors []models.Competitor
	Rounds      []models.Round
	Submissions []models.Submission
	Votes       []models.Vote

	EnrichedSubmissions []models.EnrichedSubmission
	EnrichedVotes       []models.EnrichedVote

	roundsByID        map[string]models.Round
	competitorsByID   map[string]models.Competitor
	roundIDsByName    map[string][]string
	competitorsByName map[string][]string
}

// Resolve joins the base tables into the two canonical enriched views,
// enforcing referential integrity. Three independent passes:
//
//  1. round id -> round index; each submission joins against it
//  2. (round id, track uri) -> enriched submission index; each vote joins against it
//  3. competitor id -> competitor index; each vote joins against it by voter id
//
// Total cost is linear in |submissions| + |votes|. The first dangling
// reference aborts resolution with an *IntegrityError.
func Resolve(ds models.Dataset) (*Snapshot, error) {
	snap := &Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now().UTC(),

		Competitors: ds.Competitors,
		Rounds:      ds.Rounds,
		Submissions: ds.Submissions,
		Votes:       ds.Votes,

		roundsByID:        make(map[string]models.Round, len(ds.Rounds)),
		competitorsByID:   make(map[string]models.Competitor, len(ds.Competitors)),
		roundIDsByName:    make(map[string][]string, len(ds.Rounds)),
		competitorsByName: make(map[string][]string, len(ds.Competitors)),
	}

	for _, r := range ds.Rounds {
		snap.roundsByID[r.ID] = r
		snap.roundIDsByName[r.Name] = append(snap.roundIDsByName[r.Name], r.ID)
	}
	for _, c := range ds.Competitors {
		snap.competitorsByID[c.ID] = c
		snap.competitorsByName[c.Name] = append(snap.competitorsByName[c.Name], c.ID)
	}

	// Pass 1: submissions join rounds (and their submitters must exist)
	snap.EnrichedSubmissions = make([]models.EnrichedSubmission, 0, len(ds.Submissions))
	subIndex := make(map[submissionKey]models.EnrichedSubmission, len(ds.Submissions))
	for _, s := range ds.Submissions {
		round, ok := snap.roundsByID[s.RoundID]
		if !ok {
			return nil, &IntegrityError{Kind: OrphanSubmission, RoundID: s.RoundID, TrackURI: s.TrackURI, RefID: "round " + s.RoundID}
		}
		if _, ok := snap.competitorsByID[s.SubmitterID]; !ok {
			return nil, &IntegrityError{Kind: OrphanSubmission, RoundID: s.RoundID, TrackURI: s.TrackURI, RefID: "submitter " + s.SubmitterID}
		}
		es := models.EnrichedSubmission{Submission: s, RoundName: round.Name}
		snap.EnrichedSubmissions = append(snap.EnrichedSubmissions, es)
		subIndex[submissionKey{s.RoundID, s.TrackURI}] = es
	}

	// Pass 2: votes join submissions on (round id, track uri)
	snap.EnrichedVotes = make([]models.EnrichedVote, 0, len(ds.Votes))
	for _, v := range ds.Votes {
		es, ok := subIndex[submissionKey{v.RoundID, v.TrackURI}]
		if !ok {
			return nil, &IntegrityError{Kind: OrphanVote, RoundID: v.RoundID, TrackURI: v.TrackURI}
		}
		snap.EnrichedVotes = append(snap.EnrichedVotes, models.EnrichedVote{
			Vote:        v,
			RoundName:   es.RoundName,
			Title:       es.Title,
			Artist:      es.Artist,
			Comment:     es.Comment,
			SubmitterID: es.SubmitterID,
		})
	}

	// Pass 3: votes join competitors on voter id
	for i := range snap.EnrichedVotes {
		v := &snap.EnrichedVotes[i]
		voter, ok := snap.competitorsByID[v.VoterID]
		if !ok {
			return nil, &IntegrityError{Kind: OrphanVoter, RoundID: v.RoundID, TrackURI: v.TrackURI, RefID: v.VoterID}
		}
		v.VoterName = voter.Name
	}

	return snap, nil
}

// RoundByID returns the round for an id.
func (s *Snapshot) RoundByID(id string) (models.Round, bool) {
	r, ok := s.roundsByID[id]
	return r, ok
}

// CompetitorByID returns the competitor for an id.
func (s *Snapshot) CompetitorByID(id string) (models.Competitor, bool) {
	c, ok := s.competitorsByID[id]
	return c, ok
}

// CompetitorName returns the display name for an id, or the id itself when
// unknown. Only used to label rows that already passed integrity checks.
func (s *Snapshot) CompetitorName(id string) string {
	if c, ok := s.competitorsByID[id]; ok {
		return c.Name
	}
	return id
}

// ResolveRoundSelector maps a presentation-layer selector to a round ID.
// The empty selector means "all rounds". An exact ID match wins; otherwise
// the selector is treated as a display name, which fails with an
// *AmbiguousNameError when the name is shared.
func (s *Snapshot) ResolveRoundSelector(selector string) (string, error) {
	if selector == "" {
		return "", nil
	}
	if _, ok := s.roundsByID[selector]; ok {
		return selector, nil
	}
	ids := s.roundIDsByName[selector]
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("no round with id or name %q", selector)
	case 1:
		return ids[0], nil
	default:
		return "", &AmbiguousNameError{Entity: "round", Name: selector, IDs: ids}
	}
}

// ResolveCompetitorSelector maps a presentation-layer selector to a
// competitor ID, with the same semantics as ResolveRoundSelector.
func (s *Snapshot) ResolveCompetitorSelector(selector string) (string, error) {
	if selector == "" {
		return "", nil
	}
	if _, ok := s.competitorsByID[selector]; ok {
		return selector, nil
	}
	ids := s.competitorsByName[selector]
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("no competitor with id or name %q", selector)
	case 1:
		return ids[0], nil
	default:
		return "", &AmbiguousNameError{Entity: "competitor", Name: selector, IDs: ids}
	}
}
