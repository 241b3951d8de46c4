// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"github.com/danielhkuo/league-lens/league"
	"github.com/danielhkuo/league-lens/models"
)

// All selects every round or competitor.
const All = ""

// Selection narrows the enriched views. Zero value selects everything.
type Selection struct {
	RoundID      string
	CompetitorID string
}

// IsAllRounds reports whether no specific round is selected.
func (s Selection) IsAllRounds() bool { return s.RoundID == All }

// IsAllCompetitors reports whether no specific competitor is selected.
func (s Selection) IsAllCompetitors() bool { return s.CompetitorID == All }

// Views is a consistent filtered pair of the two enriched views.
type Views struct {
	Submissions []models.EnrichedSubmission
	Votes       []models.EnrichedVote
}

// Apply restricts the snapshot's enriched views to the selection.
//
// The round filter restricts both views by round id. The competitor filter
// restricts submissions to those the competitor submitted and votes to those
// the competitor cast, NOT votes on their submissions. The two restrictions
// are independent: "my voting behavior" and "my submission performance" are
// different questions and use different compositions.
func Apply(snap *league.Snapshot, sel Selection) Views {
	return Restrict(Views{
		Submissions: snap.EnrichedSubmissions,
		Votes:       snap.EnrichedVotes,
	}, sel)
}

// Restrict applies a selection to an already-materialized view pair.
// Both filters are plain predicate restrictions on disjoint keys, so they
// commute and are idempotent. An empty result is a valid result.
func Restrict(v Views, sel Selection) Views {
	subs := v.Submissions
	votes := v.Votes

	if !sel.IsAllRounds() {
		subs = filterSubmissions(subs, func(s models.EnrichedSubmission) bool {
			return s.RoundID == sel.RoundID
		})
		votes = filterVotes(votes, func(v models.EnrichedVote) bool {
			return v.RoundID == sel.RoundID
		})
	}

	if !sel.IsAllCompetitors() {
		subs = filterSubmissions(subs, func(s models.EnrichedSubmission) bool {
			return s.SubmitterID == sel.CompetitorID
		})
		votes = filterVotes(votes, func(v models.EnrichedVote) bool {
			return v.VoterID == sel.CompetitorID
		})
	}

	return Views{Submissions: subs, Votes: votes}
}

func filterSubmissions(rows []models.EnrichedSubmission, keep func(models.EnrichedSubmission) bool) []models.EnrichedSubmission {
	out := make([]models.EnrichedSubmission, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func filterVotes(rows []models.EnrichedVote, keep func(models.EnrichedVote) bool) []models.EnrichedVote {
	out := make([]models.EnrichedVote, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
