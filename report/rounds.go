// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"strings"

	"github.com/danielhkuo/league-lens/aggregate"
	"github.com/danielhkuo/league-lens/filter"
	"github.com/danielhkuo/league-lens/models"
)

// keySep joins composite group keys. Unit separator; it cannot appear in
// IDs or Spotify URIs.
const keySep = "\x1f"

// RoundReport builds the round view: one stats row per selected round,
// the top submissions by total points, and voter participation.
func (e *Engine) RoundReport(sel filter.Selection) models.RoundReport {
	views := filter.Apply(e.snap, sel)

	return models.RoundReport{
		PerRoundStats:      e.roundStats(e.selectedRounds(sel), views),
		TopSubmissions:     topSubmissions(views.Votes, topN),
		VoterParticipation: e.voterParticipation(views.Votes),
	}
}

// topSubmissions ranks voted submissions by total points. Submissions
// nobody voted on do not rank; a zero-point table row is the competitor
// report's job, not a "top" list's.
func topSubmissions(votes []models.EnrichedVote, k int) []models.TopSubmission {
	key := func(v models.EnrichedVote) string { return v.RoundID + keySep + v.TrackURI }

	totals := aggregate.GroupSum(votes, key, func(v models.EnrichedVote) float64 { return float64(v.Points) })

	// Representative vote per submission for the display fields.
	byKey := make(map[string]models.EnrichedVote, len(totals))
	for _, v := range votes {
		if _, ok := byKey[key(v)]; !ok {
			byKey[key(v)] = v
		}
	}

	ranked := aggregate.TopK(totals, k)
	top := make([]models.TopSubmission, 0, len(ranked))
	for _, r := range ranked {
		v := byKey[r.Key]
		parts := strings.SplitN(r.Key, keySep, 2)
		top = append(top, models.TopSubmission{
			RoundID:     parts[0],
			TrackURI:    parts[1],
			Title:       v.Title,
			Artist:      v.Artist,
			SubmitterID: v.SubmitterID,
			Comment:     v.Comment,
			TotalPoints: int(r.Value),
		})
	}
	return top
}

// voterParticipation counts votes cast per voter, most active first.
func (e *Engine) voterParticipation(votes []models.EnrichedVote) []models.VoterParticipation {
	counts := aggregate.GroupCount(votes, func(v models.EnrichedVote) string { return v.VoterID })

	ranked := aggregate.TopKCounts(counts, len(counts))
	participation := make([]models.VoterParticipation, 0, len(ranked))
	for _, r := range ranked {
		participation = append(participation, models.VoterParticipation{
			VoterID:   r.Key,
			VoterName: e.snap.CompetitorName(r.Key),
			VotesCast: int(r.Value),
		})
	}
	return participation
}
