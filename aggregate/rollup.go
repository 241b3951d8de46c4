// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import "github.com/danielhkuo/league-lens/models"

// sumCount accumulates a points total and row count for one group.
type sumCount struct {
	sum   int
	count int
}

// Rollup computes the per-competitor summary: submissions, points received
// (votes joined to the competitor's submissions), votes cast, points given,
// comments. Pre-aggregates each table in a single pass keyed by competitor,
// then rolls up in O(1) per competitor, O(|competitors| + |submissions| +
// |votes|) overall instead of rescanning the vote table per competitor.
//
// Average fields stay nil for empty groups. An abstaining voter and a
// harshly-scoring voter are different competitors; only the display layer
// may ever collapse nil to 0.
func Rollup(competitors []models.Competitor, submissions []models.EnrichedSubmission, votes []models.EnrichedVote) []models.CompetitorRollup {
	subCounts := make(map[string]int, len(competitors))
	commentCounts := make(map[string]int, len(competitors))
	for _, s := range submissions {
		subCounts[s.SubmitterID]++
		if s.HasComment() {
			commentCounts[s.SubmitterID]++
		}
	}

	received := make(map[string]sumCount, len(competitors))
	given := make(map[string]sumCount, len(competitors))
	for _, v := range votes {
		r := received[v.SubmitterID]
		r.sum += v.Points
		r.count++
		received[v.SubmitterID] = r

		g := given[v.VoterID]
		g.sum += v.Points
		g.count++
		given[v.VoterID] = g
	}

	rollups := make([]models.CompetitorRollup, 0, len(competitors))
	for _, c := range competitors {
		recv := received[c.ID]
		give := given[c.ID]
		rollups = append(rollups, models.CompetitorRollup{
			CompetitorID:      c.ID,
			Name:              c.Name,
			SubmissionCount:   subCounts[c.ID],
			PointsReceived:    recv.sum,
			AvgPointsReceived: avgOf(recv),
			VotesCast:         give.count,
			AvgPointsGiven:    avgOf(give),
			CommentCount:      commentCounts[c.ID],
		})
	}
	return rollups
}

// avgOf returns the group mean, or nil for an empty group.
func avgOf(sc sumCount) *float64 {
	if sc.count == 0 {
		return nil
	}
	avg := float64(sc.sum) / float64(sc.count)
	return &avg
}
