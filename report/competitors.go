// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"github.com/danielhkuo/league-lens/aggregate"
	"github.com/danielhkuo/league-lens/filter"
	"github.com/danielhkuo/league-lens/models"
)

// CompetitorReport builds the competitor view: rollup rows, per-submission
// performance, and voting behavior by round.
//
// The rollup applies only the round filter and then narrows output rows:
// points received must come from every voter, so restricting the vote view
// to votes the competitor cast would zero out their own received totals.
// Submission performance and voting-by-round use the full selection, where
// the cast/submitted asymmetry is exactly what those tables mean.
func (e *Engine) CompetitorReport(sel filter.Selection) models.CompetitorReport {
	roundViews := filter.Apply(e.snap, filter.Selection{RoundID: sel.RoundID})
	views := filter.Apply(e.snap, sel)

	rollups := aggregate.Rollup(e.snap.Competitors, roundViews.Submissions, roundViews.Votes)
	if !sel.IsAllCompetitors() {
		narrowed := rollups[:0:0]
		for _, r := range rollups {
			if r.CompetitorID == sel.CompetitorID {
				narrowed = append(narrowed, r)
			}
		}
		rollups = narrowed
	}

	return models.CompetitorReport{
		PerCompetitorStats:    rollups,
		SubmissionPerformance: submissionPerformance(views.Submissions, roundViews.Votes),
		VotingByRound:         e.votingByRound(views.Votes),
	}
}

// submissionPerformance reports total points and vote count for each
// selected submission. Unvoted submissions stay in the table with explicit
// zeros. That is the display contract for performance rows, unlike
// averages, which stay undefined.
func submissionPerformance(submissions []models.EnrichedSubmission, votes []models.EnrichedVote) []models.SubmissionPerformance {
	key := func(roundID, trackURI string) string { return roundID + keySep + trackURI }

	totals := aggregate.GroupSum(votes,
		func(v models.EnrichedVote) string { return key(v.RoundID, v.TrackURI) },
		func(v models.EnrichedVote) float64 { return float64(v.Points) },
	)
	counts := aggregate.GroupCount(votes, func(v models.EnrichedVote) string { return key(v.RoundID, v.TrackURI) })

	perf := make([]models.SubmissionPerformance, 0, len(submissions))
	for _, s := range submissions {
		k := key(s.RoundID, s.TrackURI)
		perf = append(perf, models.SubmissionPerformance{
			RoundID:     s.RoundID,
			RoundName:   s.RoundName,
			TrackURI:    s.TrackURI,
			Title:       s.Title,
			Artist:      s.Artist,
			TotalPoints: int(totals[k]),
			VoteCount:   counts[k],
		})
	}
	return perf
}

// votingByRound summarizes the filtered votes per round: mean points given
// and votes cast, in round load order. Rounds without votes are omitted:
// the group is empty, so its mean is undefined.
func (e *Engine) votingByRound(votes []models.EnrichedVote) []models.VoterRoundStats {
	means := aggregate.GroupMean(votes,
		func(v models.EnrichedVote) string { return v.RoundID },
		func(v models.EnrichedVote) float64 { return float64(v.Points) },
	)
	counts := aggregate.GroupCount(votes, func(v models.EnrichedVote) string { return v.RoundID })

	stats := make([]models.VoterRoundStats, 0, len(means))
	for _, r := range e.snap.Rounds {
		mean, ok := means[r.ID]
		if !ok {
			continue
		}
		stats = append(stats, models.VoterRoundStats{
			RoundID:   r.ID,
			RoundName: r.Name,
			AvgPoints: mean,
			VotesCast: counts[r.ID],
		})
	}
	return stats
}
