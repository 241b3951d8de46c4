// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"sort"

	"github.com/danielhkuo/league-lens/aggregate"
	"github.com/danielhkuo/league-lens/filter"
	"github.com/danielhkuo/league-lens/models"
)

// VotingPatterns builds the voting-behavior view: average points per voter,
// per-voter consistency (mean vs sample standard deviation), and the dense
// voter x round average-points matrix. When no specific round is selected
// it also includes the per-round points comparison.
func (e *Engine) VotingPatterns(sel filter.Selection) models.VotingPatternsReport {
	views := filter.Apply(e.snap, sel)

	rep := models.VotingPatternsReport{
		AvgPointsPerVoter: e.avgPointsPerVoter(views.Votes),
		Consistency:       e.voterConsistency(views.Votes),
		VotingMatrix: aggregate.Pivot(views.Votes,
			func(v models.EnrichedVote) string { return v.VoterID },
			func(v models.EnrichedVote) string { return v.RoundID },
			func(v models.EnrichedVote) float64 { return float64(v.Points) },
			0.0,
		),
	}

	if sel.IsAllRounds() {
		rep.PointsByRound = e.pointsByRound(views.Votes)
	}
	return rep
}

func (e *Engine) avgPointsPerVoter(votes []models.EnrichedVote) []models.VoterAverage {
	means := aggregate.GroupMean(votes,
		func(v models.EnrichedVote) string { return v.VoterID },
		func(v models.EnrichedVote) float64 { return float64(v.Points) },
	)
	counts := aggregate.GroupCount(votes, func(v models.EnrichedVote) string { return v.VoterID })

	ranked := aggregate.TopK(means, len(means))
	averages := make([]models.VoterAverage, 0, len(ranked))
	for _, r := range ranked {
		averages = append(averages, models.VoterAverage{
			VoterID:   r.Key,
			VoterName: e.snap.CompetitorName(r.Key),
			AvgPoints: r.Value,
			VotesCast: counts[r.Key],
		})
	}
	return averages
}

func (e *Engine) voterConsistency(votes []models.EnrichedVote) []models.VoterConsistency {
	stats := aggregate.GroupMeanStdDev(votes,
		func(v models.EnrichedVote) string { return v.VoterID },
		func(v models.EnrichedVote) float64 { return float64(v.Points) },
	)

	consistency := make([]models.VoterConsistency, 0, len(stats))
	for voterID, s := range stats {
		consistency = append(consistency, models.VoterConsistency{
			VoterID:   voterID,
			VoterName: e.snap.CompetitorName(voterID),
			Mean:      s.Mean,
			StdDev:    s.StdDev,
			VotesCast: s.Count,
		})
	}
	sort.Slice(consistency, func(i, j int) bool { return consistency[i].VoterID < consistency[j].VoterID })
	return consistency
}

// pointsByRound compares rounds by mean points and vote volume, in round
// load order. Rounds without votes are omitted.
func (e *Engine) pointsByRound(votes []models.EnrichedVote) []models.RoundPoints {
	means := aggregate.GroupMean(votes,
		func(v models.EnrichedVote) string { return v.RoundID },
		func(v models.EnrichedVote) float64 { return float64(v.Points) },
	)
	counts := aggregate.GroupCount(votes, func(v models.EnrichedVote) string { return v.RoundID })

	points := make([]models.RoundPoints, 0, len(means))
	for _, r := range e.snap.Rounds {
		mean, ok := means[r.ID]
		if !ok {
			continue
		}
		points = append(points, models.RoundPoints{
			RoundID:   r.ID,
			RoundName: r.Name,
			AvgPoints: mean,
			VoteCount: counts[r.ID],
		})
	}
	return points
}
