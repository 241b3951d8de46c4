// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"sort"
	"strconv"

	"github.com/danielhkuo/league-lens/aggregate"
	"github.com/danielhkuo/league-lens/filter"
	"github.com/danielhkuo/league-lens/models"
)

// Overview builds the league-wide overview: headline counts, per-round
// stats, voting activity per day, the points distribution, and the most
// submitted artists. Always unfiltered; it describes the whole league.
func (e *Engine) Overview() models.OverviewReport {
	views := filter.Apply(e.snap, filter.Selection{})

	return models.OverviewReport{
		Metrics:             e.OverviewMetrics(),
		SubmissionsPerRound: e.roundStats(e.snap.Rounds, views),
		VotesOverTime:       votesOverTime(views.Votes),
		PointsDistribution:  pointsDistribution(views.Votes),
		TopArtists:          topArtists(views.Submissions),
	}
}

// roundStats computes one stats row per round from already-filtered views.
// Rounds with no filtered rows still get a row (zero counts, nil average).
func (e *Engine) roundStats(rounds []models.Round, views filter.Views) []models.RoundStats {
	subCounts := aggregate.GroupCount(views.Submissions, func(s models.EnrichedSubmission) string { return s.RoundID })
	voteCounts := aggregate.GroupCount(views.Votes, func(v models.EnrichedVote) string { return v.RoundID })
	avgPoints := aggregate.GroupMean(views.Votes,
		func(v models.EnrichedVote) string { return v.RoundID },
		func(v models.EnrichedVote) float64 { return float64(v.Points) },
	)
	commentCounts := aggregate.GroupCount(commented(views.Submissions), func(s models.EnrichedSubmission) string { return s.RoundID })

	stats := make([]models.RoundStats, 0, len(rounds))
	for _, r := range rounds {
		stats = append(stats, models.RoundStats{
			RoundID:         r.ID,
			RoundName:       r.Name,
			SubmissionCount: subCounts[r.ID],
			VoteCount:       voteCounts[r.ID],
			AvgPoints:       ptrAt(avgPoints, r.ID),
			CommentCount:    commentCounts[r.ID],
		})
	}
	return stats
}

func votesOverTime(votes []models.EnrichedVote) []models.DayCount {
	counts := aggregate.GroupCount(votes, func(v models.EnrichedVote) string {
		return v.CreatedAt.Format("2006-01-02")
	})

	days := make([]models.DayCount, 0, len(counts))
	for date, n := range counts {
		days = append(days, models.DayCount{Date: date, Votes: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

func pointsDistribution(votes []models.EnrichedVote) []models.PointsBucket {
	counts := aggregate.GroupCount(votes, func(v models.EnrichedVote) string {
		return strconv.Itoa(v.Points)
	})

	buckets := make([]models.PointsBucket, 0, len(counts))
	for key, n := range counts {
		points, _ := strconv.Atoi(key) // keys were produced by Itoa above
		buckets = append(buckets, models.PointsBucket{Points: points, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Points < buckets[j].Points })
	return buckets
}

func topArtists(submissions []models.EnrichedSubmission) []models.ArtistCount {
	counts := aggregate.GroupCount(submissions, func(s models.EnrichedSubmission) string { return s.Artist })

	ranked := aggregate.TopKCounts(counts, topN)
	artists := make([]models.ArtistCount, 0, len(ranked))
	for _, r := range ranked {
		artists = append(artists, models.ArtistCount{Artist: r.Key, Submissions: int(r.Value)})
	}
	return artists
}

// commented returns the submissions carrying a non-empty comment.
func commented(submissions []models.EnrichedSubmission) []models.EnrichedSubmission {
	out := make([]models.EnrichedSubmission, 0, len(submissions))
	for _, s := range submissions {
		if s.HasComment() {
			out = append(out, s)
		}
	}
	return out
}
