// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"unicode/utf8"

	"github.com/danielhkuo/league-lens/aggregate"
	"github.com/danielhkuo/league-lens/filter"
	"github.com/danielhkuo/league-lens/models"
)

// CommentStats builds the comment-analysis view over the filtered
// submissions: totals, comment rate, average length, per-round counts,
// the most active commenters, and a reproducible sample of comments.
func (e *Engine) CommentStats(sel filter.Selection) models.CommentStatsReport {
	views := filter.Apply(e.snap, sel)
	withComments := commented(views.Submissions)

	rep := models.CommentStatsReport{
		TotalComments:  len(withComments),
		PerRoundCounts: e.commentsPerRound(withComments),
		TopCommenters:  e.topCommenters(withComments),
		SampleComments: sampleComments(withComments, e.SampleSize, e.SampleSeed),
	}

	if len(views.Submissions) > 0 {
		rep.CommentRate = float64(len(withComments)) / float64(len(views.Submissions))
	}
	if len(withComments) > 0 {
		var total int
		for _, s := range withComments {
			total += utf8.RuneCountInString(s.Comment)
		}
		avg := float64(total) / float64(len(withComments))
		rep.AvgCommentLength = &avg
	}
	return rep
}

func (e *Engine) commentsPerRound(withComments []models.EnrichedSubmission) []models.RoundCommentCount {
	counts := aggregate.GroupCount(withComments, func(s models.EnrichedSubmission) string { return s.RoundID })

	perRound := make([]models.RoundCommentCount, 0, len(counts))
	for _, r := range e.snap.Rounds {
		n, ok := counts[r.ID]
		if !ok {
			continue
		}
		perRound = append(perRound, models.RoundCommentCount{
			RoundID:   r.ID,
			RoundName: r.Name,
			Comments:  n,
		})
	}
	return perRound
}

func (e *Engine) topCommenters(withComments []models.EnrichedSubmission) []models.CommenterCount {
	counts := aggregate.GroupCount(withComments, func(s models.EnrichedSubmission) string { return s.SubmitterID })

	ranked := aggregate.TopKCounts(counts, topN)
	commenters := make([]models.CommenterCount, 0, len(ranked))
	for _, r := range ranked {
		commenters = append(commenters, models.CommenterCount{
			CompetitorID: r.Key,
			Name:         e.snap.CompetitorName(r.Key),
			Comments:     int(r.Value),
		})
	}
	return commenters
}

func sampleComments(withComments []models.EnrichedSubmission, n int, seed int64) []models.SampleComment {
	sampled := aggregate.Sample(withComments, n, seed)

	samples := make([]models.SampleComment, 0, len(sampled))
	for _, s := range sampled {
		samples = append(samples, models.SampleComment{
			RoundName: s.RoundName,
			Title:     s.Title,
			Artist:    s.Artist,
			Comment:   s.Comment,
		})
	}
	return samples
}
