// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"time"

	"github.com/danielhkuo/league-lens/filter"
	"github.com/danielhkuo/league-lens/league"
	"github.com/danielhkuo/league-lens/models"
)

// How many entries ranked tables carry, matching the dashboard's top-10 lists.
const topN = 10

// DefaultSampleSize is how many sample comments a comment report carries.
const DefaultSampleSize = 5

// Engine is the boundary the presentation layer calls. It composes the
// filter and aggregate packages over one immutable snapshot and performs
// no aggregation arithmetic of its own.
type Engine struct {
	snap *league.Snapshot

	// SampleSize and SampleSeed control the sample-comments table.
	// Tests pin SampleSeed for reproducible samples.
	SampleSize int
	SampleSeed int64
}

// New returns an engine over snap with default sampling.
func New(snap *league.Snapshot) *Engine {
	return &Engine{
		snap:       snap,
		SampleSize: DefaultSampleSize,
		SampleSeed: time.Now().UnixNano(),
	}
}

// Report names accepted by Run.
const (
	ReportOverview    = "overview"
	ReportRounds      = "rounds"
	ReportCompetitors = "competitors"
	ReportVoting      = "voting"
	ReportComments    = "comments"
)

// Names lists the reports Run accepts, for CLI help output.
func Names() []string {
	return []string{ReportOverview, ReportRounds, ReportCompetitors, ReportVoting, ReportComments}
}

// Run dispatches a named report with the current selection.
func (e *Engine) Run(name string, sel filter.Selection) (interface{}, error) {
	switch name {
	case ReportOverview:
		return e.Overview(), nil
	case ReportRounds:
		return e.RoundReport(sel), nil
	case ReportCompetitors:
		return e.CompetitorReport(sel), nil
	case ReportVoting:
		return e.VotingPatterns(sel), nil
	case ReportComments:
		return e.CommentStats(sel), nil
	default:
		return nil, fmt.Errorf("unknown report %q (want one of %v)", name, Names())
	}
}

// OverviewMetrics returns the headline counts for the whole league.
func (e *Engine) OverviewMetrics() models.OverviewMetrics {
	return models.OverviewMetrics{
		RoundCount:      len(e.snap.Rounds),
		CompetitorCount: len(e.snap.Competitors),
		SubmissionCount: len(e.snap.Submissions),
		VoteCount:       len(e.snap.Votes),
	}
}

// selectedRounds returns the rounds a selection covers, in load order.
func (e *Engine) selectedRounds(sel filter.Selection) []models.Round {
	if sel.IsAllRounds() {
		return e.snap.Rounds
	}
	if r, ok := e.snap.RoundByID(sel.RoundID); ok {
		return []models.Round{r}
	}
	return nil
}

// ptrAt returns a pointer to the map entry for k, or nil when the group
// is absent. Undefined means stay nil.
func ptrAt(m map[string]float64, k string) *float64 {
	if v, ok := m[k]; ok {
		return &v
	}
	return nil
}
