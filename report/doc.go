// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report is the boundary the presentation layer calls.

An Engine wraps one immutable snapshot and returns named aggregate tables
ready for rendering. It only composes the filter and aggregate packages;
no aggregation arithmetic lives here.

# Reports

	engine := report.New(snap)
	overview := engine.Overview()
	rounds := engine.RoundReport(filter.Selection{RoundID: "r1"})
	competitors := engine.CompetitorReport(sel)
	voting := engine.VotingPatterns(sel)
	comments := engine.CommentStats(sel)

Run dispatches by name for the CLI:

	result, err := engine.Run("voting", sel)

# Empty Selections

A selection matching zero rows is not an error: tables come back empty and
optional averages stay nil. The engine never substitutes 0 for an undefined
mean; that rendering choice belongs to the caller.

# Concurrency

Engines and snapshots are read-only after construction, so any number of
reports may run concurrently over the same snapshot without locking.
*/
package report
