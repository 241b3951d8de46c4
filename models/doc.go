// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the base entities, derived views, and report tables.

# Base Entities

The four source relations, immutable once loaded:

  - Competitor: id, name
  - Round: id, name, created_at
  - Submission: (round_id, track_uri) natural key, submitter, title, artist, comment
  - Vote: round_id, track_uri, voter_id, points, created_at

A submission is identified by (round_id, track_uri): the same track can be
resubmitted in a later round, so track_uri alone is not unique. Multiple votes
per (voter, submission) are allowed; aggregation works over raw rows.

# Derived Views

Denormalized joins carrying display-ready foreign fields:

  - EnrichedSubmission: Submission + round_name
  - EnrichedVote: Vote + round_name, track title/artist/comment, submitter_id, voter_name

# Report Tables

Plain aggregate tables returned by the report package, ready for rendering:

  - OverviewReport: headline counts plus league-wide distributions
  - RoundReport: per-round stats, top submissions, voter participation
  - CompetitorReport: rollups, submission performance, voting by round
  - VotingPatternsReport: voter averages, consistency, voter x round matrix
  - CommentStatsReport: comment totals, rate, per-round counts, samples

Optional averages are *float64 and nil when the underlying group is empty.
"No votes" and "average of 0" are different facts; the zero-vs-blank rendering
choice belongs to the presentation layer.
*/
package models
