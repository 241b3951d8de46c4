// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Base entities, immutable once loaded.

type Competitor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Round struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Submission struct {
	RoundID     string    `json:"round_id"`
	TrackURI    string    `json:"track_uri"`
	SubmitterID string    `json:"submitter_id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasComment reports whether the submitter attached a non-empty comment.
func (s Submission) HasComment() bool {
	return s.Comment != ""
}

type Vote struct {
	RoundID   string    `json:"round_id"`
	TrackURI  string    `json:"track_uri"`
	VoterID   string    `json:"voter_id"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// Dataset is everything loaded from one source. All four tables are present
// or the load fails; callers never see a partially loaded dataset.
type Dataset struct {
	Competitors []Competitor `json:"competitors"`
	Rounds      []Round      `json:"rounds"`
	Submissions []Submission `json:"submissions"`
	Votes       []Vote       `json:"votes"`
}

// Derived views

// EnrichedSubmission is a Submission joined with its Round.
type EnrichedSubmission struct {
	Submission
	RoundName string `json:"round_name"`
}

// EnrichedVote is a Vote joined with its Submission (scoped to the round),
// the submitter, and the voter.
type EnrichedVote struct {
	Vote
	RoundName   string `json:"round_name"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Comment     string `json:"comment,omitempty"`
	SubmitterID string `json:"submitter_id"`
	VoterName   string `json:"voter_name"`
}

// Matrix is a dense row x column grid of aggregated values. Cells for
// (row, col) pairs with no source rows hold Fill, a declared default,
// not "no data". Consumers that must distinguish use coverage counts.
type Matrix struct {
	RowKeys []string                      `json:"row_keys"`
	ColKeys []string                      `json:"col_keys"`
	Cells   map[string]map[string]float64 `json:"cells"`
	Fill    float64                       `json:"fill"`
}

// At returns the cell value, or Fill for keys outside the grid.
func (m Matrix) At(row, col string) float64 {
	if cols, ok := m.Cells[row]; ok {
		if v, ok := cols[col]; ok {
			return v
		}
	}
	return m.Fill
}

// Report tables

type OverviewMetrics struct {
	RoundCount      int `json:"round_count"`
	CompetitorCount int `json:"competitor_count"`
	SubmissionCount int `json:"submission_count"`
	VoteCount       int `json:"vote_count"`
}

type RoundStats struct {
	RoundID         string   `json:"round_id"`
	RoundName       string   `json:"round_name"`
	SubmissionCount int      `json:"submission_count"`
	VoteCount       int      `json:"vote_count"`
	AvgPoints       *float64 `json:"avg_points,omitempty"` // nil when the round has no votes
	CommentCount    int      `json:"comment_count"`
}

type TopSubmission struct {
	RoundID     string `json:"round_id"`
	TrackURI    string `json:"track_uri"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	SubmitterID string `json:"submitter_id"`
	Comment     string `json:"comment,omitempty"`
	TotalPoints int    `json:"total_points"`
}

type VoterParticipation struct {
	VoterID   string `json:"voter_id"`
	VoterName string `json:"voter_name"`
	VotesCast int    `json:"votes_cast"`
}

// CompetitorRollup is the per-competitor summary across all source tables.
// Average fields are nil when their group is empty (no votes received, or
// no votes cast), never a silent 0.
type CompetitorRollup struct {
	CompetitorID      string   `json:"competitor_id"`
	Name              string   `json:"name"`
	SubmissionCount   int      `json:"submission_count"`
	PointsReceived    int      `json:"points_received"`
	AvgPointsReceived *float64 `json:"avg_points_received,omitempty"`
	VotesCast         int      `json:"votes_cast"`
	AvgPointsGiven    *float64 `json:"avg_points_given,omitempty"`
	CommentCount      int      `json:"comment_count"`
}

type SubmissionPerformance struct {
	RoundID     string `json:"round_id"`
	RoundName   string `json:"round_name"`
	TrackURI    string `json:"track_uri"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	TotalPoints int    `json:"total_points"`
	VoteCount   int    `json:"vote_count"`
}

type VoterRoundStats struct {
	RoundID   string  `json:"round_id"`
	RoundName string  `json:"round_name"`
	AvgPoints float64 `json:"avg_points"`
	VotesCast int     `json:"votes_cast"`
}

type VoterAverage struct {
	VoterID   string  `json:"voter_id"`
	VoterName string  `json:"voter_name"`
	AvgPoints float64 `json:"avg_points"`
	VotesCast int     `json:"votes_cast"`
}

type VoterConsistency struct {
	VoterID   string  `json:"voter_id"`
	VoterName string  `json:"voter_name"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	VotesCast int     `json:"votes_cast"`
}

type RoundPoints struct {
	RoundID   string  `json:"round_id"`
	RoundName string  `json:"round_name"`
	AvgPoints float64 `json:"avg_points"`
	VoteCount int     `json:"vote_count"`
}

type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Votes int    `json:"votes"`
}

type PointsBucket struct {
	Points int `json:"points"`
	Count  int `json:"count"`
}

type ArtistCount struct {
	Artist      string `json:"artist"`
	Submissions int    `json:"submissions"`
}

type RoundCommentCount struct {
	RoundID   string `json:"round_id"`
	RoundName string `json:"round_name"`
	Comments  int    `json:"comments"`
}

type CommenterCount struct {
	CompetitorID string `json:"competitor_id"`
	Name         string `json:"name"`
	Comments     int    `json:"comments"`
}

type SampleComment struct {
	RoundName string `json:"round_name"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Comment   string `json:"comment"`
}

// Report envelopes returned by the reporting facade.

type OverviewReport struct {
	Metrics             OverviewMetrics `json:"metrics"`
	SubmissionsPerRound []RoundStats    `json:"submissions_per_round"`
	VotesOverTime       []DayCount      `json:"votes_over_time"`
	PointsDistribution  []PointsBucket  `json:"points_distribution"`
	TopArtists          []ArtistCount   `json:"top_artists"`
}

type RoundReport struct {
	PerRoundStats      []RoundStats         `json:"per_round_stats"`
	TopSubmissions     []TopSubmission      `json:"top_submissions"`
	VoterParticipation []VoterParticipation `json:"voter_participation"`
}

type CompetitorReport struct {
	PerCompetitorStats    []CompetitorRollup      `json:"per_competitor_stats"`
	SubmissionPerformance []SubmissionPerformance `json:"submission_performance"`
	VotingByRound         []VoterRoundStats       `json:"voting_by_round"`
}

type VotingPatternsReport struct {
	AvgPointsPerVoter []VoterAverage     `json:"avg_points_per_voter"`
	Consistency       []VoterConsistency `json:"consistency"`
	VotingMatrix      Matrix             `json:"voting_matrix"`
	PointsByRound     []RoundPoints      `json:"points_by_round,omitempty"`
}

type CommentStatsReport struct {
	TotalComments    int                 `json:"total_comments"`
	CommentRate      float64             `json:"comment_rate"` // fraction of submissions with a comment
	AvgCommentLength *float64            `json:"avg_comment_length,omitempty"`
	PerRoundCounts   []RoundCommentCount `json:"per_round_counts"`
	TopCommenters    []CommenterCount    `json:"top_commenters"`
	SampleComments   []SampleComment     `json:"sample_comments"`
}
