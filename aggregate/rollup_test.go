// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"testing"

	"github.com/danielhkuo/league-lens/models"
)

func enrichedSub(roundID, trackURI, submitterID, comment string) models.EnrichedSubmission {
	return models.EnrichedSubmission{
		Submission: models.Submission{
			RoundID:     roundID,
			TrackURI:    trackURI,
			SubmitterID: submitterID,
			Comment:     comment,
		},
	}
}

func enrichedVote(roundID, trackURI, voterID, submitterID string, points int) models.EnrichedVote {
	return models.EnrichedVote{
		Vote: models.Vote{
			RoundID:  roundID,
			TrackURI: trackURI,
			VoterID:  voterID,
			Points:   points,
		},
		SubmitterID: submitterID,
	}
}

func TestRollup(t *testing.T) {
	competitors := []models.Competitor{
		{ID: "A", Name: "Alice"},
		{ID: "B", Name: "Bob"},
		{ID: "C", Name: "Carol"},
	}
	submissions := []models.EnrichedSubmission{
		enrichedSub("R1", "S1", "A", ""),
		enrichedSub("R1", "S2", "B", "check this out"),
	}
	votes := []models.EnrichedVote{
		enrichedVote("R1", "S1", "C", "A", 5),
		enrichedVote("R1", "S2", "C", "B", 3),
		enrichedVote("R1", "S2", "A", "B", 4),
	}

	rollups := Rollup(competitors, submissions, votes)
	if len(rollups) != 3 {
		t.Fatalf("Expected 3 rollup rows, got %d", len(rollups))
	}

	byID := make(map[string]models.CompetitorRollup, len(rollups))
	for _, r := range rollups {
		byID[r.CompetitorID] = r
	}

	a := byID["A"]
	if a.SubmissionCount != 1 {
		t.Errorf("Expected A submissions 1, got %d", a.SubmissionCount)
	}
	if a.PointsReceived != 5 {
		t.Errorf("Expected A points received 5, got %d", a.PointsReceived)
	}
	if a.VotesCast != 1 {
		t.Errorf("Expected A votes cast 1, got %d", a.VotesCast)
	}

	b := byID["B"]
	if b.PointsReceived != 7 {
		t.Errorf("Expected B points received 7 (3 from C + 4 from A), got %d", b.PointsReceived)
	}
	if b.AvgPointsReceived == nil || *b.AvgPointsReceived != 3.5 {
		t.Errorf("Expected B avg points received 3.5, got %v", b.AvgPointsReceived)
	}
	if b.CommentCount != 1 {
		t.Errorf("Expected B comment count 1, got %d", b.CommentCount)
	}

	c := byID["C"]
	if c.VotesCast != 2 {
		t.Errorf("Expected C votes cast 2, got %d", c.VotesCast)
	}
	if c.AvgPointsGiven == nil || *c.AvgPointsGiven != 4.0 {
		t.Errorf("Expected C avg points given 4.0, got %v", c.AvgPointsGiven)
	}
	// C never submitted, so received stats are undefined, not 0
	if c.AvgPointsReceived != nil {
		t.Errorf("Expected C avg points received to be undefined, got %v", *c.AvgPointsReceived)
	}
}

func TestRollup_UndefinedAveragesStayNil(t *testing.T) {
	competitors := []models.Competitor{{ID: "A", Name: "Alice"}}
	submissions := []models.EnrichedSubmission{enrichedSub("R1", "S1", "A", "")}

	// A submitted but nobody voted, and A cast no votes
	rollups := Rollup(competitors, submissions, nil)

	a := rollups[0]
	if a.AvgPointsReceived != nil {
		t.Errorf("Expected nil avg points received with no votes, got %v", *a.AvgPointsReceived)
	}
	if a.AvgPointsGiven != nil {
		t.Errorf("Expected nil avg points given with no votes cast, got %v", *a.AvgPointsGiven)
	}
	if a.PointsReceived != 0 || a.VotesCast != 0 {
		t.Errorf("Expected zero totals, got received=%d cast=%d", a.PointsReceived, a.VotesCast)
	}
}

func TestRollup_EmptyInput(t *testing.T) {
	rollups := Rollup(nil, nil, nil)
	if len(rollups) != 0 {
		t.Errorf("Expected no rollup rows, got %d", len(rollups))
	}
}
