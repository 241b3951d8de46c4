// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"testing"
	"time"

	"github.com/danielhkuo/league-lens/league"
	"github.com/danielhkuo/league-lens/models"
)

// BaseTime anchors fixture timestamps so date-grouped aggregates are stable.
var BaseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// Competitor builds a competitor row.
func Competitor(id, name string) models.Competitor {
	return models.Competitor{ID: id, Name: name}
}

// Round builds a round row; day offsets keep creation order deterministic.
func Round(id, name string, dayOffset int) models.Round {
	return models.Round{ID: id, Name: name, CreatedAt: BaseTime.AddDate(0, 0, dayOffset)}
}

// Submission builds a submission row.
func Submission(roundID, trackURI, submitterID, title, artist, comment string, dayOffset int) models.Submission {
	return models.Submission{
		RoundID:     roundID,
		TrackURI:    trackURI,
		SubmitterID: submitterID,
		Title:       title,
		Artist:      artist,
		Comment:     comment,
		CreatedAt:   BaseTime.AddDate(0, 0, dayOffset),
	}
}

// Vote builds a vote row.
func Vote(roundID, trackURI, voterID string, points int, dayOffset int) models.Vote {
	return models.Vote{
		RoundID:   roundID,
		TrackURI:  trackURI,
		VoterID:   voterID,
		Points:    points,
		CreatedAt: BaseTime.AddDate(0, 0, dayOffset),
	}
}

// FixtureDataset is the standard small league: 3 competitors, 2 rounds,
// 5 submissions, 8 votes. Track "spotify:track:a" is deliberately
// resubmitted in round r2 by a different competitor, so anything joining
// on track URI alone (instead of (round, track)) breaks on this fixture.
func FixtureDataset() models.Dataset {
	return models.Dataset{
		Competitors: []models.Competitor{
			Competitor("c1", "Alice"),
			Competitor("c2", "Bob"),
			Competitor("c3", "Carol"),
		},
		Rounds: []models.Round{
			Round("r1", "Covers", 0),
			Round("r2", "One-Hit Wonders", 7),
		},
		Submissions: []models.Submission{
			Submission("r1", "spotify:track:a", "c1", "Hurt", "Johnny Cash", "brutal rendition", 1),
			Submission("r1", "spotify:track:b", "c2", "Respect", "Aretha Franklin", "", 1),
			Submission("r1", "spotify:track:c", "c3", "Valerie", "Amy Winehouse", "late era gem", 2),
			Submission("r2", "spotify:track:a", "c2", "Hurt", "Johnny Cash", "yes, again", 8),
			Submission("r2", "spotify:track:d", "c1", "Come On Eileen", "Dexys Midnight Runners", "", 8),
		},
		Votes: []models.Vote{
			Vote("r1", "spotify:track:a", "c2", 3, 3),
			Vote("r1", "spotify:track:a", "c3", 2, 3),
			Vote("r1", "spotify:track:b", "c1", 1, 4),
			Vote("r1", "spotify:track:b", "c3", 3, 4),
			Vote("r1", "spotify:track:c", "c1", 2, 4),
			Vote("r1", "spotify:track:c", "c2", 1, 5),
			Vote("r2", "spotify:track:a", "c1", 2, 10),
			Vote("r2", "spotify:track:d", "c3", 3, 10),
		},
	}
}

// MustResolve resolves a dataset or fails the test.
func MustResolve(t *testing.T, ds models.Dataset) *league.Snapshot {
	t.Helper()

	snap, err := league.Resolve(ds)
	if err != nil {
		t.Fatalf("Failed to resolve fixture dataset: %v", err)
	}
	return snap
}
