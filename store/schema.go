// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the four base tables.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// Timestamps are stored as RFC 3339 text so the same statements work on
// both SQLite and PostgreSQL. Referential integrity is deliberately not
// declared here; it is validated by the resolver, which reports orphans
// instead of letting the database reject them row by row.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Competitors
CREATE TABLE IF NOT EXISTS competitor (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

-- Rounds
CREATE TABLE IF NOT EXISTS round (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL
);

-- Submissions: a track is unique within a round, not globally
CREATE TABLE IF NOT EXISTS submission (
    round_id TEXT NOT NULL,
    track_uri TEXT NOT NULL,
    submitter_id TEXT NOT NULL,
    title TEXT NOT NULL,
    artist TEXT NOT NULL,
    comment TEXT,
    created_at TEXT NOT NULL,
    PRIMARY KEY (round_id, track_uri)
);

CREATE INDEX IF NOT EXISTS idx_submission_submitter ON submission(submitter_id);

-- Votes: multiple votes per (voter, submission) are allowed by the model
CREATE TABLE IF NOT EXISTS vote (
    round_id TEXT NOT NULL,
    track_uri TEXT NOT NULL,
    voter_id TEXT NOT NULL,
    points INTEGER NOT NULL CHECK (points >= 0),
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_round ON vote(round_id);
CREATE INDEX IF NOT EXISTS idx_vote_voter ON vote(voter_id);
`
