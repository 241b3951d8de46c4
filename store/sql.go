// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/league-lens/models"
)

// Database type constants
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open opens a database handle for the given database type and verifies
// the connection. The sqlite driver is modernc.org/sqlite; postgres is
// lib/pq (registered by the caller's blank import).
func Open(databaseType, dsn string) (*sql.DB, error) {
	var driver string
	switch databaseType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", databaseType, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", databaseType, err)
	}
	return db, nil
}

// Load reads all four tables from db. Like LoadDir, it either returns a
// complete dataset or fails with a *LoadError.
func Load(db *sql.DB) (models.Dataset, error) {
	var ds models.Dataset

	competitors, err := loadCompetitorRows(db)
	if err != nil {
		return ds, err
	}
	rounds, err := loadRoundRows(db)
	if err != nil {
		return ds, err
	}
	submissions, err := loadSubmissionRows(db)
	if err != nil {
		return ds, err
	}
	votes, err := loadVoteRows(db)
	if err != nil {
		return ds, err
	}

	ds = models.Dataset{
		Competitors: competitors,
		Rounds:      rounds,
		Submissions: submissions,
		Votes:       votes,
	}
	return ds, nil
}

func loadCompetitorRows(db *sql.DB) ([]models.Competitor, error) {
	rows, err := db.Query(`SELECT id, name FROM competitor ORDER BY id`)
	if err != nil {
		return nil, &LoadError{Source: "competitor", Err: err}
	}
	defer rows.Close()

	var competitors []models.Competitor
	for rows.Next() {
		var c models.Competitor
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, &LoadError{Source: "competitor", Err: err}
		}
		competitors = append(competitors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: "competitor", Err: err}
	}
	return competitors, nil
}

func loadRoundRows(db *sql.DB) ([]models.Round, error) {
	rows, err := db.Query(`SELECT id, name, created_at FROM round ORDER BY created_at, id`)
	if err != nil {
		return nil, &LoadError{Source: "round", Err: err}
	}
	defer rows.Close()

	var rounds []models.Round
	i := 0
	for rows.Next() {
		var r models.Round
		var created string
		if err := rows.Scan(&r.ID, &r.Name, &created); err != nil {
			return nil, &LoadError{Source: "round", Err: err}
		}
		r.CreatedAt, err = parseTime("round", i, created)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
		i++
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: "round", Err: err}
	}
	return rounds, nil
}

func loadSubmissionRows(db *sql.DB) ([]models.Submission, error) {
	rows, err := db.Query(`
		SELECT round_id, track_uri, submitter_id, title, artist, comment, created_at
		FROM submission
		ORDER BY created_at, round_id, track_uri
	`)
	if err != nil {
		return nil, &LoadError{Source: "submission", Err: err}
	}
	defer rows.Close()

	var submissions []models.Submission
	i := 0
	for rows.Next() {
		var s models.Submission
		var comment sql.NullString
		var created string
		if err := rows.Scan(&s.RoundID, &s.TrackURI, &s.SubmitterID, &s.Title, &s.Artist, &comment, &created); err != nil {
			return nil, &LoadError{Source: "submission", Err: err}
		}
		s.Comment = comment.String
		s.CreatedAt, err = parseTime("submission", i, created)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
		i++
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: "submission", Err: err}
	}
	return submissions, nil
}

func loadVoteRows(db *sql.DB) ([]models.Vote, error) {
	rows, err := db.Query(`
		SELECT round_id, track_uri, voter_id, points, created_at
		FROM vote
		ORDER BY created_at, round_id, track_uri, voter_id
	`)
	if err != nil {
		return nil, &LoadError{Source: "vote", Err: err}
	}
	defer rows.Close()

	var votes []models.Vote
	i := 0
	for rows.Next() {
		var v models.Vote
		var created string
		if err := rows.Scan(&v.RoundID, &v.TrackURI, &v.VoterID, &v.Points, &created); err != nil {
			return nil, &LoadError{Source: "vote", Err: err}
		}
		if v.Points < 0 {
			return nil, loadErrf("vote", "row %d: negative points value %d", i+1, v.Points)
		}
		v.CreatedAt, err = parseTime("vote", i, created)
		if err != nil {
			return nil, err
		}
		votes = append(votes, v)
		i++
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: "vote", Err: err}
	}
	return votes, nil
}

// InsertDataset writes a dataset into the base tables in one transaction.
// Used by the import flow to seed a SQL source from CSV exports.
func InsertDataset(db *sql.DB, ds models.Dataset) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, c := range ds.Competitors {
		if _, err := tx.Exec(`
			INSERT INTO competitor (id, name) VALUES ($1, $2)
		`, c.ID, c.Name); err != nil {
			return fmt.Errorf("insert competitor %s: %w", c.ID, err)
		}
	}
	for _, r := range ds.Rounds {
		if _, err := tx.Exec(`
			INSERT INTO round (id, name, created_at) VALUES ($1, $2, $3)
		`, r.ID, r.Name, formatTime(r.CreatedAt)); err != nil {
			return fmt.Errorf("insert round %s: %w", r.ID, err)
		}
	}
	for _, s := range ds.Submissions {
		if _, err := tx.Exec(`
			INSERT INTO submission (round_id, track_uri, submitter_id, title, artist, comment, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, s.RoundID, s.TrackURI, s.SubmitterID, s.Title, s.Artist, s.Comment, formatTime(s.CreatedAt)); err != nil {
			return fmt.Errorf("insert submission %s/%s: %w", s.RoundID, s.TrackURI, err)
		}
	}
	for _, v := range ds.Votes {
		if _, err := tx.Exec(`
			INSERT INTO vote (round_id, track_uri, voter_id, points, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, v.RoundID, v.TrackURI, v.VoterID, v.Points, formatTime(v.CreatedAt)); err != nil {
			return fmt.Errorf("insert vote %s/%s by %s: %w", v.RoundID, v.TrackURI, v.VoterID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
