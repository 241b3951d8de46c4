// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/league-lens/models"
)

// CSV file names inside a data directory, matching the Music League export.
const (
	CompetitorsFile = "competitors.csv"
	RoundsFile      = "rounds.csv"
	SubmissionsFile = "submissions.csv"
	VotesFile       = "votes.csv"
)

// timeFormats are tried in order when parsing Created columns.
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadDir loads all four tables from CSV files in dir.
// Any missing file, missing column, unparsable timestamp, or invalid points
// value fails the whole load with a *LoadError.
func LoadDir(dir string) (models.Dataset, error) {
	var ds models.Dataset

	competitors, err := loadCompetitors(filepath.Join(dir, CompetitorsFile))
	if err != nil {
		return ds, err
	}
	rounds, err := loadRounds(filepath.Join(dir, RoundsFile))
	if err != nil {
		return ds, err
	}
	submissions, err := loadSubmissions(filepath.Join(dir, SubmissionsFile))
	if err != nil {
		return ds, err
	}
	votes, err := loadVotes(filepath.Join(dir, VotesFile))
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

// table is one parsed CSV file with header-based column access.
type table struct {
	source string
	cols   map[string]int
	rows   [][]string
}

func readTable(path string) (*table, error) {
	source := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows surface as missing-field errors below
	records, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	if len(records) == 0 {
		return nil, loadErrf(source, "file has no header row")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}

	return &table{source: source, cols: cols, rows: records[1:]}, nil
}

// field returns the named column of a row. Fails if the column is absent
// from the header or the row is too short to hold it.
func (t *table) field(row int, name string) (string, error) {
	idx, ok := t.cols[name]
	if !ok {
		return "", loadErrf(t.source, "missing required column %q", name)
	}
	rec := t.rows[row]
	if idx >= len(rec) {
		return "", loadErrf(t.source, "row %d: missing field %q", row+2, name)
	}
	return strings.TrimSpace(rec[idx]), nil
}

// requiredField is field plus a non-empty check, for identity and key columns.
func (t *table) requiredField(row int, name string) (string, error) {
	v, err := t.field(row, name)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", loadErrf(t.source, "row %d: empty value for required column %q", row+2, name)
	}
	return v, nil
}

func (t *table) timeField(row int, name string) (time.Time, error) {
	v, err := t.requiredField(row, name)
	if err != nil {
		return time.Time{}, err
	}
	return parseTime(t.source, row, v)
}

func parseTime(source string, row int, v string) (time.Time, error) {
	for _, layout := range timeFormats {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, loadErrf(source, "row %d: unparsable timestamp %q", row+2, v)
}

func parsePoints(source string, row int, v string) (int, error) {
	points, err := strconv.Atoi(v)
	if err != nil {
		return 0, loadErrf(source, "row %d: invalid points value %q", row+2, v)
	}
	if points < 0 {
		return 0, loadErrf(source, "row %d: negative points value %d", row+2, points)
	}
	return points, nil
}

func loadCompetitors(path string) ([]models.Competitor, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	competitors := make([]models.Competitor, 0, len(t.rows))
	for i := range t.rows {
		id, err := t.requiredField(i, "ID")
		if err != nil {
			return nil, err
		}
		name, err := t.requiredField(i, "Name")
		if err != nil {
			return nil, err
		}
		competitors = append(competitors, models.Competitor{ID: id, Name: name})
	}
	return competitors, nil
}

func loadRounds(path string) ([]models.Round, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	rounds := make([]models.Round, 0, len(t.rows))
	for i := range t.rows {
		id, err := t.requiredField(i, "ID")
		if err != nil {
			return nil, err
		}
		name, err := t.requiredField(i, "Name")
		if err != nil {
			return nil, err
		}
		created, err := t.timeField(i, "Created")
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, models.Round{ID: id, Name: name, CreatedAt: created})
	}
	return rounds, nil
}

func loadSubmissions(path string) ([]models.Submission, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	submissions := make([]models.Submission, 0, len(t.rows))
	for i := range t.rows {
		roundID, err := t.requiredField(i, "Round ID")
		if err != nil {
			return nil, err
		}
		trackURI, err := t.requiredField(i, "Spotify URI")
		if err != nil {
			return nil, err
		}
		submitterID, err := t.requiredField(i, "Submitter ID")
		if err != nil {
			return nil, err
		}
		title, err := t.field(i, "Title")
		if err != nil {
			return nil, err
		}
		artist, err := t.field(i, "Artist(s)")
		if err != nil {
			return nil, err
		}
		comment, err := t.field(i, "Comment")
		if err != nil {
			return nil, err
		}
		created, err := t.timeField(i, "Created")
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, models.Submission{
			RoundID:     roundID,
			TrackURI:    trackURI,
			SubmitterID: submitterID,
			Title:       title,
			Artist:      artist,
			Comment:     comment,
			CreatedAt:   created,
		})
	}
	return submissions, nil
}

func loadVotes(path string) ([]models.Vote, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	votes := make([]models.Vote, 0, len(t.rows))
	for i := range t.rows {
		roundID, err := t.requiredField(i, "Round ID")
		if err != nil {
			return nil, err
		}
		trackURI, err := t.requiredField(i, "Spotify URI")
		if err != nil {
			return nil, err
		}
		voterID, err := t.requiredField(i, "Voter ID")
		if err != nil {
			return nil, err
		}
		pointsStr, err := t.requiredField(i, "Points Assigned")
		if err != nil {
			return nil, err
		}
		points, err := parsePoints(t.source, i, pointsStr)
		if err != nil {
			return nil, err
		}
		created, err := t.timeField(i, "Created")
		if err != nil {
			return nil, err
		}
		votes = append(votes, models.Vote{
			RoundID:   roundID,
			TrackURI:  trackURI,
			VoterID:   voterID,
			Points:    points,
			CreatedAt: created,
		})
	}
	return votes, nil
}
