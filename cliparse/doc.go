// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Source: csv, sqlite, or postgres (default: csv)
  - DataDir: CSV export directory (default: data)
  - DatabaseURL: sqlite path or postgres DSN (required for SQL sources)
  - Import: seed the database from the CSV export, then exit
  - Report, Round, Competitor: what to compute and for whom
  - SampleSize, SampleSeed: sample-comments tuning
  - JSON: force JSON output

# CLI Flags

	-s            Data source
	-data         CSV export directory
	-d            Database URL
	-import       Import CSV export into the database
	-r            Report name
	-round        Round id or name
	-competitor   Competitor id or name
	-sample-size  Sample comments per report
	-seed         Sample seed
	-json         Always emit JSON

Environment fallbacks: LEAGUE_SOURCE, LEAGUE_DATA_DIR, DATABASE_URL.
*/
package cliparse
