package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Source type constants
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

type Config struct {
	Source      string // csv, sqlite, or postgres
	DataDir     string // CSV export directory (csv source, and -import input)
	DatabaseURL string // DSN for sqlite/postgres sources
	Import      bool   // seed the database from DataDir, then exit

	Report     string // report name, see the report package
	Round      string // round selector: id or name, empty for all
	Competitor string // competitor selector: id or name, empty for all

	SampleSize int   // sample comments per report
	SampleSeed int64 // 0 = time-based

	JSON bool // force JSON output even on a terminal
}

// ParseFlags validates flags and picks source defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("league-lens", flag.ContinueOnError)

	// Data source (can be CLI args or env)
	fs.StringVar(&cfg.Source, "s", "", "Data source: csv, sqlite, or postgres")
	fs.StringVar(&cfg.DataDir, "data", "", "CSV export directory")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres DSN)")
	fs.BoolVar(&cfg.Import, "import", false, "Import the CSV export into the database and exit")

	// Report selection
	fs.StringVar(&cfg.Report, "r", "overview", "Report to run")
	fs.StringVar(&cfg.Round, "round", "", "Round id or name (default: all rounds)")
	fs.StringVar(&cfg.Competitor, "competitor", "", "Competitor id or name (default: all competitors)")

	// Output tuning
	fs.IntVar(&cfg.SampleSize, "sample-size", 5, "Sample comments per comment report")
	fs.Int64Var(&cfg.SampleSeed, "seed", 0, "Sample seed (0 = time-based)")
	fs.BoolVar(&cfg.JSON, "json", false, "Always emit JSON, even on a terminal")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Source == "" {
		cfg.Source = os.Getenv("LEAGUE_SOURCE")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("LEAGUE_DATA_DIR")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Default source: csv when a data dir is set, otherwise whatever the
	// database URL implies
	if cfg.Source == "" {
		if cfg.DataDir != "" {
			cfg.Source = SourceCSV
		} else if cfg.DatabaseURL != "" {
			cfg.Source = SourceSQLite
		} else {
			cfg.Source = SourceCSV
			cfg.DataDir = "data"
		}
	}

	switch cfg.Source {
	case SourceCSV:
		if cfg.DataDir == "" {
			cfg.DataDir = "data"
		}
		if cfg.Import {
			return Config{}, errors.New("-import needs a database source (use -s sqlite or -s postgres)")
		}
	case SourceSQLite, SourcePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		if cfg.Import && cfg.DataDir == "" {
			return Config{}, errors.New("-import needs a CSV export directory (use -data or LEAGUE_DATA_DIR env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown source %q (want csv, sqlite, or postgres)", cfg.Source)
	}

	return cfg, nil
}
