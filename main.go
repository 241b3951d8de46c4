package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mattn/go-isatty"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/league-lens/cliparse"
	"github.com/danielhkuo/league-lens/filter"
	"github.com/danielhkuo/league-lens/league"
	"github.com/danielhkuo/league-lens/models"
	"github.com/danielhkuo/league-lens/report"
	"github.com/danielhkuo/league-lens/store"
)

func main() {
	// .env is optional; real env vars and flags still win
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Import {
		if err := runImport(cfg); err != nil {
			slog.Error("Import failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		slog.Error("Cannot load dataset", "source", cfg.Source, "error", err)
		os.Exit(1)
	}

	snap, err := league.Resolve(ds)
	if err != nil {
		slog.Error("Cannot resolve dataset", "error", err)
		os.Exit(1)
	}

	roundID, err := snap.ResolveRoundSelector(cfg.Round)
	if err != nil {
		slog.Error("Bad round selector", "error", err)
		os.Exit(1)
	}
	competitorID, err := snap.ResolveCompetitorSelector(cfg.Competitor)
	if err != nil {
		slog.Error("Bad competitor selector", "error", err)
		os.Exit(1)
	}
	sel := filter.Selection{RoundID: roundID, CompetitorID: competitorID}

	engine := report.New(snap)
	engine.SampleSize = cfg.SampleSize
	if cfg.SampleSeed != 0 {
		engine.SampleSeed = cfg.SampleSeed
	}

	result, err := engine.Run(cfg.Report, sel)
	if err != nil {
		slog.Error("Cannot run report", "report", cfg.Report, "error", err)
		os.Exit(1)
	}

	if !cfg.JSON && isatty.IsTerminal(os.Stdout.Fd()) {
		printHeader(snap, engine.OverviewMetrics())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("Cannot encode report", "error", err)
		os.Exit(1)
	}
}

func loadDataset(cfg cliparse.Config) (models.Dataset, error) {
	if cfg.Source == cliparse.SourceCSV {
		return store.LoadDir(cfg.DataDir)
	}

	db, err := store.Open(cfg.Source, cfg.DatabaseURL)
	if err != nil {
		return models.Dataset{}, err
	}
	defer db.Close()

	return store.Load(db)
}

// runImport seeds a SQL source from a CSV export.
func runImport(cfg cliparse.Config) error {
	ds, err := store.LoadDir(cfg.DataDir)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Source, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.CreateSchema(db); err != nil {
		return err
	}
	if err := store.InsertDataset(db, ds); err != nil {
		return err
	}

	slog.Info("Import complete",
		"competitors", len(ds.Competitors),
		"rounds", len(ds.Rounds),
		"submissions", len(ds.Submissions),
		"votes", len(ds.Votes),
	)
	return nil
}

// printHeader gives terminal users a quick orientation line before the
// report body.
func printHeader(snap *league.Snapshot, m models.OverviewMetrics) {
	fmt.Printf("snapshot %s (loaded %s): %s rounds, %s competitors, %s submissions, %s votes\n\n",
		snap.ID,
		humanize.Time(snap.LoadedAt),
		humanize.Comma(int64(m.RoundCount)),
		humanize.Comma(int64(m.CompetitorCount)),
		humanize.Comma(int64(m.SubmissionCount)),
		humanize.Comma(int64(m.VoteCount)),
	)
}
