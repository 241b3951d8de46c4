package cliparse

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()

	// t.Setenv also restores any prior value after the test.
	t.Setenv("LEAGUE_SOURCE", "")
	t.Setenv("LEAGUE_DATA_DIR", "")
	t.Setenv("DATABASE_URL", "")
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Source != SourceCSV {
		t.Errorf("Expected default source csv, got %q", cfg.Source)
	}
	if cfg.DataDir != "data" {
		t.Errorf("Expected default data dir, got %q", cfg.DataDir)
	}
	if cfg.Report != "overview" {
		t.Errorf("Expected default report overview, got %q", cfg.Report)
	}
	if cfg.SampleSize != 5 || cfg.SampleSeed != 0 {
		t.Errorf("Unexpected sampling defaults: size=%d seed=%d", cfg.SampleSize, cfg.SampleSeed)
	}
	if cfg.JSON {
		t.Error("Expected JSON output off by default")
	}
}

func TestParseFlags_SourceInference(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "data dir implies csv", args: []string{"-data", "exports"}, want: SourceCSV},
		{name: "database url implies sqlite", args: []string{"-d", "league.db"}, want: SourceSQLite},
		{name: "explicit source wins", args: []string{"-s", "postgres", "-d", "postgres://x"}, want: SourcePostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			cfg, err := ParseFlags(tt.args)
			if err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}
			if cfg.Source != tt.want {
				t.Errorf("Expected source %q, got %q", tt.want, cfg.Source)
			}
		})
	}
}

func TestParseFlags_EnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAGUE_SOURCE", "sqlite")
	t.Setenv("DATABASE_URL", "league.db")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Source != SourceSQLite {
		t.Errorf("Expected source from env, got %q", cfg.Source)
	}
	if cfg.DatabaseURL != "league.db" {
		t.Errorf("Expected database URL from env, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAGUE_DATA_DIR", "env-dir")

	cfg, err := ParseFlags([]string{"-data", "flag-dir"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.DataDir != "flag-dir" {
		t.Errorf("Expected the flag to override env, got %q", cfg.DataDir)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "import without a database", args: []string{"-import", "-data", "exports"}},
		{name: "import without a csv directory", args: []string{"-import", "-s", "sqlite", "-d", "league.db"}},
		{name: "sqlite without a url", args: []string{"-s", "sqlite"}},
		{name: "postgres without a url", args: []string{"-s", "postgres"}},
		{name: "unknown source", args: []string{"-s", "oracle"}},
		{name: "unknown flag", args: []string{"-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			if _, err := ParseFlags(tt.args); err == nil {
				t.Errorf("Expected an error for %v, got nil", tt.args)
			}
		})
	}
}

func TestParseFlags_ReportSelection(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-r", "voting", "-round", "Covers", "-competitor", "c2", "-seed", "42", "-json"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Report != "voting" || cfg.Round != "Covers" || cfg.Competitor != "c2" {
		t.Errorf("Unexpected report selection: %+v", cfg)
	}
	if cfg.SampleSeed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.SampleSeed)
	}
	if !cfg.JSON {
		t.Error("Expected JSON output on")
	}
}
