package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("default log level %q want warn", cfg.Log.Level)
	}
	if cfg.Game.Seed != 0 {
		t.Fatalf("default seed %d want 0", cfg.Game.Seed)
	}
	if cfg.Database.SQLitePath != "" {
		t.Fatalf("default db path %q want empty", cfg.Database.SQLitePath)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lemonade.yml")
	data := []byte("game:\n  seed: 42\ndatabase:\n  sqlite_path: data/history.db\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Seed != 42 {
		t.Fatalf("seed %d want 42", cfg.Game.Seed)
	}
	if cfg.Database.SQLitePath != "data/history.db" {
		t.Fatalf("db path %q", cfg.Database.SQLitePath)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level %q", cfg.Log.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LEMONADE_SEED", "7")
	t.Setenv("LEMONADE_DB", "/tmp/other.db")
	t.Setenv("LEMONADE_LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Seed != 7 {
		t.Fatalf("seed %d want 7", cfg.Game.Seed)
	}
	if cfg.Database.SQLitePath != "/tmp/other.db" {
		t.Fatalf("db path %q", cfg.Database.SQLitePath)
	}
	if cfg.Log.Level != "error" {
		t.Fatalf("log level %q", cfg.Log.Level)
	}
}
