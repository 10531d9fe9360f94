package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Data.Path != "" || cfg.Income.MonthlyGoal != 0 {
		t.Fatalf("missing file produced non-zero config: %+v", cfg)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liferpg.yaml")
	body := "data:\n  path: /tmp/from-file.db\nincome:\n  monthlygoal: 8000\n  targetmonth: \"2025-03\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LIFERPG_DATA_PATH", "/tmp/from-env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Data.Path != "/tmp/from-env.db" {
		t.Fatalf("data.path=%q, want the env override", cfg.Data.Path)
	}
	if cfg.Income.MonthlyGoal != 8000 || cfg.Income.TargetMonth != "2025-03" {
		t.Fatalf("income=%+v, want file values", cfg.Income)
	}
}
