package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[general]\ncurrency = \"EUR\"\n\n[history]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.General.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.General.Currency)
	}
	if cfg.General.FundFile != "fund.json" {
		t.Errorf("FundFile = %q, want default fund.json", cfg.General.FundFile)
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled = true, want false")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom accepted malformed TOML")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.General.FundFile = "/srv/pot.json"
	cfg.History.DBPath = "/srv/history.db"
	cfg.Appearance.Theme = "tokyo-night"

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != cfg {
		t.Fatalf("got %+v, want %+v", got, cfg)
	}
}

func TestFundFile_EnvOverride(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("ROCKPILE_FUND_FILE", "")
	if got := FundFile(cfg); got != "fund.json" {
		t.Errorf("FundFile = %q, want fund.json", got)
	}

	t.Setenv("ROCKPILE_FUND_FILE", "/tmp/other.json")
	if got := FundFile(cfg); got != "/tmp/other.json" {
		t.Errorf("FundFile = %q, want env value", got)
	}
}

func TestHistoryDB_Fallback(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("ROCKPILE_HISTORY_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got := HistoryDB(DefaultConfig())
	want := filepath.Join(dataHome, "rockpile", "history.db")
	if got != want {
		t.Errorf("HistoryDB = %q, want %q", got, want)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := Path(); got != filepath.Join(dir, "rockpile", "config.toml") {
		t.Errorf("Path = %q", got)
	}
	if Exists() {
		t.Error("Exists() = true in empty config dir")
	}
}
