package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSettings(t *testing.T) {
	got, err := parseSettings([]byte("[settings]\nhistory_rows = 30\nshow_comparison = false\n"))
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if got.HistoryRows != 30 {
		t.Errorf("HistoryRows = %d, want 30", got.HistoryRows)
	}
	if got.ShowComparison {
		t.Error("ShowComparison = true, want false")
	}
}

func TestParseSettingsDefaultsMissingFields(t *testing.T) {
	got, err := parseSettings([]byte("[settings]\nhistory_rows = 10\n"))
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if !got.ShowComparison {
		t.Error("missing show_comparison should default to true")
	}
}

func TestNormalizeSettingsClampsHistoryRows(t *testing.T) {
	for _, rows := range []int{0, 4, 51, -3} {
		got := normalizeSettings(appSettings{HistoryRows: rows, ShowComparison: true})
		if got.HistoryRows != 20 {
			t.Errorf("HistoryRows %d normalized to %d, want 20", rows, got.HistoryRows)
		}
	}
	got := normalizeSettings(appSettings{HistoryRows: 12})
	if got.HistoryRows != 12 {
		t.Errorf("HistoryRows 12 normalized to %d, want 12", got.HistoryRows)
	}
}

func TestParseSettingsRejectsGarbage(t *testing.T) {
	got, err := parseSettings([]byte("not toml ]["))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if got != defaultSettings() {
		t.Errorf("garbage input should fall back to defaults, got %+v", got)
	}
}

func TestLoadSettingsCreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if got != defaultSettings() {
		t.Errorf("fresh settings = %+v, want defaults %+v", got, defaultSettings())
	}

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default settings file not created at %s: %v", path, err)
	}
}

func TestLoadSettingsReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "reptrack", "settings.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[settings]\nhistory_rows = 8\nshow_comparison = true\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if got.HistoryRows != 8 {
		t.Errorf("HistoryRows = %d, want 8", got.HistoryRows)
	}
}
