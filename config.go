package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ---------------------------------------------------------------------------
// Settings (TOML-based)
// ---------------------------------------------------------------------------

// appSettings are the few presentation knobs kept outside the binary. The
// store path is deliberately not one of them.
type appSettings struct {
	HistoryRows    int  `toml:"history_rows"`
	ShowComparison bool `toml:"show_comparison"`
}

type configFile struct {
	Settings appSettings `toml:"settings"`
}

const defaultConfigTOML = `# RepTrack settings

[settings]
history_rows = 20
show_comparison = true
`

func defaultSettings() appSettings {
	return appSettings{
		HistoryRows:    20,
		ShowComparison: true,
	}
}

// configPath returns the full path to the settings.toml file, using
// XDG_CONFIG_HOME or falling back to ~/.config.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "reptrack", "settings.toml"), nil
}

// loadSettings loads settings from the config file, creating it with
// defaults if missing. On any failure it falls back to defaults alongside
// the error so the caller can keep running.
func loadSettings() (appSettings, error) {
	path, err := configPath()
	if err != nil {
		return defaultSettings(), err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return defaultSettings(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
			return defaultSettings(), fmt.Errorf("write default config: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaultSettings(), fmt.Errorf("read config: %w", err)
	}
	return parseSettings(data)
}

// parseSettings parses TOML bytes into normalized settings.
func parseSettings(data []byte) (appSettings, error) {
	cfg := configFile{Settings: defaultSettings()}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaultSettings(), fmt.Errorf("parse settings.toml: %w", err)
	}
	return normalizeSettings(cfg.Settings), nil
}

func normalizeSettings(s appSettings) appSettings {
	out := s
	if out.HistoryRows < 5 || out.HistoryRows > 50 {
		out.HistoryRows = defaultSettings().HistoryRows
	}
	return out
}
