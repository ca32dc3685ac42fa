package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"roomctl/pkg/roommeta"
	"roomctl/pkg/timetable"
)

// DefaultDataDir is where exports live unless the user points elsewhere.
const DefaultDataDir = "data"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DataDir        string `json:"data_dir,omitempty"`
	BuildingSuffix string `json:"building_suffix,omitempty"`
	CapacityLabel  string `json:"capacity_label,omitempty"`
	CapacityUnit   string `json:"capacity_unit,omitempty"`
	DateColumn     string `json:"date_column,omitempty"`
	DayColumn      string `json:"day_column,omitempty"`
	SavedBuilding  string `json:"saved_building,omitempty"`
	AccentColor    string `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.roomctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".roomctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveDataDir returns the configured data directory, falling back to the
// default when nothing is set.
func (c *AppConfig) ResolveDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return DefaultDataDir
}

// Tokens builds the file name tokens, using the stock ones for any field
// the user has not overridden.
func (c *AppConfig) Tokens() roommeta.Tokens {
	t := roommeta.DefaultTokens()
	if c.BuildingSuffix != "" {
		t.BuildingSuffix = c.BuildingSuffix
	}
	if c.CapacityLabel != "" {
		t.CapacityLabel = c.CapacityLabel
	}
	if c.CapacityUnit != "" {
		t.CapacityUnit = c.CapacityUnit
	}
	return t
}

// Columns builds the spreadsheet column names the same way.
func (c *AppConfig) Columns() timetable.Columns {
	cols := timetable.DefaultColumns()
	if c.DateColumn != "" {
		cols.Date = c.DateColumn
	}
	if c.DayColumn != "" {
		cols.Day = c.DayColumn
	}
	return cols
}
