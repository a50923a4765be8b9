// Package config provides configuration loading and parameter resolution.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "not set" from a zero value so CLI flags and defaults can
// fill the gaps.
type FileConfig struct {
	Clients        map[string]string  `toml:"clients"`
	HourlyWages    map[string]float64 `toml:"hourly-wages"`
	Abbreviations  map[string]string  `toml:"abbr"`
	Default        DefaultTable       `toml:"default"`
	Mode           *string            `toml:"mode"`
	Interval       *string            `toml:"interval"`
	StartDate      *string            `toml:"start_date"`
	MinutesPerDay  *int               `toml:"minutes_per_day"`
	MinutesPerWeek *int               `toml:"minutes_per_week"`
	Spaces         *int               `toml:"spaces"`
	CurrencySign   *string            `toml:"currency_sign"`
	DisplayHours   *bool              `toml:"display_hours"`
	// ExcludedWeekdays lists lowercase weekday names skipped in daily
	// aggregation. Unset means Saturday and Sunday.
	ExcludedWeekdays []string `toml:"excluded_weekdays"`
}

// DefaultTable maps the [default] section.
type DefaultTable struct {
	Client *string `toml:"client"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error; resolution then runs on CLI flags and defaults alone.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
