// Package config loads and validates the per-sheet column configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig indicates the sheet configuration is missing a required
// section or contains an unusable value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Section keys in output order. The general sheet comes first because its
// color map is the inheritance base for the others.
const (
	SectionGeneral = "general"
	SectionTools   = "tools"
	SectionWeapons = "weapons"
	SectionArmor   = "armor"
)

// sheetTitles maps section keys to workbook sheet names.
var sheetTitles = map[string]string{
	SectionGeneral: "General",
	SectionTools:   "Tools",
	SectionWeapons: "Weapons",
	SectionArmor:   "Armor",
}

// Sheet holds one section's column selection and optional header colors.
type Sheet struct {
	// Headers lists the dump columns to include, in output order.
	Headers []string `json:"headers"`
	// Colors maps a header name to an RRGGBB fill color for its header cell.
	Colors map[string]string `json:"colors,omitempty"`
}

// Config is the full four-section sheet configuration. It is loaded once
// and treated as read-only for the run.
type Config struct {
	General Sheet `json:"general"`
	Tools   Sheet `json:"tools"`
	Weapons Sheet `json:"weapons"`
	Armor   Sheet `json:"armor"`
}

// Section is one resolved output sheet: its workbook title, header order,
// and the effective color map after inheritance.
type Section struct {
	Key     string
	Title   string
	Headers []string
	// Colors is the effective header color map: the general section's
	// colors overlaid with this section's own entries.
	Colors map[string]string
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every section declares headers and that every
// configured color is a 6-digit hex RGB string.
func (c *Config) Validate() error {
	for _, s := range []struct {
		key   string
		sheet Sheet
	}{
		{SectionGeneral, c.General},
		{SectionTools, c.Tools},
		{SectionWeapons, c.Weapons},
		{SectionArmor, c.Armor},
	} {
		if len(s.sheet.Headers) == 0 {
			return fmt.Errorf("%w: section %q missing headers", ErrInvalidConfig, s.key)
		}
		for header, color := range s.sheet.Colors {
			if !validColor(color) {
				return fmt.Errorf("%w: section %q header %q: color %q is not RRGGBB",
					ErrInvalidConfig, s.key, header, color)
			}
		}
	}
	return nil
}

// Sections returns the four sections in output order with color
// inheritance applied: the general section's colors are the base, and each
// section's own entries override them per header.
func (c *Config) Sections() []Section {
	base := c.General.Colors

	sections := make([]Section, 0, 4)
	for _, s := range []struct {
		key   string
		sheet Sheet
	}{
		{SectionGeneral, c.General},
		{SectionTools, c.Tools},
		{SectionWeapons, c.Weapons},
		{SectionArmor, c.Armor},
	} {
		colors := make(map[string]string, len(base)+len(s.sheet.Colors))
		for h, col := range base {
			colors[h] = col
		}
		for h, col := range s.sheet.Colors {
			colors[h] = col
		}
		sections = append(sections, Section{
			Key:     s.key,
			Title:   sheetTitles[s.key],
			Headers: s.sheet.Headers,
			Colors:  colors,
		})
	}
	return sections
}

func validColor(c string) bool {
	if len(c) != 6 {
		return false
	}
	for _, r := range c {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
