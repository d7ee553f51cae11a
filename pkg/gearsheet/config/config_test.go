package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gearsheet.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"general": {"headers": ["Name", "Tier", "Durability"], "colors": {"Name": "FFD966"}},
		"tools":   {"headers": ["Name", "Durability"]},
		"weapons": {"headers": ["Name", "Melee Damage"]},
		"armor":   {"headers": ["Name", "Armor"], "colors": {"Name": "C9DAF8"}}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Tier", "Durability"}, cfg.General.Headers)
	assert.Equal(t, "FFD966", cfg.General.Colors["Name"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"general": `)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingSection(t *testing.T) {
	path := writeConfig(t, `{
		"general": {"headers": ["Name"]},
		"tools":   {"headers": ["Name"]},
		"weapons": {"headers": ["Name"]}
	}`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "armor")
}

func TestLoadBadColor(t *testing.T) {
	for _, color := range []string{"red", "FFD96", "GGGGGG", "#FFD966"} {
		path := writeConfig(t, `{
			"general": {"headers": ["Name"], "colors": {"Name": "`+color+`"}},
			"tools":   {"headers": ["Name"]},
			"weapons": {"headers": ["Name"]},
			"armor":   {"headers": ["Name"]}
		}`)
		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidConfig, "color %q should be rejected", color)
	}
}

func TestSectionsOrderAndTitles(t *testing.T) {
	sections := Default().Sections()
	require.Len(t, sections, 4)
	assert.Equal(t, "General", sections[0].Title)
	assert.Equal(t, "Tools", sections[1].Title)
	assert.Equal(t, "Weapons", sections[2].Title)
	assert.Equal(t, "Armor", sections[3].Title)
}

func TestSectionsColorInheritance(t *testing.T) {
	cfg := &Config{
		General: Sheet{
			Headers: []string{"Name", "Tier"},
			Colors:  map[string]string{"Name": "FFD966", "Tier": "D9D9D9"},
		},
		Tools:   Sheet{Headers: []string{"Name", "Tier"}},
		Weapons: Sheet{
			Headers: []string{"Name"},
			Colors:  map[string]string{"Name": "F8CBAD"},
		},
		Armor: Sheet{Headers: []string{"Name"}},
	}

	sections := cfg.Sections()

	// Tools inherits both general colors
	assert.Equal(t, "FFD966", sections[1].Colors["Name"])
	assert.Equal(t, "D9D9D9", sections[1].Colors["Tier"])

	// Weapons overrides Name but still inherits Tier
	assert.Equal(t, "F8CBAD", sections[2].Colors["Name"])
	assert.Equal(t, "D9D9D9", sections[2].Colors["Tier"])

	// Overriding in weapons must not leak into armor
	assert.Equal(t, "FFD966", sections[3].Colors["Name"])
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
