package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "currency_symbol: \"€\"\ndefault_profile: Sample Progressive\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "€", s.CurrencySymbol)
	assert.Equal(t, "Sample Progressive", s.DefaultProfile)

	// Unset fields keep their defaults
	assert.Equal(t, "60000", s.DefaultIncome)
	assert.NotEmpty(t, s.ProfilePath)
}

func TestLoadSettingsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":: not yaml ["), 0o644))

	_, err := LoadSettingsFrom(path)
	assert.Error(t, err)
}
