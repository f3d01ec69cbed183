package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds app-level preferences loaded from the settings file. The
// profile store itself lives elsewhere; this only says where to find it and
// how the form starts out.
type Settings struct {
	ProfilePath       string `yaml:"profile_path"`
	CurrencySymbol    string `yaml:"currency_symbol"`
	DefaultProfile    string `yaml:"default_profile"`
	DefaultIncome     string `yaml:"default_income"`
	DefaultDeductions string `yaml:"default_deductions"`
}

// DefaultSettings returns the settings used when no settings file exists
func DefaultSettings() Settings {
	return Settings{
		ProfilePath:       filepath.Join(SettingsDir(), "tax_profiles.json"),
		CurrencySymbol:    "$",
		DefaultProfile:    "Flat 10%",
		DefaultIncome:     "60000",
		DefaultDeductions: "0",
	}
}

// SettingsDir returns the XDG-compliant directory for settings and the
// default profile store
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taxcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "taxcalc")
}

// SettingsPath returns the full path to the settings file
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "settings.yaml")
}

// LoadSettings reads the settings file, returning defaults if it doesn't
// exist. Fields left blank in the file keep their defaults.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from an explicit path
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}

	if loaded.ProfilePath != "" {
		s.ProfilePath = loaded.ProfilePath
	}
	if loaded.CurrencySymbol != "" {
		s.CurrencySymbol = loaded.CurrencySymbol
	}
	if loaded.DefaultProfile != "" {
		s.DefaultProfile = loaded.DefaultProfile
	}
	if loaded.DefaultIncome != "" {
		s.DefaultIncome = loaded.DefaultIncome
	}
	if loaded.DefaultDeductions != "" {
		s.DefaultDeductions = loaded.DefaultDeductions
	}

	return s, nil
}
