package tui

import (
	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
)

// ProfilesLoadedMsg carries the profile store contents after the initial load
type ProfilesLoadedMsg struct {
	Profiles map[string]domain.Profile
	Err      error
}

// ProfileSavedMsg reports the outcome of a save-as operation
type ProfileSavedMsg struct {
	Name     string
	Profiles map[string]domain.Profile
	Err      error
}
