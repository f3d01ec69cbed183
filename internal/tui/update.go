package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProfilesLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.setProfiles(msg.Profiles)
		m.selectProfileByName(m.settings.DefaultProfile)
		// Populate the form from the startup profile, same as an explicit load
		if p, ok := m.profiles[m.SelectedProfileName()]; ok {
			m.applyProfile(p)
		}
		return m, nil

	case ProfileSavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.setProfiles(msg.Profiles)
		m.selectProfileByName(msg.Name)
		m.status = fmt.Sprintf("Profile %q saved to %s", msg.Name, m.store.Path)
		m.err = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.savePromptActive {
		return m.handleSavePromptKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.setFocus(m.focus + 1)
		return m, nil

	case "shift+tab":
		m.setFocus(m.focus - 1)
		return m, nil

	case "enter":
		m.calculate()
		return m, nil

	case "ctrl+t":
		m.toggleMode()
		return m, nil

	case "ctrl+a":
		if m.mode == domain.ModeProgressive {
			m.bracketRows = append(m.bracketRows, m.newBracketRow())
			m.clampFocus()
		}
		return m, nil

	case "ctrl+d":
		m.removeBracketRow()
		return m, nil

	case "ctrl+p":
		m.cycleProfile(-1)
		return m, nil

	case "ctrl+n":
		m.cycleProfile(1)
		return m, nil

	case "ctrl+l":
		if p, ok := m.profiles[m.SelectedProfileName()]; ok {
			m.applyProfile(p)
			m.status = fmt.Sprintf("Profile %q loaded", p.Name)
			m.err = nil
		}
		return m, nil

	case "ctrl+s":
		m.savePromptActive = true
		m.savePrompt.SetValue("")
		m.savePrompt.Focus()
		return m, nil

	case "ctrl+r":
		m.reset()
		return m, nil
	}

	// Everything else is typing into the focused field
	return m.updateFocusedInput(msg)
}

// handleSavePromptKey routes keys while the save-as prompt is open
func (m Model) handleSavePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.savePromptActive = false
		m.savePrompt.Blur()
		return m, nil

	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		name := strings.TrimSpace(m.savePrompt.Value())
		if name == "" {
			return m, nil
		}
		profile, err := m.collectProfile(name)
		if err != nil {
			m.err = err
			m.savePromptActive = false
			m.savePrompt.Blur()
			return m, nil
		}
		m.savePromptActive = false
		m.savePrompt.Blur()
		return m, saveProfileCmd(m.store, m.profiles, profile)
	}

	var cmd tea.Cmd
	m.savePrompt, cmd = m.savePrompt.Update(msg)
	return m, cmd
}

// updateFocusedInput forwards a message to whichever field has focus
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	inputs := m.focusableInputs()
	if m.focus < 0 || m.focus >= len(inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	*inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return m, cmd
}

// toggleMode switches between flat and progressive, refocusing since the
// focusable field set changes shape
func (m *Model) toggleMode() {
	if m.mode == domain.ModeFlat {
		m.mode = domain.ModeProgressive
		if len(m.bracketRows) == 0 {
			m.bracketRows = append(m.bracketRows, m.newBracketRow())
		}
	} else {
		m.mode = domain.ModeFlat
	}
	m.clampFocus()
}

// removeBracketRow deletes the focused bracket row, or the last one when
// focus is elsewhere
func (m *Model) removeBracketRow() {
	if m.mode != domain.ModeProgressive || len(m.bracketRows) == 0 {
		return
	}

	idx := m.focusedBracketRow()
	if idx < 0 {
		idx = len(m.bracketRows) - 1
	}
	m.bracketRows = append(m.bracketRows[:idx], m.bracketRows[idx+1:]...)
	m.clampFocus()
}

// cycleProfile moves the profile picker by the given offset, wrapping around
func (m *Model) cycleProfile(offset int) {
	if len(m.profileNames) == 0 {
		return
	}
	m.selectedProfile = (m.selectedProfile + offset + len(m.profileNames)) % len(m.profileNames)
}
