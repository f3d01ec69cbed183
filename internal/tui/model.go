package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Toyfriendo/Tax-Calculator/internal/calculation"
	"github.com/Toyfriendo/Tax-Calculator/internal/config"
	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
)

// bracketRow is one editable bracket entry. The authoritative bracket list is
// this ordered slice on the model; the view only renders it.
type bracketRow struct {
	upTo textinput.Model
	rate textinput.Model
}

// Model holds the entire form state: field values, the dynamic bracket row
// list, loaded profiles, and the last computed result. All mutation happens
// in Update in response to user actions.
type Model struct {
	settings config.Settings
	store    *config.ProfileStore

	profiles        map[string]domain.Profile
	profileNames    []string
	selectedProfile int

	mode domain.TaxMode

	income     textinput.Model
	deductions textinput.Model
	currency   textinput.Model
	flatRate   textinput.Model

	bracketRows []bracketRow

	focus int

	savePrompt       textinput.Model
	savePromptActive bool

	result *domain.CalculationResult
	err    error
	status string

	width  int
	height int
}

// NewModel creates the form model with defaults from the app settings
func NewModel(settings config.Settings, store *config.ProfileStore) Model {
	m := Model{
		settings:   settings,
		store:      store,
		mode:       domain.ModeFlat,
		income:     newInput(settings.DefaultIncome, 14),
		deductions: newInput(settings.DefaultDeductions, 14),
		currency:   newInput(settings.CurrencySymbol, 4),
		flatRate:   newInput("10.0", 8),
		savePrompt: newInput("", 28),
		width:      80,
		height:     24,
	}
	m.savePrompt.Placeholder = "profile name"
	m.income.Focus()
	return m
}

// newInput builds a textinput with an initial value
func newInput(value string, width int) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	ti.CharLimit = 32
	ti.Width = width
	ti.Prompt = ""
	return ti
}

// Init loads the profile store (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadProfilesCmd(m.store), textinput.Blink)
}

// loadProfilesCmd returns a command that loads the profile store
func loadProfilesCmd(store *config.ProfileStore) tea.Cmd {
	return func() tea.Msg {
		profiles, err := store.Load()
		return ProfilesLoadedMsg{Profiles: profiles, Err: err}
	}
}

// saveProfileCmd returns a command that adds a profile to the store and
// persists the whole mapping
func saveProfileCmd(store *config.ProfileStore, profiles map[string]domain.Profile, p domain.Profile) tea.Cmd {
	return func() tea.Msg {
		updated := make(map[string]domain.Profile, len(profiles)+1)
		for name, existing := range profiles {
			updated[name] = existing
		}
		updated[p.Name] = p

		if err := store.Save(updated); err != nil {
			return ProfileSavedMsg{Name: p.Name, Err: err}
		}
		return ProfileSavedMsg{Name: p.Name, Profiles: updated}
	}
}

// setProfiles replaces the loaded profile set and rebuilds the sorted name
// list used for cycling
func (m *Model) setProfiles(profiles map[string]domain.Profile) {
	m.profiles = profiles
	m.profileNames = make([]string, 0, len(profiles))
	for name := range profiles {
		m.profileNames = append(m.profileNames, name)
	}
	sort.Strings(m.profileNames)

	if m.selectedProfile >= len(m.profileNames) {
		m.selectedProfile = 0
	}
}

// selectProfileByName moves the picker to the named profile if present
func (m *Model) selectProfileByName(name string) {
	for i, n := range m.profileNames {
		if n == name {
			m.selectedProfile = i
			return
		}
	}
}

// applyProfile fills the form from a saved profile
func (m *Model) applyProfile(p domain.Profile) {
	m.mode = p.Mode
	m.flatRate.SetValue(p.FlatRate.String())

	m.bracketRows = nil
	for _, b := range p.Brackets {
		row := m.newBracketRow()
		if !b.Unbounded() {
			row.upTo.SetValue(b.UpTo.String())
		}
		row.rate.SetValue(b.Rate.String())
		m.bracketRows = append(m.bracketRows, row)
	}

	m.clampFocus()
}

// newBracketRow builds an empty bracket row
func (m *Model) newBracketRow() bracketRow {
	return bracketRow{
		upTo: newInput("", 14),
		rate: newInput("", 8),
	}
}

// collectInput validates the form into a calculation input
func (m *Model) collectInput() (domain.CalculationInput, error) {
	income, err := config.ParseAmount(m.income.Value())
	if err != nil {
		return domain.CalculationInput{}, err
	}
	deductions, err := config.ParseAmount(m.deductions.Value())
	if err != nil {
		return domain.CalculationInput{}, err
	}

	schedule, err := m.collectSchedule()
	if err != nil {
		return domain.CalculationInput{}, err
	}

	symbol := m.currency.Value()
	if symbol == "" {
		symbol = "$"
	}

	return domain.CalculationInput{
		GrossIncome:    income,
		Deductions:     deductions,
		CurrencySymbol: symbol,
		Schedule:       schedule,
	}, nil
}

// collectSchedule validates the active mode's fields into a schedule
func (m *Model) collectSchedule() (domain.Schedule, error) {
	if m.mode == domain.ModeProgressive {
		fields := make([]config.BracketField, len(m.bracketRows))
		for i, row := range m.bracketRows {
			fields[i] = config.BracketField{UpTo: row.upTo.Value(), Rate: row.rate.Value()}
		}
		return config.ParseBrackets(fields)
	}
	return config.ParseFlatRate(m.flatRate.Value())
}

// collectProfile validates the form into a named profile for saving
func (m *Model) collectProfile(name string) (domain.Profile, error) {
	schedule, err := m.collectSchedule()
	if err != nil {
		return domain.Profile{}, err
	}

	p := domain.Profile{
		Name:     name,
		Mode:     m.mode,
		FlatRate: domain.DefaultFlatRate,
		Brackets: []domain.Bracket{},
	}
	switch sched := schedule.(type) {
	case domain.FlatSchedule:
		p.FlatRate = sched.Rate
	case domain.ProgressiveSchedule:
		p.Brackets = sched.Brackets
	}
	return p, nil
}

// calculate validates the form and computes the result. On validation
// failure the previous result stays on screen; only the error line changes.
func (m *Model) calculate() {
	input, err := m.collectInput()
	if err != nil {
		m.err = err
		return
	}

	result := calculation.Calculate(input)
	m.result = &result
	m.err = nil
	m.status = ""
}

// reset restores the form to its initial defaults
func (m *Model) reset() {
	m.income.SetValue(m.settings.DefaultIncome)
	m.deductions.SetValue(m.settings.DefaultDeductions)
	m.currency.SetValue(m.settings.CurrencySymbol)
	m.flatRate.SetValue("10.0")
	m.mode = domain.ModeFlat
	m.bracketRows = nil
	m.err = nil
	m.status = ""
	m.setFocus(0)
}

// SelectedProfileName returns the name under the picker, or empty when no
// profiles are loaded
func (m Model) SelectedProfileName() string {
	if len(m.profileNames) == 0 {
		return ""
	}
	return m.profileNames[m.selectedProfile]
}

// focusableInputs lists pointers to the inputs reachable by tab, in order.
// Only the active mode's fields participate.
func (m *Model) focusableInputs() []*textinput.Model {
	inputs := []*textinput.Model{&m.income, &m.deductions, &m.currency}
	if m.mode == domain.ModeFlat {
		inputs = append(inputs, &m.flatRate)
	} else {
		for i := range m.bracketRows {
			inputs = append(inputs, &m.bracketRows[i].upTo, &m.bracketRows[i].rate)
		}
	}
	return inputs
}

// setFocus moves focus to the input at the given index
func (m *Model) setFocus(index int) {
	inputs := m.focusableInputs()
	if len(inputs) == 0 {
		return
	}
	if index < 0 {
		index = len(inputs) - 1
	}
	if index >= len(inputs) {
		index = 0
	}
	m.focus = index
	for i, input := range inputs {
		if i == index {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

// clampFocus re-applies focus after the focusable set changed shape
func (m *Model) clampFocus() {
	inputs := m.focusableInputs()
	if m.focus >= len(inputs) {
		m.focus = len(inputs) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	m.setFocus(m.focus)
}

// focusedBracketRow returns the index of the bracket row owning the focused
// input, or -1 when focus is not on a bracket row
func (m *Model) focusedBracketRow() int {
	if m.mode != domain.ModeProgressive {
		return -1
	}
	fixed := 3 // income, deductions, currency
	if m.focus < fixed {
		return -1
	}
	row := (m.focus - fixed) / 2
	if row >= len(m.bracketRows) {
		return -1
	}
	return row
}

// Run starts the interactive form
func Run(settings config.Settings, store *config.ProfileStore) error {
	p := tea.NewProgram(NewModel(settings, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}
	return nil
}
