package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
	"github.com/Toyfriendo/Tax-Calculator/internal/output"
)

// View renders the whole form
func (m Model) View() string {
	sections := []string{
		TitleStyle.Render("Tax Calculator"),
		m.viewProfileBar(),
		m.viewInputs(),
		m.viewMode(),
		m.viewResults(),
		m.viewStatusLine(),
		m.viewHelp(),
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, nonEmpty...) + "\n"
}

// viewProfileBar renders the profile picker or the save-as prompt
func (m Model) viewProfileBar() string {
	if m.savePromptActive {
		return BoxStyle.Render(
			SectionTitleStyle.Render("Save Profile As") + "\n" +
				m.savePrompt.View() + "\n" +
				HelpStyle.Render("enter save • esc cancel"))
	}

	selected := m.SelectedProfileName()
	if selected == "" {
		selected = "(none)"
	}

	return BoxStyle.Render(
		SectionTitleStyle.Render("Profile") + "\n" +
			fmt.Sprintf("%s  %s", selected,
				HelpStyle.Render(fmt.Sprintf("(%d saved)", len(m.profileNames)))))
}

// viewInputs renders the income, deductions and currency fields
func (m Model) viewInputs() string {
	rows := []string{
		SectionTitleStyle.Render("Inputs"),
		LabelStyle.Render("Gross Income") + m.income.View(),
		LabelStyle.Render("Deductions") + m.deductions.View(),
		LabelStyle.Render("Currency") + m.currency.View(),
	}
	return BoxStyle.Render(strings.Join(rows, "\n"))
}

// viewMode renders the mode selector and the active mode's fields
func (m Model) viewMode() string {
	flat := InactiveModeStyle.Render("Flat")
	progressive := InactiveModeStyle.Render("Progressive")
	if m.mode == domain.ModeFlat {
		flat = ActiveModeStyle.Render("● Flat")
	} else {
		progressive = ActiveModeStyle.Render("● Progressive")
	}

	rows := []string{
		SectionTitleStyle.Render("Mode") + "  " + flat + "  " + progressive,
	}

	if m.mode == domain.ModeFlat {
		rows = append(rows, LabelStyle.Render("Flat Rate (%)")+m.flatRate.View())
	} else {
		rows = append(rows, m.viewBracketRows()...)
	}

	return BoxStyle.Render(strings.Join(rows, "\n"))
}

// viewBracketRows renders the dynamic bracket list with a header
func (m Model) viewBracketRows() []string {
	rows := []string{
		HelpStyle.Render(fmt.Sprintf("%-4s%-16s%s", "#", "Up To (blank=∞)", "Rate %")),
	}
	for i, row := range m.bracketRows {
		rows = append(rows, fmt.Sprintf("%-4d%s  %s", i+1, row.upTo.View(), row.rate.View()))
	}
	if len(m.bracketRows) == 0 {
		rows = append(rows, HelpStyle.Render("no brackets — ctrl+a to add"))
	}
	return rows
}

// viewResults renders the last computed values; validation failures leave
// this block showing the previous result
func (m Model) viewResults() string {
	if m.result == nil {
		return ""
	}

	symbol := m.currency.Value()
	rows := []string{
		SectionTitleStyle.Render("Results"),
		ResultLabelStyle.Render("Taxable Income") + ResultValueStyle.Render(output.FormatMoney(m.result.TaxableIncome, symbol)),
		ResultLabelStyle.Render("Total Tax") + ResultValueStyle.Render(output.FormatMoney(m.result.TotalTax, symbol)),
		ResultLabelStyle.Render("Net Income") + ResultValueStyle.Render(output.FormatMoney(m.result.NetIncome, symbol)),
		ResultLabelStyle.Render("Effective Rate") + ResultValueStyle.Render(output.FormatPercent(m.result.EffectiveRate)),
		ResultLabelStyle.Render("Marginal Rate") + ResultValueStyle.Render(output.FormatPercent(m.result.MarginalRate)),
	}
	return BoxStyle.Render(strings.Join(rows, "\n"))
}

// viewStatusLine renders the error or status line
func (m Model) viewStatusLine() string {
	if m.err != nil {
		return ErrorStyle.Render("✗ " + m.err.Error())
	}
	if m.status != "" {
		return StatusStyle.Render("✓ " + m.status)
	}
	return ""
}

// viewHelp renders the keyboard shortcuts footer
func (m Model) viewHelp() string {
	keys := []string{
		"tab next field",
		"enter calculate",
		"ctrl+t mode",
		"ctrl+a/+d add/remove bracket",
		"ctrl+n/+p pick profile",
		"ctrl+l load",
		"ctrl+s save as",
		"ctrl+r reset",
		"ctrl+c quit",
	}
	return HelpStyle.Render(strings.Join(keys, " • "))
}
