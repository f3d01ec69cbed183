package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
)

// ResultFormatter turns a calculation result into display bytes
type ResultFormatter interface {
	Format(result domain.CalculationResult, currencySymbol string) ([]byte, error)
	Name() string
}

// GetFormatterByName returns the formatter for a format name, or nil if the
// name is unknown
func GetFormatterByName(name string) ResultFormatter {
	switch strings.ToLower(name) {
	case "console", "text", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	}
	return nil
}

// ConsoleFormatter renders the five computed values as an aligned text block
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result domain.CalculationResult, currencySymbol string) ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Taxable Income: %s\n", FormatMoney(result.TaxableIncome, currencySymbol))
	fmt.Fprintf(&sb, "Total Tax:      %s\n", FormatMoney(result.TotalTax, currencySymbol))
	fmt.Fprintf(&sb, "Net Income:     %s\n", FormatMoney(result.NetIncome, currencySymbol))
	fmt.Fprintf(&sb, "Effective Rate: %s\n", FormatPercent(result.EffectiveRate))
	fmt.Fprintf(&sb, "Marginal Rate:  %s\n", FormatPercent(result.MarginalRate))
	return []byte(sb.String()), nil
}

// JSONFormatter renders the result as an indented JSON object
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result domain.CalculationResult, _ string) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing result: %w", err)
	}
	return append(data, '\n'), nil
}
