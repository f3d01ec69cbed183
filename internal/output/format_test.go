package output

import (
	"strings"
	"testing"

	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		symbol   string
		expected string
	}{
		{name: "Small amount", amount: decimal.NewFromInt(250), symbol: "$", expected: "$250.00"},
		{name: "Thousands grouping", amount: decimal.NewFromInt(8500), symbol: "$", expected: "$8,500.00"},
		{name: "Millions grouping", amount: decimal.NewFromFloat(1234567.89), symbol: "$", expected: "$1,234,567.89"},
		{name: "Exactly one thousand", amount: decimal.NewFromInt(1000), symbol: "$", expected: "$1,000.00"},
		{name: "Zero", amount: decimal.Zero, symbol: "$", expected: "$0.00"},
		{name: "Negative amount", amount: decimal.NewFromInt(-54000), symbol: "$", expected: "-$54,000.00"},
		{name: "Other symbol", amount: decimal.NewFromInt(60000), symbol: "€", expected: "€60,000.00"},
		{name: "Empty symbol falls back to dollar", amount: decimal.NewFromInt(1), symbol: "", expected: "$1.00"},
		{name: "Rounds to two places", amount: decimal.NewFromFloat(99.999), symbol: "$", expected: "$100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoney(tt.amount, tt.symbol))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "14.17%", FormatPercent(decimal.NewFromFloat(14.1666).Round(2)))
	assert.Equal(t, "10.00%", FormatPercent(decimal.NewFromInt(10)))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero))
}

func TestConsoleFormatter(t *testing.T) {
	result := domain.CalculationResult{
		TaxableIncome: decimal.NewFromInt(60000),
		TotalTax:      decimal.NewFromInt(8500),
		NetIncome:     decimal.NewFromInt(51500),
		EffectiveRate: decimal.NewFromFloat(14.17),
		MarginalRate:  decimal.NewFromInt(20),
	}

	data, err := ConsoleFormatter{}.Format(result, "$")
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Taxable Income: $60,000.00")
	assert.Contains(t, text, "Total Tax:      $8,500.00")
	assert.Contains(t, text, "Net Income:     $51,500.00")
	assert.Contains(t, text, "Effective Rate: 14.17%")
	assert.Contains(t, text, "Marginal Rate:  20.00%")
}

func TestJSONFormatter(t *testing.T) {
	result := domain.CalculationResult{
		TaxableIncome: decimal.NewFromInt(60000),
		TotalTax:      decimal.NewFromInt(6000),
		NetIncome:     decimal.NewFromInt(54000),
		EffectiveRate: decimal.NewFromInt(10),
		MarginalRate:  decimal.NewFromInt(10),
	}

	data, err := JSONFormatter{}.Format(result, "$")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_tax"`)
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("").Name())
	assert.Equal(t, "console", GetFormatterByName("text").Name())
	assert.Equal(t, "json", GetFormatterByName("JSON").Name())
	assert.Nil(t, GetFormatterByName("pdf"))
}
