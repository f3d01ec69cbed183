package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{name: "Plain integer", value: "60000", expected: "60000"},
		{name: "Decimal value", value: "1234.56", expected: "1234.56"},
		{name: "Zero", value: "0", expected: "0"},
		{name: "Surrounding whitespace", value: "  500 ", expected: "500"},
		{name: "Negative rejected", value: "-100", wantErr: true},
		{name: "Non-numeric rejected", value: "abc", wantErr: true},
		{name: "Empty rejected", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAmountNotNumeric)
				return
			}
			require.NoError(t, err)
			expected, _ := decimal.NewFromString(tt.expected)
			assert.True(t, amount.Equal(expected), "got %s", amount)
		})
	}
}

func TestParseFlatRate(t *testing.T) {
	sched, err := ParseFlatRate("10.5")
	require.NoError(t, err)
	assert.True(t, sched.Rate.Equal(decimal.NewFromFloat(10.5)))

	// Negative flat rates are not forbidden, only non-numeric ones
	_, err = ParseFlatRate("-5")
	assert.NoError(t, err)

	_, err = ParseFlatRate("ten percent")
	assert.ErrorIs(t, err, ErrFlatRateInvalid)

	_, err = ParseFlatRate("")
	assert.ErrorIs(t, err, ErrFlatRateInvalid)
}

func TestParseBrackets(t *testing.T) {
	t.Run("Valid rows sorted ascending with unbounded last", func(t *testing.T) {
		sched, err := ParseBrackets([]BracketField{
			{UpTo: "", Rate: "30"},
			{UpTo: "30000", Rate: "10"},
			{UpTo: "10000", Rate: "5"},
		})
		require.NoError(t, err)
		require.Len(t, sched.Brackets, 3)
		assert.True(t, sched.Brackets[0].UpTo.Equal(decimal.NewFromInt(10000)))
		assert.True(t, sched.Brackets[1].UpTo.Equal(decimal.NewFromInt(30000)))
		assert.True(t, sched.Brackets[2].Unbounded())
	})

	t.Run("Blank upper bound means unbounded", func(t *testing.T) {
		sched, err := ParseBrackets([]BracketField{{UpTo: "  ", Rate: "15"}})
		require.NoError(t, err)
		require.Len(t, sched.Brackets, 1)
		assert.True(t, sched.Brackets[0].Unbounded())
		assert.True(t, sched.Brackets[0].Rate.Equal(decimal.NewFromInt(15)))
	})

	t.Run("Missing rate rejected", func(t *testing.T) {
		_, err := ParseBrackets([]BracketField{{UpTo: "10000", Rate: ""}})
		assert.ErrorIs(t, err, ErrBracketNoRate)
	})

	t.Run("Non-numeric rate rejected", func(t *testing.T) {
		_, err := ParseBrackets([]BracketField{{UpTo: "10000", Rate: "five"}})
		assert.ErrorIs(t, err, ErrRateNotNumeric)
	})

	t.Run("Non-numeric bound rejected", func(t *testing.T) {
		_, err := ParseBrackets([]BracketField{{UpTo: "lots", Rate: "5"}})
		assert.ErrorIs(t, err, ErrBoundNotNumeric)
	})

	t.Run("Duplicate finite bounds rejected naming the value", func(t *testing.T) {
		_, err := ParseBrackets([]BracketField{
			{UpTo: "10000", Rate: "5"},
			{UpTo: "10000", Rate: "7"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
		assert.Contains(t, err.Error(), "10000")
	})

	t.Run("Two unbounded rows are not a duplicate", func(t *testing.T) {
		_, err := ParseBrackets([]BracketField{
			{UpTo: "", Rate: "20"},
			{UpTo: "", Rate: "30"},
		})
		assert.NoError(t, err)
	})

	t.Run("Empty row list is valid", func(t *testing.T) {
		sched, err := ParseBrackets(nil)
		require.NoError(t, err)
		assert.Empty(t, sched.Brackets)
	})
}

func TestLoadSettingsDefaultsWhenAbsent(t *testing.T) {
	s, err := LoadSettingsFrom("/nonexistent/settings.yaml")
	require.NoError(t, err)
	assert.Equal(t, "$", s.CurrencySymbol)
	assert.Equal(t, "Flat 10%", s.DefaultProfile)
	assert.NotEmpty(t, s.ProfilePath)
}
