package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFlat(t *testing.T) {
	tests := []struct {
		name             string
		taxable          decimal.Decimal
		rate             decimal.Decimal
		expectedTax      decimal.Decimal
		expectedMarginal decimal.Decimal
	}{
		{
			name:             "Flat 10% on 60000",
			taxable:          decimal.NewFromInt(60000),
			rate:             decimal.NewFromFloat(10.0),
			expectedTax:      decimal.NewFromInt(6000),
			expectedMarginal: decimal.NewFromFloat(10.0),
		},
		{
			name:             "Fractional rate",
			taxable:          decimal.NewFromInt(1000),
			rate:             decimal.NewFromFloat(12.5),
			expectedTax:      decimal.NewFromInt(125),
			expectedMarginal: decimal.NewFromFloat(12.5),
		},
		{
			name:    "Zero income still reports the configured marginal rate",
			taxable: decimal.Zero,
			rate:    decimal.NewFromFloat(10.0),
			// Deliberate asymmetry with progressive mode, which reports 0
			expectedTax:      decimal.Zero,
			expectedMarginal: decimal.NewFromFloat(10.0),
		},
		{
			name:             "Negative taxable income clamps to zero",
			taxable:          decimal.NewFromInt(-1000),
			rate:             decimal.NewFromFloat(10.0),
			expectedTax:      decimal.Zero,
			expectedMarginal: decimal.NewFromFloat(10.0),
		},
		{
			name:             "Zero rate",
			taxable:          decimal.NewFromInt(60000),
			rate:             decimal.Zero,
			expectedTax:      decimal.Zero,
			expectedMarginal: decimal.Zero,
		},
		{
			name:             "Rates over 100 percent are not forbidden",
			taxable:          decimal.NewFromInt(100),
			rate:             decimal.NewFromInt(150),
			expectedTax:      decimal.NewFromInt(150),
			expectedMarginal: decimal.NewFromInt(150),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, marginal := Flat(tt.taxable, tt.rate)
			assert.True(t, tax.Equal(tt.expectedTax),
				"Expected tax %s, got %s", tt.expectedTax, tax)
			assert.True(t, marginal.Equal(tt.expectedMarginal),
				"Expected marginal %s, got %s", tt.expectedMarginal, marginal)
		})
	}
}

func TestFlatInvariant(t *testing.T) {
	// tax == income * rate / 100 across a sweep of incomes and rates
	for income := int64(0); income <= 100000; income += 12500 {
		for _, rate := range []float64{0, 5, 10, 22.5, 37, 100} {
			inc := decimal.NewFromInt(income)
			r := decimal.NewFromFloat(rate)
			tax, marginal := Flat(inc, r)
			expected := inc.Mul(r).Div(decimal.NewFromInt(100))
			assert.True(t, tax.Equal(expected),
				"income %d rate %v: expected %s, got %s", income, rate, expected, tax)
			assert.True(t, marginal.Equal(r))
		}
	}
}
