package calculation

import (
	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Calculate runs the rate policy selected by the input's schedule and derives
// the full result set: taxable income, total tax, net income, effective rate
// and marginal rate. No rounding is applied; formatting happens downstream.
func Calculate(input domain.CalculationInput) domain.CalculationResult {
	taxable := input.TaxableIncome()

	var totalTax, marginalRate decimal.Decimal
	switch sched := input.Schedule.(type) {
	case domain.ProgressiveSchedule:
		totalTax, marginalRate = Progressive(taxable, sched.Brackets)
	case domain.FlatSchedule:
		totalTax, marginalRate = Flat(taxable, sched.Rate)
	default:
		// Nil or unknown schedule taxes nothing
		totalTax, marginalRate = decimal.Zero, decimal.Zero
	}

	effectiveRate := decimal.Zero
	if input.GrossIncome.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(input.GrossIncome).Mul(oneHundred)
	}

	return domain.CalculationResult{
		TaxableIncome: taxable,
		TotalTax:      totalTax,
		NetIncome:     input.GrossIncome.Sub(totalTax),
		EffectiveRate: effectiveRate,
		MarginalRate:  marginalRate,
	}
}
