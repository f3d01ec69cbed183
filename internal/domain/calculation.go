package domain

import (
	"github.com/shopspring/decimal"
)

// CalculationInput carries one computation request from the form or CLI to
// the calculator. It is transient and never persisted.
type CalculationInput struct {
	GrossIncome    decimal.Decimal
	Deductions     decimal.Decimal
	CurrencySymbol string
	Schedule       Schedule
}

// TaxableIncome is gross income minus deductions, floored at zero
func (ci CalculationInput) TaxableIncome() decimal.Decimal {
	taxable := ci.GrossIncome.Sub(ci.Deductions)
	if taxable.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return taxable
}

// CalculationResult holds the five computed values displayed to the user.
// All values are plain numbers; formatting is a presentation concern.
type CalculationResult struct {
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	NetIncome     decimal.Decimal `json:"net_income"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	MarginalRate  decimal.Decimal `json:"marginal_rate"`
}
