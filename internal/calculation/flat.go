package calculation

import (
	"github.com/shopspring/decimal"
)

// Flat computes tax at a single percentage rate. The marginal rate is the
// configured rate unconditionally, even at zero taxable income: flat mode has
// no notion of an unused rate.
func Flat(taxableIncome, rate decimal.Decimal) (totalTax, marginalRate decimal.Decimal) {
	taxable := taxableIncome
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}
	return taxable.Mul(rate).Div(oneHundred), rate
}
