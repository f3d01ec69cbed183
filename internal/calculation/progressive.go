package calculation

import (
	"sort"

	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Progressive walks taxable income through an ordered bracket schedule and
// returns the total tax and the marginal rate, i.e. the rate of the highest
// bracket that actually received income. The input brackets may arrive in any
// order and may lack an unbounded top tier; both are repaired here.
// Duplicate finite bounds are the caller's responsibility to reject before
// this call, the walk itself is stable and does not inspect them.
func Progressive(taxableIncome decimal.Decimal, brackets []domain.Bracket) (totalTax, marginalRate decimal.Decimal) {
	cleaned := normalizeBrackets(brackets)

	remaining := taxableIncome
	if remaining.LessThan(decimal.Zero) {
		remaining = decimal.Zero
	}

	lowerBound := decimal.Zero
	totalTax = decimal.Zero
	marginalRate = decimal.Zero

	for _, b := range cleaned {
		span := bracketSpan(remaining, lowerBound, b)
		if span.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(span.Mul(b.Rate).Div(oneHundred))
			remaining = remaining.Sub(span)
			marginalRate = b.Rate
		}
		if b.Unbounded() {
			break
		}
		lowerBound = *b.UpTo
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
	}

	return totalTax, marginalRate
}

var oneHundred = decimal.NewFromInt(100)

// bracketSpan computes how much of the remaining income falls inside this
// bracket, never negative
func bracketSpan(remaining, lowerBound decimal.Decimal, b domain.Bracket) decimal.Decimal {
	if b.Unbounded() {
		// Terminal bracket absorbs everything left
		if remaining.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return remaining
	}
	width := b.UpTo.Sub(lowerBound)
	span := decimal.Min(remaining, width)
	if span.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return span
}

// normalizeBrackets sorts brackets ascending by upper bound with unbounded
// tiers last and guarantees exactly one terminal unbounded bracket. A missing
// terminal bracket is synthesized at the highest finite tier's rate; an empty
// schedule becomes a single unbounded bracket at rate zero.
func normalizeBrackets(brackets []domain.Bracket) []domain.Bracket {
	cleaned := make([]domain.Bracket, len(brackets))
	copy(cleaned, brackets)

	sort.SliceStable(cleaned, func(i, j int) bool {
		if cleaned[i].Unbounded() {
			return false
		}
		if cleaned[j].Unbounded() {
			return true
		}
		return cleaned[i].UpTo.LessThan(*cleaned[j].UpTo)
	})

	if len(cleaned) == 0 {
		return []domain.Bracket{domain.UnboundedBracket(decimal.Zero)}
	}
	if !cleaned[len(cleaned)-1].Unbounded() {
		cleaned = append(cleaned, domain.UnboundedBracket(cleaned[len(cleaned)-1].Rate))
	}
	return cleaned
}
