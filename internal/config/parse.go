package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Validation errors surfaced to the user. Everything here is synchronous
// input validation; there is no fatal error class and no partial success.
var (
	ErrAmountNotNumeric = errors.New("income and deductions must be non-negative numbers")
	ErrFlatRateInvalid  = errors.New("flat rate must be a number")
	ErrBracketNoRate    = errors.New("each bracket must have a rate")
	ErrRateNotNumeric   = errors.New("rates must be numbers")
	ErrBoundNotNumeric  = errors.New("'up to' values must be numbers or left blank for unbounded")
)

// BracketField is one raw bracket row as entered by the user: two strings,
// either of which may be blank
type BracketField struct {
	UpTo string
	Rate string
}

// ParseAmount parses gross income or deductions: a number that must be >= 0
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, ErrAmountNotNumeric
	}
	if amount.LessThan(decimal.Zero) {
		return decimal.Zero, ErrAmountNotNumeric
	}
	return amount, nil
}

// ParseFlatRate parses the flat-rate field into a FlatSchedule
func ParseFlatRate(value string) (domain.FlatSchedule, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return domain.FlatSchedule{}, ErrFlatRateInvalid
	}
	return domain.FlatSchedule{Rate: rate}, nil
}

// ParseBrackets validates raw bracket rows into a ProgressiveSchedule. A
// blank upper bound means unbounded; a blank rate is an error. Duplicate
// finite bounds are rejected naming the conflicting value. Valid rows come
// back sorted ascending by bound with unbounded last.
func ParseBrackets(rows []BracketField) (domain.ProgressiveSchedule, error) {
	brackets := make([]domain.Bracket, 0, len(rows))

	for _, row := range rows {
		rateField := strings.TrimSpace(row.Rate)
		if rateField == "" {
			return domain.ProgressiveSchedule{}, ErrBracketNoRate
		}
		rate, err := decimal.NewFromString(rateField)
		if err != nil {
			return domain.ProgressiveSchedule{}, ErrRateNotNumeric
		}

		b := domain.Bracket{Rate: rate}
		if upToField := strings.TrimSpace(row.UpTo); upToField != "" {
			upTo, err := decimal.NewFromString(upToField)
			if err != nil {
				return domain.ProgressiveSchedule{}, ErrBoundNotNumeric
			}
			b.UpTo = &upTo
		}
		brackets = append(brackets, b)
	}

	if dup, found := findDuplicateBound(brackets); found {
		return domain.ProgressiveSchedule{}, fmt.Errorf("duplicate 'up to' value %s found", dup)
	}

	sort.SliceStable(brackets, func(i, j int) bool {
		if brackets[i].Unbounded() {
			return false
		}
		if brackets[j].Unbounded() {
			return true
		}
		return brackets[i].UpTo.LessThan(*brackets[j].UpTo)
	})

	return domain.ProgressiveSchedule{Brackets: brackets}, nil
}

// findDuplicateBound reports the first finite upper bound that appears more
// than once. Unbounded tiers are not checked; the bracket walk stops at the
// first unbounded tier so extras are harmless.
func findDuplicateBound(brackets []domain.Bracket) (decimal.Decimal, bool) {
	seen := make(map[string]bool, len(brackets))
	for _, b := range brackets {
		if b.Unbounded() {
			continue
		}
		key := b.UpTo.String()
		if seen[key] {
			return *b.UpTo, true
		}
		seen[key] = true
	}
	return decimal.Zero, false
}
