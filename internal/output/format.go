package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the currency symbol, thousands
// separators, and two decimal places, e.g. "$8,500.00"
func FormatMoney(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = "$"
	}

	fixed := amount.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(whole)

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	sb.WriteString(symbol)
	sb.WriteString(grouped)
	sb.WriteString(".")
	sb.WriteString(frac)
	return sb.String()
}

// FormatPercent renders a rate at two decimal places, e.g. "14.17%"
func FormatPercent(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}

// groupThousands inserts commas into a plain digit string
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, ",")
}
