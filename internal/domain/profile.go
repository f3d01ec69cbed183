package domain

import (
	"github.com/shopspring/decimal"
)

// TaxMode identifies which rate policy a profile uses
type TaxMode string

const (
	ModeFlat        TaxMode = "flat"
	ModeProgressive TaxMode = "progressive"
)

// Defaults substituted for missing or malformed persisted fields
var (
	DefaultProfileName = "Unnamed"
	DefaultFlatRate    = decimal.NewFromFloat(10.0)
)

// Bracket represents one marginal-rate tier. UpTo is the inclusive upper
// income bound; nil means the tier is unbounded (the top tier). Rate is a
// percentage.
type Bracket struct {
	UpTo *decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Unbounded reports whether this bracket has no upper income bound
func (b Bracket) Unbounded() bool {
	return b.UpTo == nil
}

// BoundedBracket builds a bracket with a finite upper bound
func BoundedBracket(upTo, rate decimal.Decimal) Bracket {
	return Bracket{UpTo: &upTo, Rate: rate}
}

// UnboundedBracket builds the terminal bracket with no upper bound
func UnboundedBracket(rate decimal.Decimal) Bracket {
	return Bracket{UpTo: nil, Rate: rate}
}

// Schedule is a profile's rate policy: exactly one of FlatSchedule or
// ProgressiveSchedule. Only the active variant carries data, so there is no
// inactive field to track or disable.
type Schedule interface {
	schedule()
}

// FlatSchedule taxes all taxable income at a single percentage rate
type FlatSchedule struct {
	Rate decimal.Decimal
}

// ProgressiveSchedule taxes income through ordered marginal brackets
type ProgressiveSchedule struct {
	Brackets []Bracket
}

func (FlatSchedule) schedule()        {}
func (ProgressiveSchedule) schedule() {}

// Profile represents a named, persistable tax policy
type Profile struct {
	Name     string          `yaml:"name" json:"name"`
	Mode     TaxMode         `yaml:"mode" json:"mode"`
	FlatRate decimal.Decimal `yaml:"flat_rate" json:"flat_rate"`
	Brackets []Bracket       `yaml:"brackets" json:"brackets"`
}

// Schedule returns the rate policy variant selected by the profile's mode
func (p Profile) Schedule() Schedule {
	if p.Mode == ModeProgressive {
		return ProgressiveSchedule{Brackets: p.Brackets}
	}
	return FlatSchedule{Rate: p.FlatRate}
}

// Equal reports whether two profiles carry the same policy: same name, mode,
// flat rate, and brackets in the same order
func (p Profile) Equal(other Profile) bool {
	if p.Name != other.Name || p.Mode != other.Mode || !p.FlatRate.Equal(other.FlatRate) {
		return false
	}
	if len(p.Brackets) != len(other.Brackets) {
		return false
	}
	for i, b := range p.Brackets {
		o := other.Brackets[i]
		if !b.Rate.Equal(o.Rate) {
			return false
		}
		if (b.UpTo == nil) != (o.UpTo == nil) {
			return false
		}
		if b.UpTo != nil && !b.UpTo.Equal(*o.UpTo) {
			return false
		}
	}
	return true
}
