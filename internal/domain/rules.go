package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidBrackets is returned when a progressive bracket table is malformed
var ErrInvalidBrackets = errors.New("invalid tax bracket table")

// ErrInvalidRules is returned when exemption or flat-tax amounts are inconsistent
var ErrInvalidRules = errors.New("invalid tax rules")

// TaxRules holds every rate and threshold the engine applies. All amounts are
// annual rupiah. Zero-valued fields fall back to the 2024 defaults.
type TaxRules struct {
	// Exempt threshold (PTKP) amounts
	Exemption ExemptionRules `yaml:"exemption" json:"exemption"`

	// Progressive rates (PPh 21 / Article 17), lowest bracket first
	Brackets []BracketRule `yaml:"brackets" json:"brackets"`

	// Final tax on gross turnover (PP 55/2022 UMKM)
	FlatTax FlatTaxRules `yaml:"flat_tax" json:"flat_tax"`
}

// ExemptionRules contains the PTKP amounts
type ExemptionRules struct {
	Single       decimal.Decimal `yaml:"single" json:"single"`               // Default: 54,000,000
	Married      decimal.Decimal `yaml:"married" json:"married"`             // Default: 58,500,000
	PerDependent decimal.Decimal `yaml:"per_dependent" json:"per_dependent"` // Default: 4,500,000
}

// BracketRule is one row of the progressive table. A nil Max marks the
// unbounded top bracket.
type BracketRule struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// FlatTaxRules contains the final-tax rate and its turnover ceiling
type FlatTaxRules struct {
	Rate            decimal.Decimal `yaml:"rate" json:"rate"`                         // Default: 0.005
	TurnoverCeiling decimal.Decimal `yaml:"turnover_ceiling" json:"turnover_ceiling"` // Default: 4,800,000,000
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultTaxRules returns the 2024 rules
func DefaultTaxRules() TaxRules {
	return TaxRules{
		Exemption: ExemptionRules{
			Single:       decimal.NewFromInt(54_000_000),
			Married:      decimal.NewFromInt(58_500_000),
			PerDependent: decimal.NewFromInt(4_500_000),
		},
		Brackets: []BracketRule{
			{Min: decimal.Zero, Max: bound(60_000_000), Rate: decimal.NewFromFloat(0.05)},
			{Min: decimal.NewFromInt(60_000_000), Max: bound(250_000_000), Rate: decimal.NewFromFloat(0.15)},
			{Min: decimal.NewFromInt(250_000_000), Max: bound(500_000_000), Rate: decimal.NewFromFloat(0.25)},
			{Min: decimal.NewFromInt(500_000_000), Max: bound(5_000_000_000), Rate: decimal.NewFromFloat(0.30)},
			{Min: decimal.NewFromInt(5_000_000_000), Max: nil, Rate: decimal.NewFromFloat(0.35)},
		},
		FlatTax: FlatTaxRules{
			Rate:            decimal.NewFromFloat(0.005),
			TurnoverCeiling: decimal.NewFromInt(4_800_000_000),
		},
	}
}

// WithDefaults fills every zero-valued field from DefaultTaxRules. The
// bracket table is replaced only as a whole.
func (r TaxRules) WithDefaults() TaxRules {
	def := DefaultTaxRules()
	out := r
	fill := func(v *decimal.Decimal, d decimal.Decimal) {
		if v.IsZero() {
			*v = d
		}
	}
	fill(&out.Exemption.Single, def.Exemption.Single)
	fill(&out.Exemption.Married, def.Exemption.Married)
	fill(&out.Exemption.PerDependent, def.Exemption.PerDependent)
	if len(out.Brackets) == 0 {
		out.Brackets = def.Brackets
	}
	fill(&out.FlatTax.Rate, def.FlatTax.Rate)
	fill(&out.FlatTax.TurnoverCeiling, def.FlatTax.TurnoverCeiling)
	return out
}

// Validate checks that the bracket table covers [0, ∞) with no gaps or
// overlaps and non-decreasing rates in (0, 1], that the married exemption
// exceeds the single one, and that the flat tax has a rate in (0, 1] and a
// positive ceiling.
func (r TaxRules) Validate() error {
	if len(r.Brackets) == 0 {
		return fmt.Errorf("%w: no brackets", ErrInvalidBrackets)
	}
	if !r.Brackets[0].Min.IsZero() {
		return fmt.Errorf("%w: first bracket must start at 0, got %s", ErrInvalidBrackets, r.Brackets[0].Min)
	}
	one := decimal.NewFromInt(1)
	for i, b := range r.Brackets {
		if !b.Rate.IsPositive() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: bracket %d rate %s outside (0, 1]", ErrInvalidBrackets, i, b.Rate)
		}
		last := i == len(r.Brackets)-1
		if b.Max == nil {
			if !last {
				return fmt.Errorf("%w: bracket %d is unbounded but not last", ErrInvalidBrackets, i)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: top bracket must be unbounded", ErrInvalidBrackets)
		}
		if !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("%w: bracket %d max %s not above min %s", ErrInvalidBrackets, i, b.Max, b.Min)
		}
		next := r.Brackets[i+1]
		if !next.Min.Equal(*b.Max) {
			return fmt.Errorf("%w: gap or overlap between bracket %d and %d", ErrInvalidBrackets, i, i+1)
		}
		if next.Rate.LessThan(b.Rate) {
			return fmt.Errorf("%w: bracket %d rate decreases", ErrInvalidBrackets, i+1)
		}
	}

	if r.Exemption.Single.IsNegative() || r.Exemption.Married.IsNegative() || r.Exemption.PerDependent.IsNegative() {
		return fmt.Errorf("%w: exemption amounts cannot be negative", ErrInvalidRules)
	}
	if !r.Exemption.Married.GreaterThan(r.Exemption.Single) {
		return fmt.Errorf("%w: married exemption %s must exceed single exemption %s", ErrInvalidRules, r.Exemption.Married, r.Exemption.Single)
	}
	if !r.FlatTax.Rate.IsPositive() || r.FlatTax.Rate.GreaterThan(one) {
		return fmt.Errorf("%w: flat tax rate %s outside (0, 1]", ErrInvalidRules, r.FlatTax.Rate)
	}
	if !r.FlatTax.TurnoverCeiling.IsPositive() {
		return fmt.Errorf("%w: flat tax turnover ceiling must be positive, got %s", ErrInvalidRules, r.FlatTax.TurnoverCeiling)
	}
	return nil
}
