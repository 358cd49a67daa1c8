package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the factor between monthly and annual amounts.
var MonthsPerYear = decimal.NewFromInt(12)

// Money represents a rupiah amount with exact decimal precision.
// Arithmetic never rounds; rounding happens only through Round and Floor.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to whole rupiah, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(0)}
}

// Floor truncates toward negative infinity to whole rupiah.
func (m Money) Floor() Money {
	return Money{m.Decimal.Floor()}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(MonthsPerYear)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(MonthsPerYear)}
}

// Tax returns the tax owed on this amount at the given rate.
func (m Money) Tax(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// NonNegative clamps the amount at zero.
func (m Money) NonNegative() Money {
	if m.Decimal.IsNegative() {
		return Zero()
	}
	return m
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount in whole rupiah without grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Format renders the amount the way id-ID locales display rupiah:
// "Rp 1.234.567", rounded to whole rupiah.
func (m Money) Format() string {
	digits := m.Round().Decimal.Abs().String()
	var b strings.Builder
	if m.Round().Decimal.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("Rp ")
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
