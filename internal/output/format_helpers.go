package output

import (
	"strconv"

	money "github.com/kreatorpajak/freelance-tax/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as rupiah, e.g. "Rp 1.234.567".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a fractional rate as a percentage with 1 decimal (0.05 -> "5.0%").
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(1) + "%"
}

// FormatBracketRange renders a bracket's bounds, e.g. "Rp 0 - Rp 60.000.000" or "Rp 5.000.000.000+".
func FormatBracketRange(min decimal.Decimal, max *decimal.Decimal) string {
	if max == nil {
		return FormatCurrency(min) + "+"
	}
	return FormatCurrency(min) + " - " + FormatCurrency(*max)
}

// FormatDaysUntil renders a day count relative to today ("today", "in 1 day", "in 12 days").
func FormatDaysUntil(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "in 1 day"
	default:
		return "in " + intToString(days) + " days"
	}
}

var decimalHundred = decimal.NewFromInt(100)

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
