package output

import (
	"fmt"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
)

// GenerateAssumptions lists the rules a report was computed with
func GenerateAssumptions(rules domain.TaxRules) []string {
	out := []string{
		fmt.Sprintf("PTKP: %s single, %s married, +%s per dependent",
			FormatCurrency(rules.Exemption.Single), FormatCurrency(rules.Exemption.Married), FormatCurrency(rules.Exemption.PerDependent)),
	}
	for _, b := range rules.Brackets {
		out = append(out, fmt.Sprintf("Progressive bracket %s at %s", FormatBracketRange(b.Min, b.Max), FormatPercentage(b.Rate)))
	}
	out = append(out,
		fmt.Sprintf("Final tax: %s of gross turnover up to %s", FormatPercentage(rules.FlatTax.Rate), FormatCurrency(rules.FlatTax.TurnoverCeiling)),
		"Installments are due on the 15th of the following month",
	)
	return out
}
