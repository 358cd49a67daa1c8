package calculation

import (
	"github.com/kreatorpajak/freelance-tax/internal/domain"
	money "github.com/kreatorpajak/freelance-tax/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. PTKP (exempt threshold): 2024 amounts, 54M single, 58.5M married,
//    +4.5M per dependent. Dependents only count for married_with_dependents.
//
// 2. Progressive rates: Article 17 brackets 5/15/25/30/35%, applied to
//    net income after PTKP. No rounding of the taxable base to thousands.
//
// 3. Final tax: 0.5% of gross turnover while turnover stays at or below 4.8B.
//    The 500M turnover exemption for individuals is not modelled.

// Annualize sums entries on an annual basis: monthly amounts count twelve
// times, anything else counts once. Negative amounts pass through unchanged.
func Annualize[E domain.PeriodicEntry](entries []E) decimal.Decimal {
	total := money.Zero()
	for _, e := range entries {
		amount, freq := e.Periodic()
		m := money.NewMoneyFromDecimal(amount)
		if freq == domain.FrequencyMonthly {
			m = m.Annual()
		}
		total = total.Add(m)
	}
	return total.Decimal
}

// ResolveExemptThreshold returns the annual PTKP for a profile.
// An unrecognized status is treated as single and a negative dependents
// count as zero.
func (te *TaxEngine) ResolveExemptThreshold(profile domain.TaxpayerProfile) decimal.Decimal {
	ex := te.Rules.Exemption
	switch profile.MaritalStatus {
	case domain.StatusSingle:
		return ex.Single
	case domain.StatusMarried:
		return ex.Married
	case domain.StatusMarriedWithDependents:
		n := profile.DependentsCount
		if n < 0 {
			te.Logger.Warnf("negative dependents count %d for profile %q, using 0", n, profile.ID)
			n = 0
		}
		return ex.Married.Add(ex.PerDependent.Mul(decimal.NewFromInt(int64(n))))
	default:
		te.Logger.Warnf("unrecognized marital status %q for profile %q, using single", profile.MaritalStatus, profile.ID)
		return ex.Single
	}
}

// ApportionProgressive splits taxable income across the bracket table and
// taxes each slice at its marginal rate. Only brackets that receive income
// appear in the breakdown. Arithmetic is exact; nothing is rounded.
func (te *TaxEngine) ApportionProgressive(taxableIncome decimal.Decimal) (decimal.Decimal, []domain.TaxBracket) {
	if !taxableIncome.IsPositive() {
		return decimal.Zero, []domain.TaxBracket{}
	}

	totalTax := decimal.Zero
	breakdown := []domain.TaxBracket{}
	for _, bracket := range te.Rules.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		top := taxableIncome
		if bracket.Max != nil {
			top = decimal.Min(taxableIncome, *bracket.Max)
		}
		incomeInBracket := top.Sub(bracket.Min)
		if !incomeInBracket.IsPositive() {
			continue
		}
		tax := incomeInBracket.Mul(bracket.Rate)
		totalTax = totalTax.Add(tax)
		breakdown = append(breakdown, domain.TaxBracket{
			Min:    bracket.Min,
			Max:    bracket.Max,
			Rate:   bracket.Rate,
			Income: incomeInBracket,
			Amount: tax,
		})
	}

	return totalTax, breakdown
}

// ComputeFlatTax assesses the final tax on gross turnover. Turnover exactly at
// the ceiling is still eligible.
func (te *TaxEngine) ComputeFlatTax(grossIncome decimal.Decimal) domain.FlatTaxAssessment {
	ft := te.Rules.FlatTax
	if grossIncome.GreaterThan(ft.TurnoverCeiling) {
		return domain.FlatTaxAssessment{Eligible: false, Amount: decimal.Zero}
	}
	return domain.FlatTaxAssessment{
		Eligible: true,
		Amount:   money.NewMoneyFromDecimal(grossIncome).Tax(ft.Rate).Decimal,
	}
}
