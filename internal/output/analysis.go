package output

import (
	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"github.com/shopspring/decimal"
)

// RegimeComparison describes how much the recommended regime saves over the other one.
type RegimeComparison struct {
	Recommended       domain.Regime
	RecommendedAmount decimal.Decimal
	Alternative       domain.Regime
	AlternativeAmount decimal.Decimal
	// AlternativeOffered is false when the flat regime is not available.
	AlternativeOffered bool
	Savings            decimal.Decimal
}

// CompareRegimes summarizes the regime choice of a result.
// Extracted from the console formatters for testability.
func CompareRegimes(result *domain.TaxResult) RegimeComparison {
	if result.RecommendedRegime == domain.RegimeFlat {
		return RegimeComparison{
			Recommended:        domain.RegimeFlat,
			RecommendedAmount:  result.FlatTax,
			Alternative:        domain.RegimeProgressive,
			AlternativeAmount:  result.ProgressiveTax,
			AlternativeOffered: true,
			Savings:            result.ProgressiveTax.Sub(result.FlatTax),
		}
	}
	cmp := RegimeComparison{
		Recommended:        domain.RegimeProgressive,
		RecommendedAmount:  result.ProgressiveTax,
		Alternative:        domain.RegimeFlat,
		AlternativeAmount:  result.FlatTax,
		AlternativeOffered: result.FlatTaxEligible,
		Savings:            decimal.Zero,
	}
	if result.FlatTaxEligible {
		cmp.Savings = result.FlatTax.Sub(result.ProgressiveTax)
	}
	return cmp
}

// BestSimulation returns the scenario with the largest take-home gain, or false when there are none.
func BestSimulation(outcomes []domain.SimulationOutcome) (domain.SimulationOutcome, bool) {
	if len(outcomes) == 0 {
		return domain.SimulationOutcome{}, false
	}
	best := outcomes[0]
	for _, o := range outcomes[1:] {
		if o.TakeHomeDelta.GreaterThan(best.TakeHomeDelta) {
			best = o
		}
	}
	return best, true
}
