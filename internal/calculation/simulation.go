package calculation

import (
	"context"
	"fmt"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultScenarios returns the quick what-if scenarios built from a baseline:
// current figures and income raised by 25%, 50% and 100% with costs held.
func DefaultScenarios(baseline *domain.TaxResult) []domain.Scenario {
	scale := func(name string, factor float64) domain.Scenario {
		return domain.Scenario{
			Name:        name,
			GrossIncome: baseline.GrossIncome.Mul(decimal.NewFromFloat(factor)),
			Costs:       baseline.TotalCosts,
		}
	}
	return []domain.Scenario{
		scale("Current", 1),
		scale("+25% income", 1.25),
		scale("+50% income", 1.5),
		scale("2x income", 2),
	}
}

// scenarioRequest expresses a scenario as single annual income and cost entries
func scenarioRequest(profile domain.TaxpayerProfile, sc domain.Scenario) CalculationRequest {
	return CalculationRequest{
		Profile: profile,
		Income: []domain.IncomeEntry{{
			ID: "simulation", Category: domain.IncomeOther, Name: sc.Name,
			Amount: sc.GrossIncome, Frequency: domain.FrequencyAnnual,
		}},
		Costs: []domain.CostEntry{{
			ID: "simulation", Category: domain.CostOther, Name: sc.Name,
			Amount: sc.Costs, Frequency: domain.FrequencyAnnual,
		}},
	}
}

// Simulate recomputes the tax for each scenario and compares it against the baseline.
func (te *TaxEngine) Simulate(ctx context.Context, profile domain.TaxpayerProfile, baseline *domain.TaxResult, scenarios []domain.Scenario) ([]domain.SimulationOutcome, error) {
	if baseline == nil {
		return nil, fmt.Errorf("simulation requires a baseline result")
	}
	requests := make([]CalculationRequest, len(scenarios))
	for i, sc := range scenarios {
		requests[i] = scenarioRequest(profile, sc)
	}
	results, err := te.ComputeBatch(ctx, requests)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	baseOwed := baseline.OwedTax()
	baseTakeHome := baseline.NetIncome.Sub(baseOwed)
	outcomes := make([]domain.SimulationOutcome, len(scenarios))
	for i, res := range results {
		owed := res.OwedTax()
		grossDelta := res.GrossIncome.Sub(baseline.GrossIncome)
		pct := decimal.Zero
		if baseline.GrossIncome.IsPositive() {
			pct = grossDelta.Div(baseline.GrossIncome)
		}
		outcomes[i] = domain.SimulationOutcome{
			Scenario:      scenarios[i],
			Result:        res,
			GrossDelta:    grossDelta,
			GrossDeltaPct: pct,
			TaxDelta:      owed.Sub(baseOwed),
			TakeHomeDelta: res.NetIncome.Sub(owed).Sub(baseTakeHome),
		}
		te.Logger.Debugf("scenario %q: gross=%s owed=%s regime=%s", scenarios[i].Name, res.GrossIncome, owed, res.RecommendedRegime)
	}
	return outcomes, nil
}
