package calculation

import (
	"context"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
)

// RunOptions controls the optional parts of a report
type RunOptions struct {
	// Simulate adds what-if outcomes: the configured scenarios, or the
	// default ones when the configuration has none.
	Simulate bool
}

// RunConfiguration computes the full report for a parsed configuration
func (te *TaxEngine) RunConfiguration(ctx context.Context, config *domain.Configuration, opts RunOptions) (*domain.TaxReport, error) {
	result := te.ComputeTax(config.Profile, config.Income, config.Costs)
	te.Logger.Infof("computed tax for profile %s: regime=%s owed=%s", config.Profile.ID, result.RecommendedRegime, result.OwedTax())

	report := &domain.TaxReport{
		Profile:  config.Profile,
		TaxYear:  config.TaxYear,
		Income:   config.Income,
		Costs:    config.Costs,
		Result:   result,
		Metrics:  Metrics(result),
		Schedule: BuildPaymentSchedule(result, config.TaxYear),
		Rules:    te.Rules,
	}
	report.TaxYear = report.Schedule.TaxYear
	report.NextInstallment = NextInstallment(report.Schedule, nowFunc())

	if opts.Simulate {
		scenarios := config.Scenarios
		if len(scenarios) == 0 {
			scenarios = DefaultScenarios(result)
		}
		outcomes, err := te.Simulate(ctx, config.Profile, result, scenarios)
		if err != nil {
			return nil, err
		}
		report.Simulations = outcomes
	}
	return report, nil
}
