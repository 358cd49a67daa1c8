package calculation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures warnings for assertions
type recordingLogger struct {
	NopLogger
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func singleProfile() domain.TaxpayerProfile {
	return domain.TaxpayerProfile{ID: "p-1", Name: "Sari", MaritalStatus: domain.StatusSingle}
}

func monthlyIncome(amount string) domain.IncomeEntry {
	return domain.IncomeEntry{Category: domain.IncomeAdsense, Name: "AdSense", Amount: dec(amount), Frequency: domain.FrequencyMonthly}
}

// TestComputeTax_CreatorScenario walks the reference scenario: a single
// creator earning 10M a month with no costs.
func TestComputeTax_CreatorScenario(t *testing.T) {
	engine := NewTaxEngine()
	result := engine.ComputeTax(singleProfile(), []domain.IncomeEntry{monthlyIncome("10000000")}, nil)

	assertDecimal(t, "120000000", result.GrossIncome)
	assertDecimal(t, "0", result.TotalCosts)
	assertDecimal(t, "120000000", result.NetIncome)
	assertDecimal(t, "54000000", result.ExemptThreshold)
	assertDecimal(t, "66000000", result.TaxableIncome)
	assertDecimal(t, "3900000", result.ProgressiveTax)
	assertDecimal(t, "600000", result.FlatTax)
	assert.True(t, result.FlatTaxEligible)
	assert.Equal(t, domain.RegimeFlat, result.RecommendedRegime)
	assertDecimal(t, "50000", result.MonthlyInstallment)

	require.Len(t, result.BracketBreakdown, 2)
	assertDecimal(t, "3000000", result.BracketBreakdown[0].Amount)
	assertDecimal(t, "900000", result.BracketBreakdown[1].Amount)
	assertDecimal(t, "0.05", result.BracketBreakdown[0].Rate)
	assertDecimal(t, "0.15", result.BracketBreakdown[1].Rate)
}

func TestComputeTax_Scenarios(t *testing.T) {
	engine := NewTaxEngine()

	tests := []struct {
		name        string
		profile     domain.TaxpayerProfile
		income      []domain.IncomeEntry
		costs       []domain.CostEntry
		net         string
		taxable     string
		progressive string
		flat        string
		eligible    bool
		regime      domain.Regime
		monthly     string
	}{
		{
			name:        "No income at all",
			profile:     singleProfile(),
			net:         "0",
			taxable:     "0",
			progressive: "0",
			flat:        "0",
			eligible:    true,
			regime:      domain.RegimeProgressive,
			monthly:     "0",
		},
		{
			name:        "Costs exceed income",
			profile:     singleProfile(),
			income:      []domain.IncomeEntry{{Amount: dec("20000000"), Frequency: domain.FrequencyAnnual}},
			costs:       []domain.CostEntry{{Amount: dec("3000000"), Frequency: domain.FrequencyMonthly}},
			net:         "0",
			taxable:     "0",
			progressive: "0",
			flat:        "100000",
			eligible:    true,
			regime:      domain.RegimeProgressive,
			monthly:     "0",
		},
		{
			name:        "Below PTKP",
			profile:     domain.TaxpayerProfile{MaritalStatus: domain.StatusMarriedWithDependents, DependentsCount: 2},
			income:      []domain.IncomeEntry{monthlyIncome("5000000")},
			net:         "60000000",
			taxable:     "0",
			progressive: "0",
			flat:        "300000",
			eligible:    true,
			regime:      domain.RegimeProgressive,
			monthly:     "0",
		},
		{
			name:    "Costs reduce progressive but not flat",
			profile: domain.TaxpayerProfile{MaritalStatus: domain.StatusMarried},
			income:  []domain.IncomeEntry{monthlyIncome("25000000")},
			costs: []domain.CostEntry{
				{Category: domain.CostSoftware, Amount: dec("2000000"), Frequency: domain.FrequencyMonthly},
				{Category: domain.CostEquipment, Amount: dec("30000000"), Frequency: domain.FrequencyAnnual},
			},
			net:         "246000000",
			taxable:     "187500000",
			progressive: "22125000",
			flat:        "1500000",
			eligible:    true,
			regime:      domain.RegimeFlat,
			monthly:     "125000",
		},
		{
			name:        "Above turnover ceiling",
			profile:     singleProfile(),
			income:      []domain.IncomeEntry{{Amount: dec("6000000000"), Frequency: domain.FrequencyAnnual}},
			net:         "6000000000",
			taxable:     "5946000000",
			progressive: "1775100000",
			flat:        "0",
			eligible:    false,
			regime:      domain.RegimeProgressive,
			monthly:     "147925000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.ComputeTax(tt.profile, tt.income, tt.costs)
			assertDecimal(t, tt.net, result.NetIncome, "net")
			assertDecimal(t, tt.taxable, result.TaxableIncome, "taxable")
			assertDecimal(t, tt.progressive, result.ProgressiveTax, "progressive")
			assertDecimal(t, tt.flat, result.FlatTax, "flat")
			assert.Equal(t, tt.eligible, result.FlatTaxEligible)
			assert.Equal(t, tt.regime, result.RecommendedRegime)
			assertDecimal(t, tt.monthly, result.MonthlyInstallment, "monthly")
		})
	}
}

// TestComputeTax_Invariants checks the result invariants across many inputs
func TestComputeTax_Invariants(t *testing.T) {
	engine := NewTaxEngine()
	statuses := []domain.TaxpayerProfile{
		{MaritalStatus: domain.StatusSingle},
		{MaritalStatus: domain.StatusMarried},
		{MaritalStatus: domain.StatusMarriedWithDependents, DependentsCount: 3},
	}
	twelve := decimal.NewFromInt(12)

	for _, profile := range statuses {
		for m := int64(0); m <= 600; m += 13 {
			income := []domain.IncomeEntry{monthlyIncome(decimal.NewFromInt(m * 1_000_000).String())}
			costs := []domain.CostEntry{{Amount: decimal.NewFromInt(m * 150_000), Frequency: domain.FrequencyMonthly}}
			r := engine.ComputeTax(profile, income, costs)

			assert.False(t, r.NetIncome.IsNegative())
			assert.False(t, r.TaxableIncome.IsNegative())
			assert.True(t, r.NetIncome.Equal(decimal.Max(decimal.Zero, r.GrossIncome.Sub(r.TotalCosts))))
			assert.True(t, r.TaxableIncome.Equal(decimal.Max(decimal.Zero, r.NetIncome.Sub(r.ExemptThreshold))))

			sum := decimal.Zero
			apportioned := decimal.Zero
			for _, b := range r.BracketBreakdown {
				sum = sum.Add(b.Amount)
				apportioned = apportioned.Add(b.Income)
			}
			assert.True(t, sum.Equal(r.ProgressiveTax))
			assert.True(t, apportioned.Equal(r.TaxableIncome))

			if r.RecommendedRegime == domain.RegimeFlat {
				assert.True(t, r.FlatTaxEligible)
				assert.True(t, r.FlatTax.LessThan(r.ProgressiveTax))
			}
			assert.True(t, r.MonthlyInstallment.Mul(twelve).Sub(r.OwedTax()).Abs().LessThan(dec("0.000001")))
		}
	}
}

func TestComputeTax_TieGoesToProgressive(t *testing.T) {
	// 100M gross, 54M PTKP: progressive is 46M × 5% = 2.3M, and a 2.3% flat
	// rate on 100M gives the same amount.
	engine, err := NewTaxEngineWithRules(domain.TaxRules{
		FlatTax: domain.FlatTaxRules{Rate: dec("0.023"), TurnoverCeiling: dec("1000000000")},
	})
	require.NoError(t, err)

	result := engine.ComputeTax(singleProfile(), []domain.IncomeEntry{{Amount: dec("100000000"), Frequency: domain.FrequencyAnnual}}, nil)
	assertDecimal(t, "2300000", result.ProgressiveTax)
	assert.True(t, result.FlatTax.Equal(result.ProgressiveTax), "flat %s progressive %s", result.FlatTax, result.ProgressiveTax)
	assert.Equal(t, domain.RegimeProgressive, result.RecommendedRegime)
}

func TestComputeTax_ZeroFlatRateNeverRecommended(t *testing.T) {
	rules := domain.DefaultTaxRules()
	rules.FlatTax.Rate = decimal.Zero
	_, err := NewTaxEngineWithRules(rules)
	require.NoError(t, err, "a zero rate falls back to the default")

	// an engine assembled without validation still must not pick a free flat tax
	engine := &TaxEngine{Rules: rules, Logger: NopLogger{}}
	result := engine.ComputeTax(singleProfile(), []domain.IncomeEntry{monthlyIncome("10000000")}, nil)
	assert.True(t, result.FlatTaxEligible)
	assertDecimal(t, "0", result.FlatTax)
	assertDecimal(t, "3900000", result.ProgressiveTax)
	assert.Equal(t, domain.RegimeProgressive, result.RecommendedRegime)
	assertDecimal(t, "325000", result.MonthlyInstallment)
}

func TestComputeTax_Idempotent(t *testing.T) {
	engine := NewTaxEngine()
	profile := domain.TaxpayerProfile{MaritalStatus: domain.StatusMarriedWithDependents, DependentsCount: 1}
	income := []domain.IncomeEntry{monthlyIncome("17500000"), {Amount: dec("40000000"), Frequency: domain.FrequencyAnnual}}
	costs := []domain.CostEntry{{Amount: dec("750000"), Frequency: domain.FrequencyMonthly}}

	first := engine.ComputeTax(profile, income, costs)
	second := engine.ComputeTax(profile, income, costs)
	assert.Equal(t, first, second)
}

func TestComputeTax_DoesNotMutateInputs(t *testing.T) {
	engine := NewTaxEngine()
	profile := domain.TaxpayerProfile{ID: "p", MaritalStatus: domain.StatusMarriedWithDependents, DependentsCount: -1}
	income := []domain.IncomeEntry{monthlyIncome("1000")}
	costs := []domain.CostEntry{{Amount: dec("10"), Frequency: domain.FrequencyMonthly}}

	engine.ComputeTax(profile, income, costs)
	assert.Equal(t, -1, profile.DependentsCount)
	assertDecimal(t, "1000", income[0].Amount)
	assert.Equal(t, domain.FrequencyMonthly, costs[0].Frequency)
}

func TestComputeTax_LogsLenientDefaults(t *testing.T) {
	engine := NewTaxEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	engine.ComputeTax(domain.TaxpayerProfile{ID: "x", MaritalStatus: "widowed"}, nil, nil)
	engine.ComputeTax(domain.TaxpayerProfile{ID: "y", MaritalStatus: domain.StatusMarriedWithDependents, DependentsCount: -4}, nil, nil)

	require.Len(t, logger.warns, 2)
	assert.Contains(t, logger.warns[0], "widowed")
	assert.Contains(t, logger.warns[1], "-4")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
