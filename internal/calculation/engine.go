package calculation

import (
	"fmt"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxEngine computes annual tax liabilities. It holds only the rules it was
// built with, so one engine may serve any number of concurrent calls.
type TaxEngine struct {
	Rules  domain.TaxRules
	Logger Logger
}

// NewTaxEngine creates a tax engine with the 2024 rules
func NewTaxEngine() *TaxEngine {
	return &TaxEngine{
		Rules:  domain.DefaultTaxRules(),
		Logger: NopLogger{},
	}
}

// NewTaxEngineWithRules creates a tax engine with configurable rules. Zero
// sections fall back to defaults; a malformed bracket table is rejected.
func NewTaxEngineWithRules(rules domain.TaxRules) (*TaxEngine, error) {
	rules = rules.WithDefaults()
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("tax rules: %w", err)
	}
	return &TaxEngine{
		Rules:  rules,
		Logger: NopLogger{},
	}, nil
}

// SetLogger sets the logger for the tax engine. If nil is provided, a no-op logger is used.
func (te *TaxEngine) SetLogger(l Logger) {
	if l == nil {
		te.Logger = NopLogger{}
		return
	}
	te.Logger = l
}

// ComputeTax runs the full calculation for one taxpayer.
//
// Steps run in a fixed order: annualize income and costs, derive net income,
// resolve PTKP, derive taxable income, apportion the progressive tax, assess
// the flat tax, pick the cheaper regime and spread it over twelve months.
// Entry amounts are assumed non-negative; see config.InputParser.
func (te *TaxEngine) ComputeTax(profile domain.TaxpayerProfile, income []domain.IncomeEntry, costs []domain.CostEntry) *domain.TaxResult {
	gross := Annualize(income)
	totalCosts := Annualize(costs)
	net := decimal.Max(decimal.Zero, gross.Sub(totalCosts))

	threshold := te.ResolveExemptThreshold(profile)
	taxable := decimal.Max(decimal.Zero, net.Sub(threshold))
	te.Logger.Debugf("gross=%s costs=%s net=%s ptkp=%s taxable=%s", gross, totalCosts, net, threshold, taxable)

	progressive, breakdown := te.ApportionProgressive(taxable)
	flat := te.ComputeFlatTax(gross)
	regime := SelectRegime(progressive, flat)

	owed := progressive
	if regime == domain.RegimeFlat {
		owed = flat.Amount
	}
	monthly := owed.Div(decimal.NewFromInt(12))
	te.Logger.Debugf("progressive=%s flat=%s eligible=%t regime=%s monthly=%s", progressive, flat.Amount, flat.Eligible, regime, monthly)

	return &domain.TaxResult{
		GrossIncome:        gross,
		TotalCosts:         totalCosts,
		NetIncome:          net,
		ExemptThreshold:    threshold,
		TaxableIncome:      taxable,
		ProgressiveTax:     progressive,
		FlatTax:            flat.Amount,
		FlatTaxEligible:    flat.Eligible,
		RecommendedRegime:  regime,
		MonthlyInstallment: monthly,
		BracketBreakdown:   breakdown,
	}
}

// SelectRegime recommends the flat regime only when it is offered, non-zero
// and strictly cheaper; ties stay progressive.
func SelectRegime(progressive decimal.Decimal, flat domain.FlatTaxAssessment) domain.Regime {
	if flat.Eligible && flat.Amount.IsPositive() && flat.Amount.LessThan(progressive) {
		return domain.RegimeFlat
	}
	return domain.RegimeProgressive
}
