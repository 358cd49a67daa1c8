package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Regime is one of the two mutually exclusive ways to settle the annual tax
type Regime string

const (
	RegimeProgressive Regime = "progressive"
	RegimeFlat        Regime = "flat"
)

// TaxBracket is one row of the progressive breakdown. Income is the slice of
// taxable income apportioned to the bracket and Amount is Income × Rate.
type TaxBracket struct {
	Min    decimal.Decimal  `json:"min"`
	Max    *decimal.Decimal `json:"max"` // nil for the unbounded top bracket
	Rate   decimal.Decimal  `json:"rate"`
	Income decimal.Decimal  `json:"income"`
	Amount decimal.Decimal  `json:"amount"`
}

// FlatTaxAssessment separates "not offered" from "offered at zero".
type FlatTaxAssessment struct {
	Eligible bool            `json:"eligible"`
	Amount   decimal.Decimal `json:"amount"`
}

// TaxResult is the complete annual computation
type TaxResult struct {
	GrossIncome        decimal.Decimal `json:"gross_income"`
	TotalCosts         decimal.Decimal `json:"total_costs"`
	NetIncome          decimal.Decimal `json:"net_income"`
	ExemptThreshold    decimal.Decimal `json:"exempt_threshold"`
	TaxableIncome      decimal.Decimal `json:"taxable_income"`
	ProgressiveTax     decimal.Decimal `json:"progressive_tax"`
	FlatTax            decimal.Decimal `json:"flat_tax"`
	FlatTaxEligible    bool            `json:"flat_tax_eligible"`
	RecommendedRegime  Regime          `json:"recommended_regime"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	BracketBreakdown   []TaxBracket    `json:"bracket_breakdown"`
}

// OwedTax returns the annual amount owed under the recommended regime
func (r *TaxResult) OwedTax() decimal.Decimal {
	if r.RecommendedRegime == RegimeFlat {
		return r.FlatTax
	}
	return r.ProgressiveTax
}

// TaxMetrics are the headline ratios shown next to a result
type TaxMetrics struct {
	OwedTax        decimal.Decimal `json:"owed_tax"`
	EffectiveRate  decimal.Decimal `json:"effective_rate"`   // owed / gross
	AfterTaxIncome decimal.Decimal `json:"after_tax_income"` // net - owed
	TaxBurdenRatio decimal.Decimal `json:"tax_burden_ratio"` // owed / net
}

// Installment is one monthly payment of the annual tax
type Installment struct {
	Month   time.Month      `json:"month"`
	DueDate time.Time       `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
}

// UpcomingInstallment is the next unpaid installment as seen from a given day
type UpcomingInstallment struct {
	Installment
	DaysUntil int `json:"days_until"`
}

// PaymentSchedule spreads the owed tax over the tax year
type PaymentSchedule struct {
	TaxYear        int             `json:"tax_year"`
	Regime         Regime          `json:"regime"`
	Installments   []Installment   `json:"installments"`
	Total          decimal.Decimal `json:"total"`
	ReturnDeadline time.Time       `json:"return_deadline"`
}

// Scenario is a what-if input expressed as annual amounts
type Scenario struct {
	Name        string          `yaml:"name" json:"name"`
	GrossIncome decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	Costs       decimal.Decimal `yaml:"costs" json:"costs"`
}

// SimulationOutcome compares a scenario against the baseline result
type SimulationOutcome struct {
	Scenario      Scenario        `json:"scenario"`
	Result        *TaxResult      `json:"result"`
	GrossDelta    decimal.Decimal `json:"gross_delta"`
	GrossDeltaPct decimal.Decimal `json:"gross_delta_pct"` // fraction of baseline gross
	TaxDelta      decimal.Decimal `json:"tax_delta"`
	TakeHomeDelta decimal.Decimal `json:"take_home_delta"`
}

// TaxReport bundles everything the renderers display
type TaxReport struct {
	Profile  TaxpayerProfile  `json:"profile"`
	TaxYear  int              `json:"tax_year"`
	Income   []IncomeEntry    `json:"income"`
	Costs    []CostEntry      `json:"costs"`
	Result   *TaxResult       `json:"result"`
	Metrics  TaxMetrics       `json:"metrics"`
	Schedule *PaymentSchedule `json:"schedule,omitempty"`
	// NextInstallment is nil once every due date of the tax year has passed
	NextInstallment *UpcomingInstallment `json:"next_installment,omitempty"`
	Simulations     []SimulationOutcome  `json:"simulations,omitempty"`
	Rules           TaxRules             `json:"rules"`
}
