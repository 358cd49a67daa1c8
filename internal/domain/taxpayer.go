package domain

import (
	"github.com/shopspring/decimal"
)

// MaritalStatus is the family status that determines the exempt threshold (PTKP)
type MaritalStatus string

const (
	StatusSingle                MaritalStatus = "single"
	StatusMarried               MaritalStatus = "married"
	StatusMarriedWithDependents MaritalStatus = "married_with_dependents"
)

// MaritalStatuses lists the recognized statuses in display order
var MaritalStatuses = []MaritalStatus{StatusSingle, StatusMarried, StatusMarriedWithDependents}

// Valid reports whether s is one of the recognized statuses
func (s MaritalStatus) Valid() bool {
	switch s {
	case StatusSingle, StatusMarried, StatusMarriedWithDependents:
		return true
	}
	return false
}

// TaxpayerProfile identifies the taxpayer and the family situation used for PTKP.
// The engine only reads it.
type TaxpayerProfile struct {
	ID              string        `yaml:"id,omitempty" json:"id"`
	Name            string        `yaml:"name,omitempty" json:"name,omitempty"`
	MaritalStatus   MaritalStatus `yaml:"marital_status" json:"marital_status"`
	DependentsCount int           `yaml:"dependents_count,omitempty" json:"dependents_count"` // only used for married_with_dependents
}

// Frequency is how often a periodic amount recurs
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
)

// Valid reports whether f is monthly or annual
func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyAnnual
}

// IncomeCategory labels an income stream. It is carried for display only and
// never changes the calculation.
type IncomeCategory string

const (
	IncomeAdsense   IncomeCategory = "adsense"
	IncomeTikTok    IncomeCategory = "tiktok"
	IncomeInstagram IncomeCategory = "instagram"
	IncomeSponsor   IncomeCategory = "sponsor"
	IncomeFreelance IncomeCategory = "freelance"
	IncomeOther     IncomeCategory = "other"
)

// CostCategory labels an operational cost; display only
type CostCategory string

const (
	CostInternet       CostCategory = "internet"
	CostSoftware       CostCategory = "software"
	CostEquipment      CostCategory = "equipment"
	CostTransportation CostCategory = "transportation"
	CostOther          CostCategory = "other"
)

// IncomeEntry is a named income stream
type IncomeEntry struct {
	ID        string          `yaml:"id,omitempty" json:"id"`
	Category  IncomeCategory  `yaml:"category,omitempty" json:"category,omitempty"`
	Name      string          `yaml:"name,omitempty" json:"name,omitempty"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency Frequency       `yaml:"frequency" json:"frequency"`
}

// CostEntry is a named deductible operational cost
type CostEntry struct {
	ID        string          `yaml:"id,omitempty" json:"id"`
	Category  CostCategory    `yaml:"category,omitempty" json:"category,omitempty"`
	Name      string          `yaml:"name,omitempty" json:"name,omitempty"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency Frequency       `yaml:"frequency" json:"frequency"`
}

// PeriodicEntry is implemented by every entry the annualizer accepts.
type PeriodicEntry interface {
	Periodic() (decimal.Decimal, Frequency)
}

func (e IncomeEntry) Periodic() (decimal.Decimal, Frequency) { return e.Amount, e.Frequency }
func (e CostEntry) Periodic() (decimal.Decimal, Frequency)   { return e.Amount, e.Frequency }
