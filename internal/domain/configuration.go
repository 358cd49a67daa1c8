package domain

// Configuration is the complete input document for one calculation
type Configuration struct {
	TaxYear   int             `yaml:"tax_year" json:"tax_year"`
	Profile   TaxpayerProfile `yaml:"profile" json:"profile"`
	Income    []IncomeEntry   `yaml:"income" json:"income"`
	Costs     []CostEntry     `yaml:"costs" json:"costs"`
	Rules     *TaxRules       `yaml:"rules,omitempty" json:"rules,omitempty"`
	Scenarios []Scenario      `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}

// EffectiveRules returns the configured rules with defaults applied
func (c *Configuration) EffectiveRules() TaxRules {
	if c.Rules == nil {
		return DefaultTaxRules()
	}
	return c.Rules.WithDefaults()
}
