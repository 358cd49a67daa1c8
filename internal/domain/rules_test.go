package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxRules_Valid(t *testing.T) {
	rules := DefaultTaxRules()
	require.NoError(t, rules.Validate())

	assert.True(t, rules.Exemption.Single.Equal(decimal.NewFromInt(54000000)))
	assert.True(t, rules.Exemption.Married.Equal(decimal.NewFromInt(58500000)))
	assert.True(t, rules.Exemption.PerDependent.Equal(decimal.NewFromInt(4500000)))
	assert.Len(t, rules.Brackets, 5)
	assert.Nil(t, rules.Brackets[4].Max)
	assert.True(t, rules.FlatTax.Rate.Equal(decimal.RequireFromString("0.005")))
	assert.True(t, rules.FlatTax.TurnoverCeiling.Equal(decimal.NewFromInt(4800000000)))
}

func TestTaxRules_ValidateBrackets(t *testing.T) {
	d := func(v int64) *decimal.Decimal { x := decimal.NewFromInt(v); return &x }
	rate := decimal.NewFromFloat

	testCases := []struct {
		desc     string
		brackets []BracketRule
	}{
		{
			desc: "empty table",
		},
		{
			desc:     "first bracket above zero",
			brackets: []BracketRule{{Min: decimal.NewFromInt(1), Rate: rate(0.1)}},
		},
		{
			desc: "gap between brackets",
			brackets: []BracketRule{
				{Min: decimal.Zero, Max: d(100), Rate: rate(0.1)},
				{Min: decimal.NewFromInt(101), Rate: rate(0.2)},
			},
		},
		{
			desc: "overlapping brackets",
			brackets: []BracketRule{
				{Min: decimal.Zero, Max: d(100), Rate: rate(0.1)},
				{Min: decimal.NewFromInt(90), Rate: rate(0.2)},
			},
		},
		{
			desc: "bounded top bracket",
			brackets: []BracketRule{
				{Min: decimal.Zero, Max: d(100), Rate: rate(0.1)},
			},
		},
		{
			desc: "unbounded bracket in the middle",
			brackets: []BracketRule{
				{Min: decimal.Zero, Rate: rate(0.1)},
				{Min: decimal.NewFromInt(100), Rate: rate(0.2)},
			},
		},
		{
			desc: "decreasing rate",
			brackets: []BracketRule{
				{Min: decimal.Zero, Max: d(100), Rate: rate(0.2)},
				{Min: decimal.NewFromInt(100), Rate: rate(0.1)},
			},
		},
		{
			desc:     "zero rate",
			brackets: []BracketRule{{Min: decimal.Zero, Rate: decimal.Zero}},
		},
		{
			desc:     "rate above one",
			brackets: []BracketRule{{Min: decimal.Zero, Rate: rate(1.5)}},
		},
		{
			desc: "empty bracket",
			brackets: []BracketRule{
				{Min: decimal.Zero, Max: d(0), Rate: rate(0.1)},
				{Min: decimal.Zero, Rate: rate(0.2)},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			rules := DefaultTaxRules()
			rules.Brackets = tc.brackets
			err := rules.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBrackets), "expected ErrInvalidBrackets, got %v", err)
		})
	}
}

func TestTaxRules_ValidateAmounts(t *testing.T) {
	testCases := []struct {
		desc   string
		mutate func(r *TaxRules)
	}{
		{"negative single exemption", func(r *TaxRules) { r.Exemption.Single = decimal.NewFromInt(-1) }},
		{"married equal to single", func(r *TaxRules) { r.Exemption.Married = r.Exemption.Single }},
		{"married below single", func(r *TaxRules) { r.Exemption.Single = decimal.NewFromInt(60000000) }},
		{"flat rate above one", func(r *TaxRules) { r.FlatTax.Rate = decimal.NewFromInt(2) }},
		{"zero flat rate", func(r *TaxRules) { r.FlatTax.Rate = decimal.Zero }},
		{"negative ceiling", func(r *TaxRules) { r.FlatTax.TurnoverCeiling = decimal.NewFromInt(-1) }},
		{"zero ceiling", func(r *TaxRules) { r.FlatTax.TurnoverCeiling = decimal.Zero }},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			rules := DefaultTaxRules()
			tc.mutate(&rules)
			err := rules.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRules), "expected ErrInvalidRules, got %v", err)
		})
	}
}

func TestTaxRules_WithDefaults(t *testing.T) {
	def := DefaultTaxRules()

	filled := TaxRules{}.WithDefaults()
	assert.Equal(t, def, filled)

	custom := TaxRules{FlatTax: FlatTaxRules{Rate: decimal.NewFromFloat(0.01), TurnoverCeiling: decimal.NewFromInt(500)}}
	filled = custom.WithDefaults()
	assert.Equal(t, def.Exemption, filled.Exemption)
	assert.Equal(t, def.Brackets, filled.Brackets)
	assert.True(t, filled.FlatTax.Rate.Equal(decimal.NewFromFloat(0.01)))
	assert.True(t, filled.FlatTax.TurnoverCeiling.Equal(decimal.NewFromInt(500)))
}

func TestTaxRules_WithDefaultsPerField(t *testing.T) {
	def := DefaultTaxRules()
	partial := TaxRules{
		Exemption: ExemptionRules{Single: decimal.NewFromInt(50000000)},
		FlatTax:   FlatTaxRules{Rate: decimal.NewFromFloat(0.01)},
	}

	filled := partial.WithDefaults()
	assert.True(t, filled.Exemption.Single.Equal(decimal.NewFromInt(50000000)))
	assert.True(t, filled.Exemption.Married.Equal(def.Exemption.Married))
	assert.True(t, filled.Exemption.PerDependent.Equal(def.Exemption.PerDependent))
	assert.True(t, filled.FlatTax.Rate.Equal(decimal.NewFromFloat(0.01)))
	assert.True(t, filled.FlatTax.TurnoverCeiling.Equal(def.FlatTax.TurnoverCeiling))
	require.NoError(t, filled.Validate())

	tooHigh := TaxRules{Exemption: ExemptionRules{Single: decimal.NewFromInt(60000000)}}.WithDefaults()
	assert.ErrorIs(t, tooHigh.Validate(), ErrInvalidRules)
}

func TestConfiguration_EffectiveRules(t *testing.T) {
	cfg := &Configuration{}
	assert.Equal(t, DefaultTaxRules(), cfg.EffectiveRules())

	cfg.Rules = &TaxRules{Exemption: ExemptionRules{Single: decimal.NewFromInt(1)}}
	assert.True(t, cfg.EffectiveRules().Exemption.Single.Equal(decimal.NewFromInt(1)))
	assert.Len(t, cfg.EffectiveRules().Brackets, 5)
}

func TestMaritalStatusAndFrequency_Valid(t *testing.T) {
	for _, s := range MaritalStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, MaritalStatus("divorced").Valid())
	assert.False(t, MaritalStatus("").Valid())

	assert.True(t, FrequencyMonthly.Valid())
	assert.True(t, FrequencyAnnual.Valid())
	assert.False(t, Frequency("weekly").Valid())
}

func TestTaxResult_OwedTax(t *testing.T) {
	r := &TaxResult{ProgressiveTax: decimal.NewFromInt(3900000), FlatTax: decimal.NewFromInt(600000)}

	r.RecommendedRegime = RegimeProgressive
	assert.True(t, r.OwedTax().Equal(decimal.NewFromInt(3900000)))

	r.RecommendedRegime = RegimeFlat
	assert.True(t, r.OwedTax().Equal(decimal.NewFromInt(600000)))
}
