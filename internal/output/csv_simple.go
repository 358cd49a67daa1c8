package output

import (
	"bytes"
	"encoding/csv"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output: one row for the
// baseline followed by one row per simulated scenario.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

var summaryHeader = []string{"Scenario", "GrossIncome", "TotalCosts", "NetIncome", "ExemptThreshold", "TaxableIncome", "ProgressiveTax", "FlatTax", "FlatTaxEligible", "RecommendedRegime", "MonthlyInstallment"}

func (c CSVSummarizer) Format(report *domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(summaryHeader); err != nil {
		return nil, err
	}
	if err := w.Write(summaryRow("Baseline", report.Result)); err != nil {
		return nil, err
	}
	for _, o := range report.Simulations {
		if err := w.Write(summaryRow(o.Scenario.Name, o.Result)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func summaryRow(name string, r *domain.TaxResult) []string {
	return []string{
		name,
		r.GrossIncome.StringFixed(2),
		r.TotalCosts.StringFixed(2),
		r.NetIncome.StringFixed(2),
		r.ExemptThreshold.StringFixed(2),
		r.TaxableIncome.StringFixed(2),
		r.ProgressiveTax.StringFixed(2),
		r.FlatTax.StringFixed(2),
		boolToString(r.FlatTaxEligible),
		string(r.RecommendedRegime),
		r.MonthlyInstallment.StringFixed(2),
	}
}
