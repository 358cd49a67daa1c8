package output

import (
	"bytes"
	"encoding/csv"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
)

// CSVBracketExporter writes the progressive bracket breakdown, one row per
// bracket reached, for the baseline and every simulated scenario.
type CSVBracketExporter struct{}

func (c CSVBracketExporter) Name() string { return "detailed-csv" }

func (c CSVBracketExporter) Format(report *domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Bracket", "Min", "Max", "Rate", "Income", "Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := writeBrackets(w, "Baseline", report.Result); err != nil {
		return nil, err
	}
	for _, o := range report.Simulations {
		if err := writeBrackets(w, o.Scenario.Name, o.Result); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeBrackets(w *csv.Writer, name string, r *domain.TaxResult) error {
	for i, b := range r.BracketBreakdown {
		max := ""
		if b.Max != nil {
			max = b.Max.StringFixed(2)
		}
		row := []string{
			name,
			intToString(i + 1),
			b.Min.StringFixed(2),
			max,
			b.Rate.String(),
			b.Income.StringFixed(2),
			b.Amount.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
