package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
)

// ConsoleFormatter renders the detailed console report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "FREELANCE TAX ESTIMATE %d\n", report.TaxYear)
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)

	name := report.Profile.Name
	if name == "" {
		name = report.Profile.ID
	}
	fmt.Fprintf(&buf, "Taxpayer:   %s\n", name)
	fmt.Fprintf(&buf, "Status:     %s", report.Profile.MaritalStatus)
	if report.Profile.MaritalStatus == domain.StatusMarriedWithDependents {
		fmt.Fprintf(&buf, " (%d dependents)", report.Profile.DependentsCount)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report.Rules) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if len(report.Income) > 0 {
		fmt.Fprintln(&buf, "INCOME SOURCES:")
		for _, e := range report.Income {
			fmt.Fprintf(&buf, "  %-28s %-10s %18s\n", entryLabel(e.Name, string(e.Category)), e.Frequency, FormatCurrency(e.Amount))
		}
		fmt.Fprintln(&buf)
	}
	if len(report.Costs) > 0 {
		fmt.Fprintln(&buf, "OPERATIONAL COSTS:")
		for _, e := range report.Costs {
			fmt.Fprintf(&buf, "  %-28s %-10s %18s\n", entryLabel(e.Name, string(e.Category)), e.Frequency, FormatCurrency(e.Amount))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "ANNUAL SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "  Gross Income:           %s\n", FormatCurrency(r.GrossIncome))
	fmt.Fprintf(&buf, "  Operational Costs:      %s\n", FormatCurrency(r.TotalCosts))
	fmt.Fprintf(&buf, "  Net Income:             %s\n", FormatCurrency(r.NetIncome))
	fmt.Fprintf(&buf, "  PTKP:                   %s\n", FormatCurrency(r.ExemptThreshold))
	fmt.Fprintf(&buf, "  Taxable Income (PKP):   %s\n", FormatCurrency(r.TaxableIncome))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROGRESSIVE BRACKETS:")
	if len(r.BracketBreakdown) == 0 {
		fmt.Fprintln(&buf, "  No taxable income")
	}
	for _, b := range r.BracketBreakdown {
		fmt.Fprintf(&buf, "  %-40s %6s  %18s  %16s\n", FormatBracketRange(b.Min, b.Max), FormatPercentage(b.Rate), FormatCurrency(b.Income), FormatCurrency(b.Amount))
	}
	fmt.Fprintf(&buf, "  Progressive Tax:        %s\n", FormatCurrency(r.ProgressiveTax))
	if r.FlatTaxEligible {
		fmt.Fprintf(&buf, "  Final Tax (flat):       %s\n", FormatCurrency(r.FlatTax))
	} else {
		fmt.Fprintln(&buf, "  Final Tax (flat):       not available, turnover above ceiling")
	}
	fmt.Fprintln(&buf)

	cmp := CompareRegimes(r)
	fmt.Fprintln(&buf, "RECOMMENDATION:")
	fmt.Fprintf(&buf, "  Regime:                 %s\n", cmp.Recommended)
	fmt.Fprintf(&buf, "  Annual Tax:             %s\n", FormatCurrency(cmp.RecommendedAmount))
	if cmp.AlternativeOffered && cmp.Savings.IsPositive() {
		fmt.Fprintf(&buf, "  Saves vs %-14s %s\n", string(cmp.Alternative)+":", FormatCurrency(cmp.Savings))
	}
	fmt.Fprintf(&buf, "  Monthly Installment:    %s\n", FormatCurrency(r.MonthlyInstallment))
	fmt.Fprintf(&buf, "  Effective Rate:         %s\n", FormatPercentage(report.Metrics.EffectiveRate))
	fmt.Fprintf(&buf, "  After-Tax Income:       %s\n", FormatCurrency(report.Metrics.AfterTaxIncome))
	fmt.Fprintln(&buf)

	if s := report.Schedule; s != nil && len(s.Installments) > 0 {
		fmt.Fprintln(&buf, "PAYMENT SCHEDULE:")
		for _, inst := range s.Installments {
			fmt.Fprintf(&buf, "  %-10s due %s  %16s\n", inst.Month, inst.DueDate.Format("2006-01-02"), FormatCurrency(inst.Amount))
		}
		fmt.Fprintf(&buf, "  Total:                  %s\n", FormatCurrency(s.Total))
		fmt.Fprintf(&buf, "  Annual return due:      %s\n", s.ReturnDeadline.Format("2006-01-02"))
		if next := report.NextInstallment; next != nil {
			fmt.Fprintf(&buf, "  Next installment:       %s due %s (%s)\n", FormatCurrency(next.Amount), next.DueDate.Format("2006-01-02"), FormatDaysUntil(next.DaysUntil))
		}
		fmt.Fprintln(&buf)
	}

	if len(report.Simulations) > 0 {
		fmt.Fprintln(&buf, "WHAT-IF SCENARIOS:")
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		for i, o := range report.Simulations {
			fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, o.Scenario.Name)
			fmt.Fprintf(&buf, "  Gross Income:           %s (%s)\n", FormatCurrency(o.Result.GrossIncome), FormatPercentage(o.GrossDeltaPct))
			fmt.Fprintf(&buf, "  Regime:                 %s\n", o.Result.RecommendedRegime)
			fmt.Fprintf(&buf, "  Annual Tax:             %s (Δ %s)\n", FormatCurrency(o.Result.OwedTax()), FormatCurrency(o.TaxDelta))
			fmt.Fprintf(&buf, "  Take-Home Change:       %s\n", FormatCurrency(o.TakeHomeDelta))
		}
		if best, ok := BestSimulation(report.Simulations); ok {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Best take-home: %s (Δ %s)\n", best.Scenario.Name, FormatCurrency(best.TakeHomeDelta))
		}
	}

	return buf.Bytes(), nil
}

func entryLabel(name, category string) string {
	if name == "" {
		return category
	}
	return name
}

// ConsoleLiteFormatter provides a concise console summary.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result
	fmt.Fprintln(&buf, "FREELANCE TAX SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Gross=%s Net=%s PKP=%s\n", FormatCurrency(r.GrossIncome), FormatCurrency(r.NetIncome), FormatCurrency(r.TaxableIncome))
	flat := "n/a"
	if r.FlatTaxEligible {
		flat = FormatCurrency(r.FlatTax)
	}
	fmt.Fprintf(&buf, "Progressive=%s Flat=%s\n", FormatCurrency(r.ProgressiveTax), flat)
	fmt.Fprintf(&buf, "Recommended: %s (%s/year, %s/month)\n", r.RecommendedRegime, FormatCurrency(r.OwedTax()), FormatCurrency(r.MonthlyInstallment))
	for _, o := range report.Simulations {
		fmt.Fprintf(&buf, "%s: Tax=%s TakeHomeΔ=%s\n", o.Scenario.Name, FormatCurrency(o.Result.OwedTax()), FormatCurrency(o.TakeHomeDelta))
	}
	return buf.Bytes(), nil
}
