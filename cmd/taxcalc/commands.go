package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/kreatorpajak/freelance-tax/internal/calculation"
	"github.com/kreatorpajak/freelance-tax/internal/config"
	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"github.com/kreatorpajak/freelance-tax/internal/output"
	money "github.com/kreatorpajak/freelance-tax/pkg/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalculateCmd(a *app) *cobra.Command {
	var saveNormalized string
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute the tax liability and recommended regime for an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, calculation.RunOptions{}, saveNormalized)
		},
	}
	cmd.Flags().StringVar(&saveNormalized, "save-normalized", "", "write the input back out with generated ids and tax year filled in")
	return cmd
}

func newSimulateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Compute the tax liability plus what-if income scenarios",
		Long: "Runs the configured scenarios against the baseline. When the input file " +
			"defines none, income is scaled by 25%, 50% and 100% with costs held.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, calculation.RunOptions{Simulate: true}, "")
		},
	}
}

func (a *app) runReport(cmd *cobra.Command, opts calculation.RunOptions, savePath string) error {
	cfg, err := a.loadConfiguration()
	if err != nil {
		return err
	}
	if savePath != "" {
		if err := config.SaveConfiguration(cfg, savePath); err != nil {
			return fmt.Errorf("failed to save normalized input: %w", err)
		}
		a.logger.Info("saved normalized configuration", zap.String("file", savePath))
	}
	engine, err := a.newEngine(cfg)
	if err != nil {
		return err
	}
	report, err := engine.RunConfiguration(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}
	return output.GenerateReport(cmd.OutOrStdout(), report, a.settings.Format)
}

func newBracketsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "brackets [taxable-income]",
		Short: "Show the progressive bracket table, optionally apportioning a taxable income",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *domain.Configuration
			if a.settings.ConfigFile != "" {
				loaded, err := a.loadConfiguration()
				if err != nil {
					return err
				}
				cfg = loaded
			}
			engine, err := a.newEngine(cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if len(args) == 0 {
				fmt.Fprintln(w, "BRACKET\tRATE")
				for _, b := range engine.Rules.Brackets {
					fmt.Fprintf(w, "%s\t%s\n", output.FormatBracketRange(b.Min, b.Max), output.FormatPercentage(b.Rate))
				}
				return w.Flush()
			}

			taxable, err := money.NewMoneyFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid taxable income %q: %w", args[0], err)
			}
			if taxable.IsNegative() {
				return fmt.Errorf("invalid taxable income %q: must not be negative", args[0])
			}
			total, breakdown := engine.ApportionProgressive(taxable.Decimal)
			fmt.Fprintln(w, "BRACKET\tRATE\tINCOME\tTAX")
			for _, b := range breakdown {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", output.FormatBracketRange(b.Min, b.Max), output.FormatPercentage(b.Rate), output.FormatCurrency(b.Income), output.FormatCurrency(b.Amount))
			}
			fmt.Fprintf(w, "TOTAL\t\t%s\t%s\n", output.FormatCurrency(taxable.Decimal), output.FormatCurrency(total))
			return w.Flush()
		},
	}
}

func newScheduleCmd(a *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the monthly installment schedule for the recommended regime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			engine, err := a.newEngine(cfg)
			if err != nil {
				return err
			}
			if year == 0 {
				year = cfg.TaxYear
			}
			result := engine.ComputeTax(cfg.Profile, cfg.Income, cfg.Costs)
			schedule := calculation.BuildPaymentSchedule(result, year)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Tax year %d, %s regime\n", schedule.TaxYear, schedule.Regime)
			fmt.Fprintln(w, "MONTH\tDUE\tAMOUNT")
			for _, inst := range schedule.Installments {
				fmt.Fprintf(w, "%s\t%s\t%s\n", inst.Month, inst.DueDate.Format("2006-01-02"), output.FormatCurrency(inst.Amount))
			}
			fmt.Fprintf(w, "TOTAL\t\t%s\n", output.FormatCurrency(schedule.Total))
			fmt.Fprintf(w, "Annual return due %s\n", schedule.ReturnDeadline.Format("2006-01-02"))
			if next := calculation.NextInstallment(schedule, time.Now()); next != nil {
				fmt.Fprintf(w, "Next installment %s due %s (%s)\n", output.FormatCurrency(next.Amount), next.DueDate.Format("2006-01-02"), output.FormatDaysUntil(next.DaysUntil))
			} else {
				fmt.Fprintln(w, "No installments left for this tax year")
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "tax year (defaults to the input file's tax_year)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taxcalc %s\n", version)
		},
	}
}
