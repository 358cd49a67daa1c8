package calculation

import (
	"time"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"github.com/kreatorpajak/freelance-tax/pkg/dateutil"
	money "github.com/kreatorpajak/freelance-tax/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Metrics derives the headline ratios of a result. Ratios are fractions
// (0.005 means 0.5%) and are zero when their denominator is zero.
func Metrics(result *domain.TaxResult) domain.TaxMetrics {
	owed := result.OwedTax()
	m := domain.TaxMetrics{
		OwedTax:        owed,
		EffectiveRate:  decimal.Zero,
		AfterTaxIncome: result.NetIncome.Sub(owed),
		TaxBurdenRatio: decimal.Zero,
	}
	if result.GrossIncome.IsPositive() {
		m.EffectiveRate = owed.Div(result.GrossIncome)
	}
	if result.NetIncome.IsPositive() {
		m.TaxBurdenRatio = owed.Div(result.NetIncome)
	}
	return m
}

// BuildPaymentSchedule spreads the owed tax over twelve monthly installments.
// Each installment is the monthly share truncated to whole rupiah and the
// last one absorbs the remainder, so the installments always add up to the
// annual amount. A zero taxYear means the current year.
func BuildPaymentSchedule(result *domain.TaxResult, taxYear int) *domain.PaymentSchedule {
	if taxYear == 0 {
		taxYear = currentTaxYear()
	}
	owed := money.NewMoneyFromDecimal(result.OwedTax())
	share := owed.Monthly().Floor().NonNegative()

	dueDates := dateutil.InstallmentDueDates(taxYear)
	installments := make([]domain.Installment, 0, len(dueDates))
	paid := money.Zero()
	for i, due := range dueDates {
		amount := share
		if i == len(dueDates)-1 {
			amount = owed.Sub(paid)
		}
		paid = paid.Add(amount)
		installments = append(installments, domain.Installment{
			Month:   time.Month(i + 1),
			DueDate: due,
			Amount:  amount.Decimal,
		})
	}

	return &domain.PaymentSchedule{
		TaxYear:        taxYear,
		Regime:         result.RecommendedRegime,
		Installments:   installments,
		Total:          owed.Decimal,
		ReturnDeadline: dateutil.AnnualReturnDeadline(taxYear),
	}
}

// NextInstallment returns the first installment of the schedule due on or
// after from, or nil when the schedule is exhausted.
func NextInstallment(schedule *domain.PaymentSchedule, from time.Time) *domain.UpcomingInstallment {
	due, ok := dateutil.NextDueDate(schedule.TaxYear, from)
	if !ok {
		return nil
	}
	for _, inst := range schedule.Installments {
		if inst.DueDate.Equal(due) {
			return &domain.UpcomingInstallment{Installment: inst, DaysUntil: dateutil.DaysUntil(from, due)}
		}
	}
	return nil
}
