package dateutil

import (
	"time"
)

// InstallmentDueDay is the day of month by which a monthly installment must be paid.
const InstallmentDueDay = 15

// InstallmentDueDate returns the due date of the installment for a tax month.
// The installment for a month is due on the 15th of the following month, so
// December's installment falls in January of the next year.
func InstallmentDueDate(taxYear int, month time.Month) time.Time {
	// time.Date normalizes month 13 into January of taxYear+1
	return time.Date(taxYear, month+1, InstallmentDueDay, 0, 0, 0, 0, time.UTC)
}

// InstallmentDueDates returns the twelve installment due dates for a tax year in order.
func InstallmentDueDates(taxYear int) []time.Time {
	dates := make([]time.Time, 0, 12)
	for m := time.January; m <= time.December; m++ {
		dates = append(dates, InstallmentDueDate(taxYear, m))
	}
	return dates
}

// AnnualReturnDeadline returns the filing deadline of the individual annual
// return for a tax year: 31 March of the following year.
func AnnualReturnDeadline(taxYear int) time.Time {
	return time.Date(taxYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}

// NextDueDate returns the first installment due date on or after the given date,
// searching the tax year's schedule. ok is false when every date has passed.
func NextDueDate(taxYear int, from time.Time) (due time.Time, ok bool) {
	day := truncateToDay(from)
	for _, d := range InstallmentDueDates(taxYear) {
		if !d.Before(day) {
			return d, true
		}
	}
	return time.Time{}, false
}

// DaysUntil returns the number of whole days from one date to another.
// Negative when to is before from.
func DaysUntil(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
