package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// currentTaxYear is the tax year used when a caller does not name one.
func currentTaxYear() int { return nowFunc().Year() }
