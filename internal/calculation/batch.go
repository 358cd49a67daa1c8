package calculation

import (
	"context"
	"runtime"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
	"golang.org/x/sync/errgroup"
)

// CalculationRequest is one independent ComputeTax input
type CalculationRequest struct {
	Profile domain.TaxpayerProfile
	Income  []domain.IncomeEntry
	Costs   []domain.CostEntry
}

// ComputeBatch evaluates requests in parallel, at most GOMAXPROCS at a time,
// and returns results in request order. Every call is independent, so the
// only failure is ctx cancellation.
func (te *TaxEngine) ComputeBatch(ctx context.Context, requests []CalculationRequest) ([]*domain.TaxResult, error) {
	results := make([]*domain.TaxResult, len(requests))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range requests {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req := requests[i]
			results[i] = te.ComputeTax(req.Profile, req.Income, req.Costs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
