package calculation

import (
	"context"
	"runtime"
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"golang.org/x/sync/errgroup"
)

// CompareTargetDates projects h once per target date, concurrently, and
// returns one row per target in input order. Every run shares the same
// journey start so rows are comparable.
func (e *ProjectionEngine) CompareTargetDates(ctx context.Context, h *domain.Household, market MarketData, targets []time.Time) ([]domain.ComparisonRow, error) {
	if h == nil {
		return nil, ErrNilHousehold
	}
	start := today()
	if h.JourneyStart != nil {
		start = *h.JourneyStart
	}

	rows := make([]domain.ComparisonRow, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scenario := *h
			scenario.JourneyStart = &start
			scenario.Deposit.TargetDate = target

			res, err := e.Project(&scenario, market)
			if err != nil {
				return err
			}
			rows[i] = domain.ComparisonRow{TargetDate: res.TargetDate, Summary: res.Summary}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
