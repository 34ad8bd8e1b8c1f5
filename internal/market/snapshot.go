package market

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/homepath/deposit-forecast/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultLookbackYears is the history window used to derive growth rates
const DefaultLookbackYears = 5

// QuoteSource is what a snapshot is built from; *Client implements it
type QuoteSource interface {
	Quote(ctx context.Context, symbol string) (*Quote, error)
	History(ctx context.Context, symbol string, from, to time.Time) ([]Bar, error)
}

// SnapshotBuilder derives a MarketSnapshot from live quotes and history
type SnapshotBuilder struct {
	Source        QuoteSource
	Cache         *Cache
	FallbackRate  decimal.Decimal
	LookbackYears int
	Concurrency   int
	Logger        logrus.FieldLogger
	Now           func() time.Time
}

// NewSnapshotBuilder creates a builder with default lookback and concurrency
func NewSnapshotBuilder(source QuoteSource, fallbackRate decimal.Decimal) *SnapshotBuilder {
	return &SnapshotBuilder{
		Source:        source,
		FallbackRate:  fallbackRate,
		LookbackYears: DefaultLookbackYears,
		Concurrency:   4,
		Logger:        silentLogger(),
		Now:           time.Now,
	}
}

// BuildSnapshot fetches every symbol concurrently. A symbol whose quote or
// history cannot be fetched keeps the fallback growth rate; only context
// cancellation fails the build.
func (b *SnapshotBuilder) BuildSnapshot(ctx context.Context, symbols []string) (domain.MarketSnapshot, error) {
	now := b.Now()
	asOf := dateutil.DateOnly(now)
	snap := domain.MarketSnapshot{
		AsOf:               &asOf,
		FallbackGrowthRate: b.FallbackRate,
		Symbols:            map[string]domain.SymbolQuote{},
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	if b.Concurrency > 0 {
		g.SetLimit(b.Concurrency)
	}

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			q, err := b.symbolQuote(ctx, symbol, now)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				b.Logger.WithError(err).WithField("symbol", symbol).Warn("using fallback growth rate")
				return nil
			}
			mu.Lock()
			snap.Symbols[symbol] = q
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.MarketSnapshot{}, err
	}
	return snap, nil
}

func (b *SnapshotBuilder) symbolQuote(ctx context.Context, symbol string, now time.Time) (domain.SymbolQuote, error) {
	if b.Cache != nil {
		if q, ok := b.Cache.Get(symbol); ok {
			return q, nil
		}
	}

	quote, err := b.Source.Quote(ctx, symbol)
	if err != nil {
		return domain.SymbolQuote{}, err
	}
	q := domain.SymbolQuote{Price: quote.Price}

	years := b.LookbackYears
	if years <= 0 {
		years = DefaultLookbackYears
	}
	bars, err := b.Source.History(ctx, symbol, now.AddDate(-years, 0, 0), now)
	if err != nil {
		b.Logger.WithError(err).WithField("symbol", symbol).Warn("history unavailable")
	} else if rate, ok := AnnualGrowthRate(bars); ok {
		q.GrowthRate = &rate
	}

	if b.Cache != nil {
		b.Cache.Put(symbol, q)
	}
	return q, nil
}

// AnnualGrowthRate is the compound annual growth between the first and last
// bar's adjusted close (close when no adjusted close is given). It needs at
// least 30 days of history and positive prices.
func AnnualGrowthRate(bars []Bar) (decimal.Decimal, bool) {
	if len(bars) < 2 {
		return decimal.Zero, false
	}
	first, last := bars[0], bars[len(bars)-1]
	days := dateutil.DaysBetween(first.Date, last.Date)
	if days < 30 {
		return decimal.Zero, false
	}

	start, end := price(first), price(last)
	if !start.IsPositive() || !end.IsPositive() {
		return decimal.Zero, false
	}

	years := float64(days) / 365.25
	ratio := end.Div(start).InexactFloat64()
	cagr := math.Pow(ratio, 1/years) - 1
	return decimal.NewFromFloat(cagr).Round(6), true
}

func price(b Bar) decimal.Decimal {
	if b.AdjClose.IsPositive() {
		return b.AdjClose
	}
	return b.Close
}
