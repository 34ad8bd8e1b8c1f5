package market

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves canned quotes and history, counting calls
type fakeSource struct {
	mu      sync.Mutex
	prices  map[string]string
	history map[string][]Bar
	calls   int
}

func (f *fakeSource) Quote(ctx context.Context, symbol string) (*Quote, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := f.prices[symbol]
	if !ok {
		return nil, &APIError{StatusCode: 404, Message: "not found", Endpoint: "/real-time/" + symbol}
	}
	return &Quote{Symbol: symbol, Price: decimal.RequireFromString(p)}, nil
}

func (f *fakeSource) History(ctx context.Context, symbol string, from, to time.Time) ([]Bar, error) {
	bars, ok := f.history[symbol]
	if !ok {
		return nil, errors.New("no history")
	}
	return bars, nil
}

func bar(y int, m time.Month, d int, adj string) Bar {
	return Bar{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), AdjClose: decimal.RequireFromString(adj)}
}

func TestAnnualGrowthRate(t *testing.T) {
	tests := []struct {
		name  string
		bars  []Bar
		ok    bool
		delta float64
		want  float64
	}{
		{"two years of 10%", []Bar{bar(2020, time.January, 1, "100"), bar(2022, time.January, 1, "121")}, true, 0.0005, 0.10},
		{"decline", []Bar{bar(2021, time.January, 1, "100"), bar(2022, time.January, 1, "90")}, true, 0.0005, -0.10},
		{"too short", []Bar{bar(2022, time.January, 1, "100"), bar(2022, time.January, 20, "110")}, false, 0, 0},
		{"single bar", []Bar{bar(2022, time.January, 1, "100")}, false, 0, 0},
		{"zero price", []Bar{bar(2020, time.January, 1, "0"), bar(2022, time.January, 1, "121")}, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := AnnualGrowthRate(tt.bars)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, rate.InexactFloat64(), tt.delta)
			}
		})
	}

	closeOnly := []Bar{
		{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Close: decimal.NewFromInt(50)},
		{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), Close: decimal.NewFromInt(55)},
	}
	rate, ok := AnnualGrowthRate(closeOnly)
	require.True(t, ok)
	assert.InDelta(t, 0.10, rate.InexactFloat64(), 0.0005)
}

func TestBuildSnapshot(t *testing.T) {
	source := &fakeSource{
		prices: map[string]string{"VAS.AU": "101.5", "VGS.AU": "140"},
		history: map[string][]Bar{
			"VAS.AU": {bar(2020, time.January, 1, "100"), bar(2022, time.January, 1, "121")},
		},
	}
	builder := NewSnapshotBuilder(source, decimal.RequireFromString("0.07"))
	builder.Now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	builder.Cache = NewCache(time.Hour)

	snap, err := builder.BuildSnapshot(context.Background(), []string{"VAS.AU", "VGS.AU", "MISSING.AU"})
	require.NoError(t, err)

	require.NotNil(t, snap.AsOf)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *snap.AsOf)
	assert.True(t, snap.Price("VAS.AU").Equal(decimal.RequireFromString("101.5")))
	assert.InDelta(t, 0.10, snap.GrowthRate("VAS.AU").InexactFloat64(), 0.0005)

	assert.True(t, snap.Price("VGS.AU").Equal(decimal.NewFromInt(140)))
	assert.Nil(t, snap.Symbols["VGS.AU"].GrowthRate, "no history keeps the fallback")
	assert.True(t, snap.GrowthRate("VGS.AU").Equal(decimal.RequireFromString("0.07")))

	_, ok := snap.Symbols["MISSING.AU"]
	assert.False(t, ok)
	assert.True(t, snap.GrowthRate("MISSING.AU").Equal(decimal.RequireFromString("0.07")))

	calls := source.calls
	_, err = builder.BuildSnapshot(context.Background(), []string{"VAS.AU", "VGS.AU"})
	require.NoError(t, err)
	assert.Equal(t, calls, source.calls, "cached symbols are not refetched")
}

func TestBuildSnapshotCancelled(t *testing.T) {
	builder := NewSnapshotBuilder(&fakeSource{prices: map[string]string{"VAS.AU": "1"}}, decimal.Zero)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := builder.BuildSnapshot(ctx, []string{"VAS.AU"})
	assert.ErrorIs(t, err, context.Canceled)
}
