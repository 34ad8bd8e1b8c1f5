package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestActivityWindowIsActiveOn(t *testing.T) {
	start, end := day(2025, 10, 1), day(2026, 3, 31)
	w := ActivityWindow{StartDate: &start, EndDate: &end}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"before start", day(2025, 9, 30), false},
		{"on start", start, true},
		{"inside", day(2026, 1, 15), true},
		{"on end", end, true},
		{"after end", day(2026, 4, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.IsActiveOn(tt.date))
		})
	}
	assert.True(t, ActivityWindow{}.IsActiveOn(day(1999, 1, 1)), "open window is always active")
}

func TestIsMonthlyCadence(t *testing.T) {
	anchor := day(2025, 9, 4)
	tests := []struct {
		name string
		src  IncomeSource
		want bool
	}{
		{"salary", IncomeSource{Kind: IncomeFixedSalary, FixedSalary: &FixedSalary{}}, true},
		{"stepped", IncomeSource{Kind: IncomeSteppedTarget, SteppedTarget: &SteppedTarget{}}, true},
		{"benefit without anchor", IncomeSource{Kind: IncomeFlatBenefit, FlatBenefit: &FlatBenefit{}}, true},
		{"anchored benefit", IncomeSource{Kind: IncomeFlatBenefit, FlatBenefit: &FlatBenefit{AnchorDate: &anchor}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.src.IsMonthlyCadence())
		})
	}
}

func TestHouseholdLookups(t *testing.T) {
	h := &Household{
		People: []Person{{ID: "alex", Name: "Alex"}, {ID: "sam", Name: "Sam"}},
		IncomeSources: []IncomeSource{
			{ID: "a1", PersonID: "alex"},
			{ID: "s1", PersonID: "sam"},
			{ID: "a2", PersonID: "alex"},
		},
		Deposit: DepositPlan{
			Holdings: []StockHolding{{Symbol: "VGS.AU"}, {Symbol: "NDQ.AU"}},
			Strategy: InvestmentStrategy{Allocations: []Allocation{{Symbol: "VAS.AU"}, {Symbol: "VGS.AU"}}},
		},
	}

	p := h.PersonByID("sam")
	require.NotNil(t, p)
	assert.Equal(t, "Sam", p.Name)
	p.Name = "Samantha"
	assert.Equal(t, "Samantha", h.People[1].Name, "PersonByID returns a pointer into the household")
	assert.Nil(t, h.PersonByID("nobody"))

	srcs := h.SourcesFor("alex")
	require.Len(t, srcs, 2)
	assert.Equal(t, "a1", srcs[0].ID)
	assert.Equal(t, "a2", srcs[1].ID)
	assert.Empty(t, h.SourcesFor("nobody"))

	assert.Equal(t, []string{"VGS.AU", "NDQ.AU", "VAS.AU"}, h.Symbols())
}

func TestMarketSnapshot(t *testing.T) {
	rate := decimal.RequireFromString("0.09")
	m := MarketSnapshot{
		FallbackGrowthRate: decimal.RequireFromString("0.07"),
		Symbols: map[string]SymbolQuote{
			"VAS.AU": {Price: decimal.NewFromInt(100), GrowthRate: &rate},
			"VGS.AU": {Price: decimal.NewFromInt(140)},
		},
	}

	assert.True(t, rate.Equal(m.GrowthRate("VAS.AU")))
	assert.True(t, m.FallbackGrowthRate.Equal(m.GrowthRate("VGS.AU")), "nil rate uses the fallback")
	assert.True(t, m.FallbackGrowthRate.Equal(m.GrowthRate("UNKNOWN")))
	assert.True(t, decimal.NewFromInt(140).Equal(m.Price("VGS.AU")))
	assert.True(t, m.Price("UNKNOWN").IsZero())

	updated := m.WithQuote("NDQ.AU", SymbolQuote{Price: decimal.NewFromInt(45)})
	assert.True(t, decimal.NewFromInt(45).Equal(updated.Price("NDQ.AU")))
	assert.True(t, m.Price("NDQ.AU").IsZero(), "WithQuote must not modify the original")
	assert.Len(t, updated.Symbols, 3)
}

func TestProjectionHelpers(t *testing.T) {
	e := ExpenseBreakdown{
		Essential: decimal.NewFromInt(100),
		Recurring: decimal.NewFromInt(20),
		Goals:     decimal.NewFromInt(5),
		OneOff:    decimal.NewFromInt(300),
	}
	assert.True(t, decimal.NewFromInt(425).Equal(e.Total()))

	m := MonthlyResult{Loans: []LoanMonth{
		{PersonID: "alex", Closing: decimal.NewFromInt(1200)},
		{PersonID: "sam", Closing: decimal.NewFromInt(800)},
	}}
	assert.True(t, decimal.NewFromInt(800).Equal(m.LoanBalance("sam")))
	assert.True(t, m.LoanBalance("nobody").IsZero())
}
