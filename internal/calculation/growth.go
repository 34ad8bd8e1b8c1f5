package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MarketData supplies per-symbol annual growth rates and current prices.
// domain.MarketSnapshot implements it.
type MarketData interface {
	GrowthRate(symbol string) decimal.Decimal
	Price(symbol string) decimal.Decimal
}

// MonthlyGrowth is value × annualRate/12 × factor
func MonthlyGrowth(value, annualRate, factor decimal.Decimal) decimal.Decimal {
	return value.Mul(annualRate).Div(twelve).Mul(factor)
}

// GrowPools applies one month of growth to every pool in place and returns
// the total growth added.
func GrowPools(pools map[string]decimal.Decimal, market MarketData, factor decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, symbol := range sortedSymbols(pools) {
		g := MonthlyGrowth(pools[symbol], market.GrowthRate(symbol), factor)
		pools[symbol] = pools[symbol].Add(g)
		total = total.Add(g)
	}
	return total
}

func sumPools(pools map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range pools {
		total = total.Add(v)
	}
	return total
}

// sortedSymbols keeps map iteration deterministic
func sortedSymbols(pools map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(pools))
	for k := range pools {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
