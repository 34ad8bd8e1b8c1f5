package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SymbolQuote is the market data known for one symbol. A nil GrowthRate means
// the snapshot's fallback rate applies.
type SymbolQuote struct {
	Price      decimal.Decimal  `yaml:"price" json:"price" toml:"price"`
	GrowthRate *decimal.Decimal `yaml:"growth_rate,omitempty" json:"growth_rate,omitempty" toml:"growth_rate,omitempty"`
}

// MarketSnapshot provides annual growth rates and current prices per symbol
type MarketSnapshot struct {
	AsOf               *time.Time             `yaml:"as_of,omitempty" json:"as_of,omitempty" toml:"as_of,omitempty"`
	FallbackGrowthRate decimal.Decimal        `yaml:"fallback_growth_rate" json:"fallback_growth_rate" toml:"fallback_growth_rate"`
	Symbols            map[string]SymbolQuote `yaml:"symbols,omitempty" json:"symbols,omitempty" toml:"symbols,omitempty"`
}

// GrowthRate returns the annual growth rate for symbol, defaulting to the fallback
func (m MarketSnapshot) GrowthRate(symbol string) decimal.Decimal {
	if q, ok := m.Symbols[symbol]; ok && q.GrowthRate != nil {
		return *q.GrowthRate
	}
	return m.FallbackGrowthRate
}

// Price returns the current price for symbol, zero when unknown
func (m MarketSnapshot) Price(symbol string) decimal.Decimal {
	if q, ok := m.Symbols[symbol]; ok {
		return q.Price
	}
	return decimal.Zero
}

// WithQuote returns a copy of the snapshot with symbol set to q
func (m MarketSnapshot) WithQuote(symbol string, q SymbolQuote) MarketSnapshot {
	symbols := make(map[string]SymbolQuote, len(m.Symbols)+1)
	for k, v := range m.Symbols {
		symbols[k] = v
	}
	symbols[symbol] = q
	m.Symbols = symbols
	return m
}
