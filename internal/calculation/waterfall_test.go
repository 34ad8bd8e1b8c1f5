package calculation

import (
	"testing"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFund(t *testing.T) {
	fund := domain.EmergencyFund{Floor: dec("2000"), Target: dec("4000")}

	tests := []struct {
		pool     string
		expected domain.FundStatus
	}{
		{"-50", domain.FundCritical},
		{"0", domain.FundCritical},
		{"1999.99", domain.FundCritical},
		{"2000", domain.FundRebuilding},
		{"3999.99", domain.FundRebuilding},
		{"4000", domain.FundHealthy},
		{"9000", domain.FundHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.pool, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyFund(dec(tt.pool), fund))
		})
	}

	assert.Equal(t, domain.FundCritical, ClassifyFund(dec("-1"), domain.EmergencyFund{}), "negative pools are critical even with zero thresholds")
}

func TestApplyWaterfall(t *testing.T) {
	fund := domain.EmergencyFund{Floor: dec("2000"), Target: dec("4000")}

	t.Run("invests excess less fee", func(t *testing.T) {
		strategy := domain.InvestmentStrategy{
			Allocations:       []domain.Allocation{{Symbol: "VAS", Weight: dec("1")}},
			MinimumInvestment: dec("500"),
			BrokerFee:         dec("2"),
		}
		res := ApplyWaterfall(dec("4500"), fund, strategy)
		assert.Equal(t, domain.FundHealthy, res.Status)
		assertDecimal(t, dec("498"), res.Invested["VAS"])
		assertDecimal(t, dec("2"), res.Fees)
		assertDecimal(t, dec("4000"), res.Pool)
		assert.False(t, res.Deferred)
	})

	t.Run("splits by weight", func(t *testing.T) {
		strategy := domain.InvestmentStrategy{
			Allocations:       []domain.Allocation{{Symbol: "VAS", Weight: dec("0.6")}, {Symbol: "VGS", Weight: dec("0.4")}},
			MinimumInvestment: dec("500"),
			BrokerFee:         dec("3"),
		}
		res := ApplyWaterfall(dec("5000"), fund, strategy)
		assertDecimal(t, dec("597"), res.Invested["VAS"])
		assertDecimal(t, dec("397"), res.Invested["VGS"])
		assertDecimal(t, dec("994"), res.TotalInvested())
		assertDecimal(t, dec("6"), res.Fees)
		assertDecimal(t, dec("4000"), res.Pool)
	})

	t.Run("share below fee is skipped and pool returns to target", func(t *testing.T) {
		strategy := domain.InvestmentStrategy{
			Allocations:       []domain.Allocation{{Symbol: "VAS", Weight: dec("0.99")}, {Symbol: "TINY", Weight: dec("0.01")}},
			MinimumInvestment: dec("100"),
			BrokerFee:         dec("10"),
		}
		res := ApplyWaterfall(dec("5000"), fund, strategy)
		assertDecimal(t, dec("980"), res.Invested["VAS"])
		_, ok := res.Invested["TINY"]
		assert.False(t, ok)
		assertDecimal(t, dec("10"), res.Fees)
		assertDecimal(t, dec("4000"), res.Pool)
	})

	t.Run("weights below one still reset pool to target", func(t *testing.T) {
		strategy := domain.InvestmentStrategy{
			Allocations:       []domain.Allocation{{Symbol: "VAS", Weight: dec("0.6")}, {Symbol: "VGS", Weight: dec("0.3995")}},
			MinimumInvestment: dec("100"),
		}
		res := ApplyWaterfall(dec("6000"), fund, strategy)
		assertDecimal(t, dec("1200"), res.Invested["VAS"])
		assertDecimal(t, dec("799"), res.Invested["VGS"])
		assertDecimal(t, dec("4000"), res.Pool)
	})

	t.Run("below minimum is deferred", func(t *testing.T) {
		strategy := domain.InvestmentStrategy{
			Allocations:       []domain.Allocation{{Symbol: "VAS", Weight: dec("1")}},
			MinimumInvestment: dec("500"),
		}
		res := ApplyWaterfall(dec("4300"), fund, strategy)
		assert.True(t, res.Deferred)
		assertDecimal(t, dec("300"), res.Pending)
		assertDecimal(t, dec("4300"), res.Pool)
		assert.Empty(t, res.Invested)
	})

	t.Run("rebuilding invests nothing", func(t *testing.T) {
		strategy := domain.InvestmentStrategy{Allocations: []domain.Allocation{{Symbol: "VAS", Weight: dec("1")}}}
		res := ApplyWaterfall(dec("3000"), fund, strategy)
		assert.Equal(t, domain.FundRebuilding, res.Status)
		assertDecimal(t, dec("3000"), res.Pool)
		assert.False(t, res.Deferred)
	})

	t.Run("no allocations keeps cash", func(t *testing.T) {
		res := ApplyWaterfall(dec("9000"), fund, domain.InvestmentStrategy{MinimumInvestment: dec("1")})
		assertDecimal(t, dec("9000"), res.Pool)
		assert.Empty(t, res.Invested)
	})
}

func TestSplitCash(t *testing.T) {
	fund := domain.EmergencyFund{Floor: dec("1000"), Target: dec("4000")}

	tests := []struct {
		pool, reserve, available string
	}{
		{"6500", "4000", "2500"},
		{"2500", "2500", "0"},
		{"-300", "0", "-300"},
	}
	for _, tt := range tests {
		t.Run(tt.pool, func(t *testing.T) {
			reserve, available := SplitCash(dec(tt.pool), fund)
			assertDecimal(t, dec(tt.reserve), reserve)
			assertDecimal(t, dec(tt.available), available)
		})
	}
}

func TestGrowPools(t *testing.T) {
	market := domain.MarketSnapshot{FallbackGrowthRate: dec("0.06")}
	market = market.WithQuote("VAS", domain.SymbolQuote{GrowthRate: decPtr("0.12")})

	amounts := map[string]decimal.Decimal{"VAS": dec("1000"), "OTHER": dec("2000")}
	total := GrowPools(amounts, market, dec("0.5"))

	assertDecimal(t, dec("1005"), amounts["VAS"])   // 1000 × 0.01 × 0.5
	assertDecimal(t, dec("2005"), amounts["OTHER"]) // 2000 × 0.005 × 0.5
	assertDecimal(t, dec("10"), total)
	require.Len(t, amounts, 2)
}
