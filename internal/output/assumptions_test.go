package output

import (
	"testing"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAssumptions(t *testing.T) {
	rate := decimal.RequireFromString("0.08")
	h := &domain.Household{
		Market: domain.MarketSnapshot{
			FallbackGrowthRate: decimal.RequireFromString("0.06"),
			Symbols: map[string]domain.SymbolQuote{
				"VGS.AU": {Price: decimal.NewFromInt(120)},
				"VAS.AU": {Price: decimal.NewFromInt(100), GrowthRate: &rate},
			},
		},
		Deposit: domain.DepositPlan{
			EmergencyFund: domain.EmergencyFund{Floor: decimal.NewFromInt(5000), Target: decimal.NewFromInt(10000)},
			Strategy: domain.InvestmentStrategy{
				Allocations:       []domain.Allocation{{Symbol: "VAS.AU", Weight: decimal.NewFromInt(1)}},
				MinimumInvestment: decimal.NewFromInt(500),
				BrokerFee:         decimal.NewFromInt(2),
			},
			FHSS: &domain.FHSSPlan{DeemedRate: decimal.RequireFromString("0.0717")},
		},
	}

	got := GenerateAssumptions(h)
	assert.Equal(t, DefaultAssumptions, got[:len(DefaultAssumptions)])
	assert.Contains(t, got, "Fallback growth rate: 6.00% p.a.")
	assert.Contains(t, got, "VAS.AU growth rate: 8.00% p.a.")
	assert.Contains(t, got, "Surplus above the emergency target ($10000.00) invested once it reaches $500.00; broker fee $2.00 per trade")
	assert.Contains(t, got, "FHSS deemed rate: 7.17% p.a.")
	for _, line := range got {
		assert.NotContains(t, line, "VGS.AU")
	}
}

func TestGenerateAssumptions_NilHousehold(t *testing.T) {
	assert.Equal(t, DefaultAssumptions, GenerateAssumptions(nil))
}
