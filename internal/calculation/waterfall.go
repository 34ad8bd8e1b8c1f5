package calculation

import (
	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/homepath/deposit-forecast/pkg/money"
	"github.com/shopspring/decimal"
)

// ClassifyFund places the cash pool against the emergency thresholds.
// Negative pools are always critical.
func ClassifyFund(pool decimal.Decimal, fund domain.EmergencyFund) domain.FundStatus {
	switch {
	case pool.IsNegative() || pool.LessThan(fund.Floor):
		return domain.FundCritical
	case pool.LessThan(fund.Target):
		return domain.FundRebuilding
	default:
		return domain.FundHealthy
	}
}

// WaterfallResult is the outcome of one month's cash/investment waterfall
type WaterfallResult struct {
	Status   domain.FundStatus
	Pool     decimal.Decimal
	Invested map[string]decimal.Decimal
	Fees     decimal.Decimal
	Deferred bool
	Pending  decimal.Decimal
}

// TotalInvested sums the net amounts invested across symbols
func (w WaterfallResult) TotalInvested() decimal.Decimal {
	total := decimal.Zero
	for _, v := range w.Invested {
		total = total.Add(v)
	}
	return total
}

// ApplyWaterfall invests cash above the emergency target when the fund is
// healthy and the excess reaches the minimum investment. Each allocation gets
// excess×weight less the broker fee and the pool drops back to the target;
// shares that would not cover the fee are not invested. Excess below the
// minimum is left in the pool and reported pending.
func ApplyWaterfall(pool decimal.Decimal, fund domain.EmergencyFund, strategy domain.InvestmentStrategy) WaterfallResult {
	res := WaterfallResult{
		Status:   ClassifyFund(pool, fund),
		Pool:     pool,
		Invested: map[string]decimal.Decimal{},
	}
	if res.Status != domain.FundHealthy || len(strategy.Allocations) == 0 {
		return res
	}

	investable := pool.Sub(fund.Target)
	if !investable.IsPositive() {
		return res
	}
	if investable.LessThan(strategy.MinimumInvestment) {
		res.Deferred = true
		res.Pending = investable
		return res
	}

	for _, a := range strategy.Allocations {
		share := investable.Mul(a.Weight)
		net := share.Sub(strategy.BrokerFee)
		if !net.IsPositive() {
			continue
		}
		res.Invested[a.Symbol] = res.Invested[a.Symbol].Add(net)
		res.Fees = res.Fees.Add(money.NonNegative(strategy.BrokerFee))
	}
	res.Pool = fund.Target
	return res
}

// SplitCash divides the pool into the emergency reserve and available cash
func SplitCash(pool decimal.Decimal, fund domain.EmergencyFund) (reserve, available decimal.Decimal) {
	reserve = money.Min(money.NonNegative(pool), money.NonNegative(fund.Target))
	return reserve, pool.Sub(reserve)
}
