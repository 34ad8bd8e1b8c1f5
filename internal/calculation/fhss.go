package calculation

import (
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/homepath/deposit-forecast/pkg/dateutil"
	"github.com/homepath/deposit-forecast/pkg/money"
	"github.com/shopspring/decimal"
)

// FHSSCalculator values First Home Super Saver contributions at a date
type FHSSCalculator interface {
	Releasable(contributions []domain.FHSSContribution, asOf time.Time, deemedRate decimal.Decimal) domain.FHSSValue
}

// DeemedFHSSCalculator releases 85% of concessional and all non-concessional
// contributions, with deemed earnings compounding daily at deemedRate/365.
type DeemedFHSSCalculator struct {
	ConcessionalShare decimal.Decimal
}

// NewDeemedFHSSCalculator creates a calculator with the 85% concessional share
func NewDeemedFHSSCalculator() *DeemedFHSSCalculator {
	return &DeemedFHSSCalculator{ConcessionalShare: decimal.NewFromFloat(0.85)}
}

// Releasable values contributions dated on or before asOf
func (c *DeemedFHSSCalculator) Releasable(contributions []domain.FHSSContribution, asOf time.Time, deemedRate decimal.Decimal) domain.FHSSValue {
	var v domain.FHSSValue
	daily := decimal.NewFromInt(1).Add(money.SafeDiv(deemedRate, decimal.NewFromInt(365)))

	for _, contrib := range contributions {
		days := dateutil.DaysBetween(contrib.Date, asOf)
		if days < 0 {
			continue
		}
		eligible := contrib.Amount
		if contrib.Concessional {
			eligible = eligible.Mul(c.ConcessionalShare)
		}
		v.Principal = v.Principal.Add(eligible)
		v.Earnings = v.Earnings.Add(eligible.Mul(money.PowInt(daily, days).Sub(decimal.NewFromInt(1))))
	}
	v.Total = v.Principal.Add(v.Earnings)
	return v
}
