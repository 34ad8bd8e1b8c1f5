package calculation

import (
	"github.com/homepath/deposit-forecast/pkg/money"
	"github.com/shopspring/decimal"
)

// SteppedValue returns the stepped-target (TMN) value for monthIndex. The
// journey is cut into ceil(totalMonths/interval) levels: level 0 is current,
// the last level is target, and each interval climbs one level. The result
// never passes target.
func SteppedValue(current, target decimal.Decimal, interval, totalMonths, monthIndex int) decimal.Decimal {
	if interval <= 0 || totalMonths <= 0 {
		return current
	}
	steps := (totalMonths + interval - 1) / interval
	if steps <= 1 {
		return target
	}

	level := monthIndex / interval
	if level < 0 {
		level = 0
	}
	if level >= steps-1 {
		return target
	}

	increment := money.SafeDiv(target.Sub(current), decimal.NewFromInt(int64(steps-1)))
	return current.Add(increment.Mul(decimal.NewFromInt(int64(level))))
}
