package calculation

import (
	"time"

	"github.com/homepath/deposit-forecast/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// MonthPeriod is one simulated calendar month and the part of it the journey covers
type MonthPeriod struct {
	Index       int
	Month       time.Time // first day of the calendar month
	Start       time.Time // first covered day
	End         time.Time // last covered day
	DaysInMonth int
	Factor      decimal.Decimal
	IsFirst     bool
	IsLast      bool
}

// JourneyPlan is the fixed, pre-computed list of months a projection iterates
type JourneyPlan struct {
	Start  time.Time
	Target time.Time
	Months []MonthPeriod
}

// Len returns the number of simulated months
func (p JourneyPlan) Len() int { return len(p.Months) }

// BuildJourneyPlan lays out every month from start to target inclusive.
// A target on the 1st of a month excludes that month entirely.
func BuildJourneyPlan(start, target time.Time) JourneyPlan {
	start = dateutil.DateOnly(start)
	target = dateutil.DateOnly(target)
	plan := JourneyPlan{Start: start, Target: target}

	end := target
	if end.Day() == 1 {
		end = end.AddDate(0, 0, -1)
	}
	if end.Before(start) {
		return plan
	}

	n := dateutil.MonthsBetween(start, end)
	plan.Months = make([]MonthPeriod, 0, n)
	for i := 0; i < n; i++ {
		month := dateutil.AddMonths(start, i)
		days := dateutil.DaysInMonth(month.Year(), month.Month())

		covStart := month
		if i == 0 {
			covStart = start
		}
		covEnd := dateutil.MonthEnd(month)
		if i == n-1 {
			covEnd = end
		}

		covered := covEnd.Day() - covStart.Day() + 1
		plan.Months = append(plan.Months, MonthPeriod{
			Index:       i,
			Month:       month,
			Start:       covStart,
			End:         covEnd,
			DaysInMonth: days,
			Factor:      ProrationFactor(covered, days),
			IsFirst:     i == 0,
			IsLast:      i == n-1,
		})
	}
	return plan
}

// ProrationFactor is covered/daysInMonth clamped to [0, 1]
func ProrationFactor(covered, daysInMonth int) decimal.Decimal {
	if daysInMonth <= 0 || covered <= 0 {
		return decimal.Zero
	}
	if covered >= daysInMonth {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(int64(covered)).Div(decimal.NewFromInt(int64(daysInMonth)))
}

// PaysInPeriod applies the payment-day delivery rule: a monthly-cadence source
// pays when its (clamped) payment day lies inside the covered days. Interior
// months always pay; the first month pays only if the journey starts on or
// before the payment day; the last only if it ends on or after it.
func PaysInPeriod(p MonthPeriod, paymentDay int) bool {
	day := PaymentDate(p, paymentDay).Day()
	return p.Start.Day() <= day && day <= p.End.Day()
}

// PaymentDate is the payment day within p's calendar month
func PaymentDate(p MonthPeriod, paymentDay int) time.Time {
	return dateutil.DayInMonth(p.Month, paymentDay)
}

// IncomeYear is the income-year label governing p
func (p MonthPeriod) IncomeYear() string {
	return dateutil.IncomeYearLabel(p.Month)
}
