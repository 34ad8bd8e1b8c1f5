package dateutil

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FortnightDays is the length of one fortnightly payment cycle.
const FortnightDays = 14

// DateOnly strips the clock component and normalises to UTC so that day
// arithmetic is never affected by daylight-saving transitions.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given calendar month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthStart returns the first day of the month containing date
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of the month containing date
func MonthEnd(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds a specified number of months to the first day of the month
// containing date. Working from the 1st avoids time.AddDate overflow
// (31 Jan + 1 month is 3 Mar, not 28 Feb).
func AddMonths(date time.Time, months int) time.Time {
	return MonthStart(date).AddDate(0, months, 0)
}

// DayInMonth returns the date for the given day of month, clamped to the
// month length. Day values below 1 are treated as 1.
func DayInMonth(month time.Time, day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := DaysInMonth(month.Year(), month.Month()); day > last {
		day = last
	}
	return time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween counts calendar months from the month of from to the month of
// to, inclusive of both. Returns 0 when to precedes from.
func MonthsBetween(from, to time.Time) int {
	n := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1
	if n < 0 {
		return 0
	}
	return n
}

// DaysBetween returns the number of whole days from a to b (negative if b is
// before a). Clock components are ignored.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// IsActiveOn reports whether date lies inside the optional [start, end] window.
// A nil bound is open. Boundary dates are inclusive.
func IsActiveOn(start, end *time.Time, date time.Time) bool {
	d := DateOnly(date)
	if start != nil && d.Before(DateOnly(*start)) {
		return false
	}
	if end != nil && d.After(DateOnly(*end)) {
		return false
	}
	return true
}

// FortnightCount is the result of CountFortnightPayments.
type FortnightCount struct {
	Count           int
	PartialFraction decimal.Decimal
}

// CountFortnightPayments counts the payment dates anchor+14k (k >= 0) that
// land inside [rangeStart, rangeEnd], and the fraction of a cycle elapsed
// after the last such payment up to rangeEnd. Nothing is paid before the
// anchor. When no payment lands in the range the fraction covers the part of
// the range on or after the anchor.
func CountFortnightPayments(anchor, rangeStart, rangeEnd time.Time) FortnightCount {
	if DateOnly(rangeEnd).Before(DateOnly(rangeStart)) {
		return FortnightCount{PartialFraction: decimal.Zero}
	}
	if DateOnly(anchor).After(DateOnly(rangeEnd)) {
		return FortnightCount{PartialFraction: decimal.Zero}
	}

	k := ceilDiv(DaysBetween(anchor, rangeStart), FortnightDays)
	if k < 0 {
		k = 0
	}
	first := DateOnly(anchor).AddDate(0, 0, k*FortnightDays)

	cycle := decimal.NewFromInt(FortnightDays)
	if first.After(DateOnly(rangeEnd)) {
		covered := decimal.NewFromInt(int64(DaysBetween(rangeStart, rangeEnd) + 1))
		return FortnightCount{PartialFraction: capFraction(covered.Div(cycle))}
	}

	count := DaysBetween(first, rangeEnd)/FortnightDays + 1
	last := first.AddDate(0, 0, (count-1)*FortnightDays)
	elapsed := decimal.NewFromInt(int64(DaysBetween(last, rangeEnd)))

	return FortnightCount{
		Count:           count,
		PartialFraction: capFraction(elapsed.Div(cycle)),
	}
}

// IncomeYearLabel maps a date to its Australian income year (1 July to
// 30 June), labelled "2025-26" style.
func IncomeYearLabel(date time.Time) string {
	start := date.Year()
	if date.Month() < time.July {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}

func capFraction(f decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if f.GreaterThan(one) {
		return one
	}
	if f.IsNegative() {
		return decimal.Zero
	}
	return f
}
