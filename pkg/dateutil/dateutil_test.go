package dateutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestIsActiveOn tests activity window checks with inclusive boundaries
func TestIsActiveOn(t *testing.T) {
	start := date(2025, 3, 10)
	end := date(2025, 9, 30)

	tests := []struct {
		name     string
		start    *time.Time
		end      *time.Time
		date     time.Time
		expected bool
	}{
		{"Open window", nil, nil, date(1999, 1, 1), true},
		{"Before start", &start, &end, date(2025, 3, 9), false},
		{"On start", &start, &end, date(2025, 3, 10), true},
		{"Inside", &start, &end, date(2025, 6, 1), true},
		{"On end", &start, &end, date(2025, 9, 30), true},
		{"After end", &start, &end, date(2025, 10, 1), false},
		{"Start only, later date", &start, nil, date(2040, 1, 1), true},
		{"End only, earlier date", nil, &end, date(2000, 1, 1), true},
		{"Clock component ignored on end day", &start, &end, time.Date(2025, 9, 30, 23, 59, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsActiveOn(tt.start, tt.end, tt.date))
		})
	}
}

// TestCountFortnightPayments tests fortnight cycle counting within a range
func TestCountFortnightPayments(t *testing.T) {
	tests := []struct {
		name            string
		anchor          time.Time
		rangeStart      time.Time
		rangeEnd        time.Time
		expectedCount   int
		expectedPartial decimal.Decimal
	}{
		{
			name:            "Three payments in a 31 day month",
			anchor:          date(2025, 1, 3),
			rangeStart:      date(2025, 1, 1),
			rangeEnd:        date(2025, 1, 31),
			expectedCount:   3,
			expectedPartial: decimal.Zero,
		},
		{
			name:            "Two payments with partial cycle after",
			anchor:          date(2025, 1, 3),
			rangeStart:      date(2025, 2, 1),
			rangeEnd:        date(2025, 2, 28),
			expectedCount:   2, // 14 Feb, 28 Feb
			expectedPartial: decimal.Zero,
		},
		{
			name:            "Anchor long before range",
			anchor:          date(2024, 1, 5),
			rangeStart:      date(2025, 3, 1),
			rangeEnd:        date(2025, 3, 31),
			expectedCount:   2, // 14 Mar, 28 Mar
			expectedPartial: decimal.NewFromInt(3).Div(decimal.NewFromInt(14)),
		},
		{
			name:            "Anchor after range start pays nothing before the anchor",
			anchor:          date(2025, 3, 20),
			rangeStart:      date(2025, 3, 1),
			rangeEnd:        date(2025, 3, 31),
			expectedCount:   1, // 20 Mar only
			expectedPartial: decimal.NewFromInt(11).Div(decimal.NewFromInt(14)),
		},
		{
			name:            "Anchor mid month",
			anchor:          date(2025, 10, 20),
			rangeStart:      date(2025, 10, 1),
			rangeEnd:        date(2025, 10, 31),
			expectedCount:   1,
			expectedPartial: decimal.NewFromInt(11).Div(decimal.NewFromInt(14)),
		},
		{
			name:            "Anchor after the whole range",
			anchor:          date(2025, 11, 10),
			rangeStart:      date(2025, 10, 1),
			rangeEnd:        date(2025, 10, 31),
			expectedCount:   0,
			expectedPartial: decimal.Zero,
		},
		{
			name:            "Short range without a payment",
			anchor:          date(2025, 1, 3),
			rangeStart:      date(2025, 1, 4),
			rangeEnd:        date(2025, 1, 10),
			expectedCount:   0,
			expectedPartial: decimal.NewFromFloat(0.5),
		},
		{
			name:            "Payment on both boundaries",
			anchor:          date(2025, 1, 3),
			rangeStart:      date(2025, 1, 3),
			rangeEnd:        date(2025, 1, 17),
			expectedCount:   2,
			expectedPartial: decimal.Zero,
		},
		{
			name:            "Inverted range",
			anchor:          date(2025, 1, 3),
			rangeStart:      date(2025, 2, 1),
			rangeEnd:        date(2025, 1, 1),
			expectedCount:   0,
			expectedPartial: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountFortnightPayments(tt.anchor, tt.rangeStart, tt.rangeEnd)
			assert.Equal(t, tt.expectedCount, got.Count)
			assert.True(t, tt.expectedPartial.Equal(got.PartialFraction),
				"partial: expected %s, got %s", tt.expectedPartial, got.PartialFraction)
			assert.True(t, got.PartialFraction.GreaterThanOrEqual(decimal.Zero))
			assert.True(t, got.PartialFraction.LessThanOrEqual(decimal.NewFromInt(1)))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.September))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestMonthBoundaries(t *testing.T) {
	d := time.Date(2024, 2, 17, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2024, 2, 1), MonthStart(d))
	assert.Equal(t, date(2024, 2, 29), MonthEnd(d))
	assert.Equal(t, date(2024, 3, 1), AddMonths(date(2024, 1, 31), 2))
	assert.Equal(t, date(2025, 2, 1), AddMonths(date(2024, 12, 31), 2))
}

func TestDayInMonth(t *testing.T) {
	feb := date(2025, 2, 1)
	assert.Equal(t, date(2025, 2, 15), DayInMonth(feb, 15))
	assert.Equal(t, date(2025, 2, 28), DayInMonth(feb, 31))
	assert.Equal(t, date(2025, 2, 1), DayInMonth(feb, 0))
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 1, MonthsBetween(date(2025, 3, 10), date(2025, 3, 20)))
	assert.Equal(t, 12, MonthsBetween(date(2025, 1, 1), date(2025, 12, 31)))
	assert.Equal(t, 14, MonthsBetween(date(2025, 11, 5), date(2026, 12, 1)))
	assert.Equal(t, 0, MonthsBetween(date(2026, 1, 1), date(2025, 1, 1)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2025, 1, 1), date(2025, 1, 1)))
	assert.Equal(t, 366, DaysBetween(date(2024, 1, 1), date(2025, 1, 1)))
	assert.Equal(t, -14, DaysBetween(date(2025, 1, 15), date(2025, 1, 1)))
	syd, err := time.LoadLocation("Australia/Sydney")
	if err == nil {
		// Daylight saving ends on 6 April 2025 in Sydney
		assert.Equal(t, 1, DaysBetween(time.Date(2025, 4, 5, 12, 0, 0, 0, syd), time.Date(2025, 4, 6, 12, 0, 0, 0, syd)))
	}
}

// TestIncomeYearLabel tests the 1 July income-year boundary
func TestIncomeYearLabel(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected string
	}{
		{date(2025, 6, 30), "2024-25"},
		{date(2025, 7, 1), "2025-26"},
		{date(2026, 1, 15), "2025-26"},
		{date(1999, 8, 1), "1999-00"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, IncomeYearLabel(tt.date))
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2025))
}
