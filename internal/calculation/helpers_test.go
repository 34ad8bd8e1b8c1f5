package calculation

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// recordingLogger captures formatted messages per level
type recordingLogger struct {
	mu                      sync.Mutex
	debug, info, warn, errs []string
}

func (l *recordingLogger) record(dst *[]string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.record(&l.debug, format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.record(&l.info, format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.record(&l.warn, format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.record(&l.errs, format, args...) }

// flatTax charges a single rate on all income
type flatTax struct{ rate decimal.Decimal }

func (f flatTax) AnnualIncomeTax(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Mul(f.rate)
}

// flatRepayment charges a single rate on all income regardless of year
type flatRepayment struct{ rate decimal.Decimal }

func (f flatRepayment) AnnualRepayment(income decimal.Decimal, _ string) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Mul(f.rate)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func assertDecimal(t *testing.T, expected, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !expected.Equal(actual) {
		assert.Fail(t, fmt.Sprintf("expected %s, got %s", expected.String(), actual.String()), msgAndArgs...)
	}
}

// testEngine uses flat collaborators so expectations are easy to derive by hand
func testEngine(taxRate, repaymentRate string) *ProjectionEngine {
	return NewProjectionEngineWith(flatTax{dec(taxRate)}, flatRepayment{dec(repaymentRate)}, NewDeemedFHSSCalculator())
}

// emptyHousehold has no income, no spending and no growth
func emptyHousehold(start, target time.Time) *domain.Household {
	return &domain.Household{
		Name:         "empty",
		JourneyStart: &start,
		Deposit: domain.DepositPlan{
			TargetDate:  target,
			DepositGoal: dec("100000"),
		},
		Market: domain.MarketSnapshot{FallbackGrowthRate: decimal.Zero},
	}
}

func monthOf(t *testing.T, plan JourneyPlan, y int, m time.Month) MonthPeriod {
	t.Helper()
	for _, p := range plan.Months {
		if p.Month.Year() == y && p.Month.Month() == m {
			return p
		}
	}
	t.Fatalf("month %d-%02d not in plan", y, m)
	return MonthPeriod{}
}
