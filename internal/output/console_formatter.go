package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a human readable summary followed by the month table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	s := result.Summary

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "HOUSE DEPOSIT FORECAST: %s\n", result.Household)
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "Journey:        %s to %s (%d months)\n", FormatDate(result.JourneyStart), FormatDate(result.TargetDate), s.Months)
	fmt.Fprintf(&buf, "Deposit goal:   %s\n", FormatCurrency(s.DepositGoal))
	fmt.Fprintf(&buf, "Final deposit:  %s\n", FormatCurrency(s.FinalDeposit))
	switch {
	case s.GoalReachedDate != nil:
		fmt.Fprintf(&buf, "Goal reached:   %s\n", FormatMonth(*s.GoalReachedDate))
	case s.GoalReached:
		fmt.Fprintln(&buf, "Goal reached:   yes")
	default:
		fmt.Fprintf(&buf, "Shortfall:      %s\n", FormatCurrency(s.Shortfall))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TOTALS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Net income:       %s\n", FormatCurrency(s.TotalNetIncome))
	fmt.Fprintf(&buf, "Expenses:         %s\n", FormatCurrency(s.TotalExpenses))
	fmt.Fprintf(&buf, "Invested:         %s\n", FormatCurrency(s.TotalInvested))
	fmt.Fprintf(&buf, "Broker fees:      %s\n", FormatCurrency(s.TotalBrokerFees))
	fmt.Fprintf(&buf, "Growth:           %s\n", FormatCurrency(s.TotalGrowth))
	fmt.Fprintf(&buf, "Loan repayments:  %s\n", FormatCurrency(s.TotalRepayments))
	fmt.Fprintf(&buf, "Loan indexation:  %s\n", FormatCurrency(s.TotalIndexation))
	fmt.Fprintf(&buf, "FHSS releasable:  %s\n", FormatCurrency(s.FinalFHSS))
	fmt.Fprintf(&buf, "Lowest cash pool: %s\n", FormatCurrency(s.LowestCashPool))
	fmt.Fprintln(&buf)

	if len(s.FinalLoanBalances) > 0 {
		fmt.Fprintln(&buf, "FINAL LOAN BALANCES")
		for _, id := range sortedKeys(s.FinalLoanBalances) {
			fmt.Fprintf(&buf, "  %-20s %s\n", id, FormatCurrency(s.FinalLoanBalances[id]))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "Fund status months: critical=%d rebuilding=%d healthy=%d\n",
		s.StatusMonths[domain.FundCritical], s.StatusMonths[domain.FundRebuilding], s.StatusMonths[domain.FundHealthy])
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := result.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeMonthTable(&buf, result.Months)
	return buf.Bytes(), nil
}

func writeMonthTable(buf *bytes.Buffer, months []domain.MonthlyResult) {
	fmt.Fprintln(buf, "MONTHLY DETAIL")
	fmt.Fprintf(buf, "%-9s %12s %12s %12s %12s %-10s %12s %12s %12s %13s\n",
		"Month", "Net Income", "Expenses", "Surplus", "Cash Pool", "Status", "Invested", "Investments", "Loans", "Deposit")
	fmt.Fprintln(buf, strings.Repeat("-", 124))
	for _, m := range months {
		fmt.Fprintf(buf, "%-9s %12s %12s %12s %12s %-10s %12s %12s %12s %13s\n",
			FormatMonth(m.Date),
			m.NetIncome.StringFixed(2),
			m.TotalExpenses.StringFixed(2),
			m.Surplus.StringFixed(2),
			m.CashPool.StringFixed(2),
			m.FundStatus,
			sumAmounts(m.Invested).StringFixed(2),
			m.TotalInvestments.StringFixed(2),
			m.TotalLoanBalance.StringFixed(2),
			m.TotalDeposit.StringFixed(2),
		)
	}
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sumAmounts(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, k := range sortedKeys(m) {
		total = total.Add(m[k])
	}
	return total
}
