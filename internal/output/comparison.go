package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/homepath/deposit-forecast/internal/domain"
)

// FormatComparison renders target-date comparison rows as console text, CSV or JSON.
func FormatComparison(rows []domain.ComparisonRow, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "console":
		return comparisonConsole(rows), nil
	case "csv":
		return comparisonCSV(rows)
	case "json":
		return json.MarshalIndent(rows, "", "  ")
	default:
		return nil, fmt.Errorf("%w for comparison: %q. Try one of: console, csv, json", ErrUnsupportedFormat, format)
	}
}

func comparisonConsole(rows []domain.ComparisonRow) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TARGET DATE COMPARISON")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "%-12s %7s %14s %14s %14s %12s %-8s\n", "Target", "Months", "Final Deposit", "Shortfall", "Invested", "Loans", "Reached")
	fmt.Fprintln(&buf, strings.Repeat("-", 88))
	for _, r := range rows {
		s := r.Summary
		reached := "no"
		if s.GoalReached {
			reached = "yes"
		}
		fmt.Fprintf(&buf, "%-12s %7d %14s %14s %14s %12s %-8s\n",
			FormatDate(r.TargetDate), s.Months,
			s.FinalDeposit.StringFixed(2), s.Shortfall.StringFixed(2),
			s.TotalInvested.StringFixed(2), s.FinalLoanBalance.StringFixed(2), reached)
	}
	if rec := RecommendTarget(rows); !rec.TargetDate.IsZero() {
		fmt.Fprintln(&buf)
		if rec.Reached {
			fmt.Fprintf(&buf, "Recommended: %s (goal exceeded by %s)\n", FormatDate(rec.TargetDate), FormatCurrency(rec.Margin))
		} else {
			fmt.Fprintf(&buf, "Closest: %s (short by %s)\n", FormatDate(rec.TargetDate), FormatCurrency(rec.Margin.Neg()))
		}
	}
	return buf.Bytes()
}

func comparisonCSV(rows []domain.ComparisonRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"TargetDate", "Months", "DepositGoal", "FinalDeposit", "Shortfall", "GoalReached", "TotalInvested", "TotalGrowth", "FinalLoanBalance", "FinalFHSS"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		s := r.Summary
		row := []string{
			FormatDate(r.TargetDate),
			fmt.Sprint(s.Months),
			s.DepositGoal.StringFixed(2),
			s.FinalDeposit.StringFixed(2),
			s.Shortfall.StringFixed(2),
			fmt.Sprint(s.GoalReached),
			s.TotalInvested.StringFixed(2),
			s.TotalGrowth.StringFixed(2),
			s.FinalLoanBalance.StringFixed(2),
			s.FinalFHSS.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
