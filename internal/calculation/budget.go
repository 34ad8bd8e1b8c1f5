package calculation

import (
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthlyEquivalent converts a budget amount at freq to a monthly amount.
// Unknown frequencies are treated as monthly.
func MonthlyEquivalent(amount decimal.Decimal, freq domain.Frequency) decimal.Decimal {
	switch freq {
	case domain.Weekly:
		return amount.Mul(decimal.NewFromInt(52)).Div(twelve)
	case domain.Fortnightly:
		return amount.Mul(fortnightsPerYear).Div(twelve)
	case domain.Quarterly:
		return amount.Div(decimal.NewFromInt(3))
	case domain.Biannual:
		return amount.Div(decimal.NewFromInt(6))
	case domain.Yearly:
		return amount.Div(twelve)
	default:
		return amount
	}
}

// AggregateExpenses sums the budget for p. Recurring items are prorated;
// goals stop once completed or past their deadline; one-offs apply in full in
// their calendar month. It returns the expense breakdown and one-off deposits.
func AggregateExpenses(plan *domain.DepositPlan, p MonthPeriod) (domain.ExpenseBreakdown, decimal.Decimal) {
	var e domain.ExpenseBreakdown

	for _, item := range plan.Budget {
		if !item.IsActiveOn(p.Start) {
			continue
		}
		amount := MonthlyEquivalent(item.Amount, item.Frequency).Mul(p.Factor)
		switch item.Category {
		case domain.CategoryGoal:
			if !GoalAccruing(item, p) {
				continue
			}
			e.Goals = e.Goals.Add(amount)
		case domain.CategoryRecurring:
			e.Recurring = e.Recurring.Add(amount)
		default:
			e.Essential = e.Essential.Add(amount)
		}
	}

	for _, x := range plan.OneOffExpenses {
		if sameMonth(x.Date, p.Month) {
			e.OneOff = e.OneOff.Add(x.Amount)
		}
	}

	deposits := decimal.Zero
	for _, d := range plan.OneOffDeposits {
		if sameMonth(d.Date, p.Month) {
			deposits = deposits.Add(d.Amount)
		}
	}
	return e, deposits
}

// GoalAccruing reports whether a goal item still takes a monthly allocation in p
func GoalAccruing(item domain.BudgetItem, p MonthPeriod) bool {
	if item.Completed {
		return false
	}
	if item.Deadline != nil && item.Deadline.Before(p.Start) {
		return false
	}
	return true
}

func sameMonth(date, month time.Time) bool {
	return date.Year() == month.Year() && date.Month() == month.Month()
}
