package calculation

import (
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/homepath/deposit-forecast/pkg/dateutil"
	"github.com/homepath/deposit-forecast/pkg/money"
	"github.com/shopspring/decimal"
)

// LoanEvolver advances study-loan balances one month at a time
type LoanEvolver struct {
	LoanCalc LoanRepaymentCalculator
}

// NewLoanEvolver creates an evolver using loanCalc for repayment amounts
func NewLoanEvolver(loanCalc LoanRepaymentCalculator) *LoanEvolver {
	return &LoanEvolver{LoanCalc: loanCalc}
}

// Advance moves balance through period p in fixed order: scheduled additions
// after the as-of date, then the compulsory repayment on annualIncome, then
// June indexation. Additions and repayment are scaled by the proration
// factor; indexation is not. The balance never goes below zero.
func (e *LoanEvolver) Advance(personID string, debt *domain.LoanDebt, balance decimal.Decimal, annualIncome decimal.Decimal, p MonthPeriod) domain.LoanMonth {
	lm := domain.LoanMonth{
		PersonID: personID,
		Opening:  balance,
		Closing:  balance,
	}
	if debt == nil || debt.BalanceAsOfDate == nil {
		return lm
	}
	asOf := dateutil.DateOnly(*debt.BalanceAsOfDate)
	if p.End.Before(asOf) {
		return lm
	}

	lm.Additions = AdditionsInMonth(debt.Additions, asOf, p.Month).Mul(p.Factor)
	balance = balance.Add(lm.Additions)

	if balance.IsPositive() && e.LoanCalc != nil {
		annual := e.LoanCalc.AnnualRepayment(annualIncome, p.IncomeYear())
		monthly := money.NonNegative(annual.Div(twelve).Mul(p.Factor))
		lm.Repayment = money.Min(monthly, balance)
		balance = balance.Sub(lm.Repayment)
	}

	if p.Month.Month() == time.June && balance.IsPositive() {
		lm.Indexation = balance.Mul(debt.IndexationRate)
		balance = money.NonNegative(balance.Add(lm.Indexation))
	}

	lm.Closing = money.NonNegative(balance)
	return lm
}

// AdditionsInMonth sums additions dated in month's calendar month and strictly
// after asOf. Additions on or before asOf are already in the known balance.
func AdditionsInMonth(additions []domain.LoanAddition, asOf, month time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, a := range additions {
		d := dateutil.DateOnly(a.Date)
		if d.Year() != month.Year() || d.Month() != month.Month() {
			continue
		}
		if !d.After(asOf) {
			continue
		}
		total = total.Add(a.Amount)
	}
	return total
}
