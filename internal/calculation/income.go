package calculation

import (
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/homepath/deposit-forecast/pkg/dateutil"
	"github.com/homepath/deposit-forecast/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	twelve            = decimal.NewFromInt(12)
	fortnightsPerYear = decimal.NewFromInt(26)
)

// IncomeNormalizer turns one income source into one month's net cash
type IncomeNormalizer struct {
	TaxCalc  TaxCalculator
	LoanCalc LoanRepaymentCalculator
}

// NewIncomeNormalizer creates a normalizer over the given collaborators
func NewIncomeNormalizer(taxCalc TaxCalculator, loanCalc LoanRepaymentCalculator) *IncomeNormalizer {
	return &IncomeNormalizer{TaxCalc: taxCalc, LoanCalc: loanCalc}
}

// Evaluate computes src's contribution for period p. withholdLoan is set when
// the owner still carries a positive loan balance at the start of the month.
// Stepped-target values are surfaced even when nothing is received.
func (n *IncomeNormalizer) Evaluate(src domain.IncomeSource, p MonthPeriod, totalMonths int, withholdLoan bool) domain.IncomeLine {
	line := domain.IncomeLine{
		SourceID:   src.ID,
		SourceName: src.Name,
		PersonID:   src.PersonID,
		Kind:       src.Kind,
	}

	switch src.Kind {
	case domain.IncomeSteppedTarget:
		if src.SteppedTarget == nil {
			return line
		}
		st := src.SteppedTarget
		line.SteppedValue = SteppedValue(st.CurrentValue, st.TargetValue, st.StepIntervalMonths, totalMonths, p.Index)
		if !n.paysMonthly(src, p) {
			return line
		}
		taxable := money.NonNegative(line.SteppedValue.Sub(st.Allowances))
		line.Received = true
		line.Gross = line.SteppedValue
		line.Tax = n.monthlyTax(taxable)
		line.LoanWithholding = n.monthlyWithholding(taxable, p, withholdLoan)
		line.Net = line.Gross.Sub(line.Tax).Sub(line.LoanWithholding).Sub(st.Deductions)

	case domain.IncomeFixedSalary:
		if src.FixedSalary == nil || !n.paysMonthly(src, p) {
			return line
		}
		annual := src.FixedSalary.AnnualGross
		tax := n.TaxCalc.AnnualIncomeTax(annual)
		withholding := decimal.Zero
		if withholdLoan {
			withholding = n.LoanCalc.AnnualRepayment(annual, p.IncomeYear())
		}
		line.Received = true
		line.Gross = annual.Div(twelve)
		line.Tax = tax.Div(twelve)
		line.LoanWithholding = withholding.Div(twelve)
		line.Net = annual.Sub(tax).Sub(withholding).Div(twelve)

	case domain.IncomeFlatBenefit:
		if src.FlatBenefit == nil {
			return line
		}
		n.evaluateBenefit(&line, src, p, withholdLoan)
	}
	return line
}

func (n *IncomeNormalizer) evaluateBenefit(line *domain.IncomeLine, src domain.IncomeSource, p MonthPeriod, withholdLoan bool) {
	fb := src.FlatBenefit
	annual := fb.FortnightlyAmount.Mul(fortnightsPerYear)

	// share of the annual amount paid this month, as payments/periodsPerYear
	payments, perYear := decimal.NewFromInt(1), twelve
	if fb.AnchorDate != nil {
		start, end, ok := clipToWindow(src.ActivityWindow, p)
		if !ok {
			return
		}
		fc := dateutil.CountFortnightPayments(*fb.AnchorDate, start, end)
		line.Fortnights = fc.Count
		line.PartialFortnight = fc.PartialFraction
		if fc.Count == 0 {
			return
		}
		payments, perYear = decimal.NewFromInt(int64(fc.Count)), fortnightsPerYear
		line.Gross = fb.FortnightlyAmount.Mul(payments)
	} else {
		if !n.paysMonthly(src, p) {
			return
		}
		line.Gross = annual.Div(twelve)
	}

	line.Received = true
	if fb.Taxable {
		line.Tax = n.TaxCalc.AnnualIncomeTax(annual).Mul(payments).Div(perYear)
		if withholdLoan {
			line.LoanWithholding = n.LoanCalc.AnnualRepayment(annual, p.IncomeYear()).Mul(payments).Div(perYear)
		}
	}
	line.Net = line.Gross.Sub(line.Tax).Sub(line.LoanWithholding)
}

// AnnualAssessable is src's full-year taxable equivalent when it is active in
// p, used for loan repayment assessment.
func (n *IncomeNormalizer) AnnualAssessable(src domain.IncomeSource, p MonthPeriod, totalMonths int) decimal.Decimal {
	if !IsSourceActive(src, p) {
		return decimal.Zero
	}
	switch src.Kind {
	case domain.IncomeSteppedTarget:
		if st := src.SteppedTarget; st != nil {
			value := SteppedValue(st.CurrentValue, st.TargetValue, st.StepIntervalMonths, totalMonths, p.Index)
			return money.NonNegative(value.Sub(st.Allowances)).Mul(twelve)
		}
	case domain.IncomeFixedSalary:
		if src.FixedSalary != nil {
			return money.NonNegative(src.FixedSalary.AnnualGross)
		}
	case domain.IncomeFlatBenefit:
		if fb := src.FlatBenefit; fb != nil && fb.Taxable {
			return money.NonNegative(fb.FortnightlyAmount.Mul(fortnightsPerYear))
		}
	}
	return decimal.Zero
}

// IsSourceActive reports whether src's activity window admits it in p.
// Monthly-cadence sources are checked on their payment date; anchored
// benefits on any covered day.
func IsSourceActive(src domain.IncomeSource, p MonthPeriod) bool {
	if !src.IsMonthlyCadence() {
		_, _, ok := clipToWindow(src.ActivityWindow, p)
		return ok
	}
	return src.IsActiveOn(PaymentDate(p, src.PaymentDay))
}

func (n *IncomeNormalizer) paysMonthly(src domain.IncomeSource, p MonthPeriod) bool {
	return IsSourceActive(src, p) && PaysInPeriod(p, src.PaymentDay)
}

func (n *IncomeNormalizer) monthlyTax(monthlyTaxable decimal.Decimal) decimal.Decimal {
	return n.TaxCalc.AnnualIncomeTax(monthlyTaxable.Mul(twelve)).Div(twelve)
}

func (n *IncomeNormalizer) monthlyWithholding(monthlyTaxable decimal.Decimal, p MonthPeriod, withholdLoan bool) decimal.Decimal {
	if !withholdLoan {
		return decimal.Zero
	}
	return n.LoanCalc.AnnualRepayment(monthlyTaxable.Mul(twelve), p.IncomeYear()).Div(twelve)
}

// clipToWindow intersects p's covered days with w
func clipToWindow(w domain.ActivityWindow, p MonthPeriod) (start, end time.Time, ok bool) {
	start, end = p.Start, p.End
	if w.StartDate != nil && dateutil.DateOnly(*w.StartDate).After(start) {
		start = dateutil.DateOnly(*w.StartDate)
	}
	if w.EndDate != nil && dateutil.DateOnly(*w.EndDate).Before(end) {
		end = dateutil.DateOnly(*w.EndDate)
	}
	return start, end, !end.Before(start)
}
