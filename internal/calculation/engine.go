package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/homepath/deposit-forecast/pkg/dateutil"
	"github.com/homepath/deposit-forecast/pkg/money"
	"github.com/shopspring/decimal"
)

// ErrNilHousehold is returned when Project is called without a household
var ErrNilHousehold = errors.New("household is required")

// ProjectionEngine runs the month-by-month deposit projection. It holds no
// per-run state, so one engine may serve concurrent projections.
type ProjectionEngine struct {
	TaxCalc  TaxCalculator
	LoanCalc LoanRepaymentCalculator
	FHSSCalc FHSSCalculator
	Debug    bool // log one line per simulated month
	Logger   Logger

	income *IncomeNormalizer
	loans  *LoanEvolver
}

// NewProjectionEngine creates an engine with the default Australian collaborators
func NewProjectionEngine() *ProjectionEngine {
	return NewProjectionEngineWith(NewIncomeTaxCalculator2024(), NewHECSRepaymentCalculator(), NewDeemedFHSSCalculator())
}

// NewProjectionEngineWith creates an engine over caller-supplied collaborators
func NewProjectionEngineWith(taxCalc TaxCalculator, loanCalc LoanRepaymentCalculator, fhssCalc FHSSCalculator) *ProjectionEngine {
	return &ProjectionEngine{
		TaxCalc:  taxCalc,
		LoanCalc: loanCalc,
		FHSSCalc: fhssCalc,
		Logger:   NopLogger{},
		income:   NewIncomeNormalizer(taxCalc, loanCalc),
		loans:    NewLoanEvolver(loanCalc),
	}
}

// SetLogger sets the logger for the engine and its collaborators. If nil is
// provided, a no-op logger is used.
func (e *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	if hecs, ok := e.LoanCalc.(*HECSRepaymentCalculator); ok {
		hecs.Logger = l
	}
}

// Project simulates h from its journey start (today when unset) to the
// deposit target date. market overrides h.Market when non-nil.
func (e *ProjectionEngine) Project(h *domain.Household, market MarketData) (*domain.ProjectionResult, error) {
	if h == nil {
		return nil, ErrNilHousehold
	}
	if market == nil {
		market = h.Market
	}

	start := today()
	if h.JourneyStart != nil {
		start = *h.JourneyStart
	}
	start = dateutil.DateOnly(start)
	target := dateutil.DateOnly(h.Deposit.TargetDate)
	if target.Before(start) {
		return nil, fmt.Errorf("target date (%s) cannot be before journey start (%s)",
			target.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	proj := &Projection{
		Household: h,
		Market:    market,
		Journey:   BuildJourneyPlan(start, target),
	}
	e.Logger.Infof("projecting %q: %d months from %s to %s", h.Name, proj.Journey.Len(),
		start.Format("2006-01-02"), target.Format("2006-01-02"))

	state := NewSimulationState(h, market)
	months := make([]domain.MonthlyResult, 0, proj.Journey.Len())
	for i := range proj.Journey.Months {
		var rec domain.MonthlyResult
		state, rec = e.AdvanceOneMonth(state, proj, i)
		months = append(months, rec)
	}

	return &domain.ProjectionResult{
		Household:    h.Name,
		JourneyStart: start,
		TargetDate:   target,
		Months:       months,
		Summary:      Summarize(months, h.Deposit, target),
	}, nil
}

// Summarize derives the headline figures from a month series
func Summarize(months []domain.MonthlyResult, plan domain.DepositPlan, target time.Time) domain.ProjectionSummary {
	s := domain.ProjectionSummary{
		Months:            len(months),
		TargetDate:        target,
		DepositGoal:       plan.DepositGoal,
		FinalLoanBalances: map[string]decimal.Decimal{},
		StatusMonths:      map[domain.FundStatus]int{},
	}

	for i, m := range months {
		s.TotalNetIncome = s.TotalNetIncome.Add(m.NetIncome)
		s.TotalExpenses = s.TotalExpenses.Add(m.TotalExpenses)
		for _, v := range m.Invested {
			s.TotalInvested = s.TotalInvested.Add(v)
		}
		s.TotalBrokerFees = s.TotalBrokerFees.Add(m.BrokerFees)
		s.TotalGrowth = s.TotalGrowth.Add(m.Growth)
		for _, l := range m.Loans {
			s.TotalRepayments = s.TotalRepayments.Add(l.Repayment)
			s.TotalIndexation = s.TotalIndexation.Add(l.Indexation)
		}
		s.StatusMonths[m.FundStatus]++
		if i == 0 || m.CashPool.LessThan(s.LowestCashPool) {
			s.LowestCashPool = m.CashPool
		}
		if s.GoalReachedDate == nil && plan.DepositGoal.IsPositive() && m.TotalDeposit.GreaterThanOrEqual(plan.DepositGoal) {
			reached := m.PeriodEnd
			s.GoalReachedDate = &reached
		}
	}

	if n := len(months); n > 0 {
		last := months[n-1]
		s.FinalDeposit = last.TotalDeposit
		s.FinalAvailableCash = last.AvailableCash
		s.FinalFHSS = last.FHSS.Total
		s.FinalLoanBalance = last.TotalLoanBalance
		for _, l := range last.Loans {
			s.FinalLoanBalances[l.PersonID] = l.Closing
		}
	}
	s.GoalReached = s.FinalDeposit.GreaterThanOrEqual(plan.DepositGoal)
	s.Shortfall = money.NonNegative(plan.DepositGoal.Sub(s.FinalDeposit))
	return s
}
