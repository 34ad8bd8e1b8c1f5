package calculation

import (
	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/homepath/deposit-forecast/pkg/money"
	"github.com/shopspring/decimal"
)

// SimulationState is everything that carries from one month to the next
type SimulationState struct {
	CashPool        decimal.Decimal
	InvestmentPools map[string]decimal.Decimal // created by the strategy
	Holdings        map[string]decimal.Decimal // pre-existing shares, by value
	LoanBalances    map[string]decimal.Decimal
}

// NewSimulationState seeds the state from starting cash, holdings valued at
// current prices, and each person's known loan balance.
func NewSimulationState(h *domain.Household, market MarketData) SimulationState {
	s := SimulationState{
		CashPool:        h.Deposit.StartingCash,
		InvestmentPools: map[string]decimal.Decimal{},
		Holdings:        map[string]decimal.Decimal{},
		LoanBalances:    map[string]decimal.Decimal{},
	}
	for _, hd := range h.Deposit.Holdings {
		s.Holdings[hd.Symbol] = s.Holdings[hd.Symbol].Add(hd.Shares.Mul(market.Price(hd.Symbol)))
	}
	for _, p := range h.People {
		if p.LoanDebt != nil {
			s.LoanBalances[p.ID] = money.NonNegative(p.LoanDebt.Balance)
		}
	}
	return s
}

// Clone returns a deep copy so a step never mutates its input state
func (s SimulationState) Clone() SimulationState {
	return SimulationState{
		CashPool:        s.CashPool,
		InvestmentPools: cloneAmounts(s.InvestmentPools),
		Holdings:        cloneAmounts(s.Holdings),
		LoanBalances:    cloneAmounts(s.LoanBalances),
	}
}

func cloneAmounts(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Projection bundles the read-only inputs a step function needs
type Projection struct {
	Household *domain.Household
	Market    MarketData
	Journey   JourneyPlan
}

// AdvanceOneMonth computes month i from state and returns the next state with
// the month's record. state itself is left untouched.
func (e *ProjectionEngine) AdvanceOneMonth(state SimulationState, proj *Projection, i int) (SimulationState, domain.MonthlyResult) {
	h := proj.Household
	p := proj.Journey.Months[i]
	total := proj.Journey.Len()
	next := state.Clone()

	rec := domain.MonthlyResult{
		MonthIndex:      i,
		Date:            p.Month,
		PeriodStart:     p.Start,
		PeriodEnd:       p.End,
		IsFirstMonth:    p.IsFirst,
		IsLastMonth:     p.IsLast,
		ProrationFactor: p.Factor,
	}

	// loans: withholding keys off the opening balance, repayment off
	// the owner's full-year assessable income
	withhold := map[string]bool{}
	for _, person := range h.People {
		if person.LoanDebt == nil {
			continue
		}
		opening := state.LoanBalances[person.ID]
		withhold[person.ID] = opening.IsPositive()

		income := decimal.Zero
		for _, src := range h.SourcesFor(person.ID) {
			income = income.Add(e.income.AnnualAssessable(src, p, total))
		}
		lm := e.loans.Advance(person.ID, person.LoanDebt, opening, income, p)
		next.LoanBalances[person.ID] = lm.Closing
		rec.Loans = append(rec.Loans, lm)
		rec.TotalLoanBalance = rec.TotalLoanBalance.Add(lm.Closing)
	}

	// income
	for _, src := range h.IncomeSources {
		line := e.income.Evaluate(src, p, total, withhold[src.PersonID])
		rec.Income = append(rec.Income, line)
		if line.Received {
			rec.NetIncome = rec.NetIncome.Add(line.Net)
		}
	}

	// expenses and surplus
	rec.Expenses, rec.OneOffDeposits = AggregateExpenses(&h.Deposit, p)
	rec.TotalExpenses = rec.Expenses.Total()
	rec.Surplus = rec.NetIncome.Sub(rec.TotalExpenses).Add(rec.OneOffDeposits)
	next.CashPool = next.CashPool.Add(rec.Surplus)

	// emergency fund / investment waterfall
	wf := ApplyWaterfall(next.CashPool, h.Deposit.EmergencyFund, h.Deposit.Strategy)
	next.CashPool = wf.Pool
	for symbol, amount := range wf.Invested {
		next.InvestmentPools[symbol] = next.InvestmentPools[symbol].Add(amount)
	}
	rec.FundStatus = wf.Status
	rec.Invested = wf.Invested
	rec.BrokerFees = wf.Fees
	rec.InvestmentDeferred = wf.Deferred
	rec.PendingInvestment = wf.Pending

	// growth
	rec.Growth = GrowPools(next.InvestmentPools, proj.Market, p.Factor).
		Add(GrowPools(next.Holdings, proj.Market, p.Factor))
	rec.InvestmentPools = cloneAmounts(next.InvestmentPools)
	rec.HoldingValues = cloneAmounts(next.Holdings)
	rec.TotalInvestments = sumPools(next.InvestmentPools).Add(sumPools(next.Holdings))

	// FHSS
	if fhss := h.Deposit.FHSS; fhss != nil && e.FHSSCalc != nil {
		rec.FHSS = e.FHSSCalc.Releasable(fhss.Contributions, p.End, fhss.DeemedRate)
	}

	rec.CashPool = next.CashPool
	rec.EmergencyReserve, rec.AvailableCash = SplitCash(next.CashPool, h.Deposit.EmergencyFund)
	rec.TotalDeposit = rec.AvailableCash.Add(rec.TotalInvestments).Add(rec.FHSS.Total)

	if e.Debug {
		e.Logger.Debugf("month %d (%s): factor=%s net=%s expenses=%s surplus=%s pool=%s status=%s deposit=%s",
			i, p.Month.Format("2006-01"), p.Factor.StringFixed(4), rec.NetIncome.StringFixed(2),
			rec.TotalExpenses.StringFixed(2), rec.Surplus.StringFixed(2), rec.CashPool.StringFixed(2),
			rec.FundStatus, rec.TotalDeposit.StringFixed(2))
	}
	return next, rec
}
