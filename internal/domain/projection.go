package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundStatus classifies the cash pool against the emergency thresholds
type FundStatus string

const (
	FundCritical   FundStatus = "critical"
	FundRebuilding FundStatus = "rebuilding"
	FundHealthy    FundStatus = "healthy"
)

// IncomeLine is the result of evaluating one income source for one month
type IncomeLine struct {
	SourceID         string          `json:"source_id"`
	SourceName       string          `json:"source_name"`
	PersonID         string          `json:"person_id"`
	Kind             IncomeKind      `json:"kind"`
	Received         bool            `json:"received"`
	Gross            decimal.Decimal `json:"gross"`
	Tax              decimal.Decimal `json:"tax"`
	LoanWithholding  decimal.Decimal `json:"loan_withholding"`
	Net              decimal.Decimal `json:"net"`
	SteppedValue     decimal.Decimal `json:"stepped_value,omitempty"`
	Fortnights       int             `json:"fortnights,omitempty"`
	PartialFortnight decimal.Decimal `json:"partial_fortnight,omitempty"`
}

// ExpenseBreakdown splits a month's outgoings by category
type ExpenseBreakdown struct {
	Essential decimal.Decimal `json:"essential"`
	Recurring decimal.Decimal `json:"recurring"`
	Goals     decimal.Decimal `json:"goals"`
	OneOff    decimal.Decimal `json:"one_off"`
}

// Total sums every category
func (e ExpenseBreakdown) Total() decimal.Decimal {
	return e.Essential.Add(e.Recurring).Add(e.Goals).Add(e.OneOff)
}

// LoanMonth traces one person's loan balance through a month
type LoanMonth struct {
	PersonID   string          `json:"person_id"`
	Opening    decimal.Decimal `json:"opening"`
	Additions  decimal.Decimal `json:"additions"`
	Repayment  decimal.Decimal `json:"repayment"`
	Indexation decimal.Decimal `json:"indexation"`
	Closing    decimal.Decimal `json:"closing"`
}

// FHSSValue is the releasable First Home Super Saver amount at a point in time
type FHSSValue struct {
	Principal decimal.Decimal `json:"principal"`
	Earnings  decimal.Decimal `json:"earnings"`
	Total     decimal.Decimal `json:"total"`
}

// MonthlyResult is the immutable record of one simulated month
type MonthlyResult struct {
	MonthIndex      int             `json:"month_index"`
	Date            time.Time       `json:"date"`
	PeriodStart     time.Time       `json:"period_start"`
	PeriodEnd       time.Time       `json:"period_end"`
	IsFirstMonth    bool            `json:"is_first_month"`
	IsLastMonth     bool            `json:"is_last_month"`
	ProrationFactor decimal.Decimal `json:"proration_factor"`

	Income    []IncomeLine    `json:"income"`
	NetIncome decimal.Decimal `json:"net_income"`

	Expenses       ExpenseBreakdown `json:"expenses"`
	TotalExpenses  decimal.Decimal  `json:"total_expenses"`
	OneOffDeposits decimal.Decimal  `json:"one_off_deposits"`
	Surplus        decimal.Decimal  `json:"surplus"`

	CashPool         decimal.Decimal `json:"cash_pool"`
	EmergencyReserve decimal.Decimal `json:"emergency_reserve"`
	AvailableCash    decimal.Decimal `json:"available_cash"`
	FundStatus       FundStatus      `json:"fund_status"`

	Invested           map[string]decimal.Decimal `json:"invested,omitempty"`
	BrokerFees         decimal.Decimal            `json:"broker_fees"`
	InvestmentPools    map[string]decimal.Decimal `json:"investment_pools,omitempty"`
	HoldingValues      map[string]decimal.Decimal `json:"holding_values,omitempty"`
	Growth             decimal.Decimal            `json:"growth"`
	TotalInvestments   decimal.Decimal            `json:"total_investments"`
	InvestmentDeferred bool                       `json:"investment_deferred"`
	PendingInvestment  decimal.Decimal            `json:"pending_investment"`

	FHSS FHSSValue `json:"fhss"`

	Loans            []LoanMonth     `json:"loans,omitempty"`
	TotalLoanBalance decimal.Decimal `json:"total_loan_balance"`

	TotalDeposit decimal.Decimal `json:"total_deposit"`
}

// LoanBalance returns personID's closing loan balance, zero when they have no loan
func (m *MonthlyResult) LoanBalance(personID string) decimal.Decimal {
	for _, l := range m.Loans {
		if l.PersonID == personID {
			return l.Closing
		}
	}
	return decimal.Zero
}

// ProjectionSummary holds the headline figures of a projection
type ProjectionSummary struct {
	Months             int                        `json:"months"`
	TargetDate         time.Time                  `json:"target_date"`
	DepositGoal        decimal.Decimal            `json:"deposit_goal"`
	FinalDeposit       decimal.Decimal            `json:"final_deposit"`
	Shortfall          decimal.Decimal            `json:"shortfall"`
	GoalReached        bool                       `json:"goal_reached"`
	GoalReachedDate    *time.Time                 `json:"goal_reached_date,omitempty"`
	TotalNetIncome     decimal.Decimal            `json:"total_net_income"`
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	TotalInvested      decimal.Decimal            `json:"total_invested"`
	TotalBrokerFees    decimal.Decimal            `json:"total_broker_fees"`
	TotalGrowth        decimal.Decimal            `json:"total_growth"`
	TotalRepayments    decimal.Decimal            `json:"total_loan_repayments"`
	TotalIndexation    decimal.Decimal            `json:"total_loan_indexation"`
	FinalLoanBalance   decimal.Decimal            `json:"final_loan_balance"`
	FinalLoanBalances  map[string]decimal.Decimal `json:"final_loan_balances,omitempty"`
	FinalFHSS          decimal.Decimal            `json:"final_fhss"`
	FinalAvailableCash decimal.Decimal            `json:"final_available_cash"`
	LowestCashPool     decimal.Decimal            `json:"lowest_cash_pool"`
	StatusMonths       map[FundStatus]int         `json:"status_months"`
}

// ProjectionResult is the full output of one projection run
type ProjectionResult struct {
	Household    string            `json:"household"`
	JourneyStart time.Time         `json:"journey_start"`
	TargetDate   time.Time         `json:"target_date"`
	Months       []MonthlyResult   `json:"months"`
	Summary      ProjectionSummary `json:"summary"`
	// Assumptions are rendered by detailed reports; callers fill them in.
	Assumptions []string `json:"assumptions,omitempty"`
}

// ComparisonRow is one target date's summary within a scenario comparison
type ComparisonRow struct {
	TargetDate time.Time         `json:"target_date"`
	Summary    ProjectionSummary `json:"summary"`
}
