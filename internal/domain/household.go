package domain

import (
	"time"

	"github.com/homepath/deposit-forecast/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// IncomeKind identifies which income variant a source carries
type IncomeKind string

const (
	IncomeSteppedTarget IncomeKind = "stepped_target"
	IncomeFixedSalary   IncomeKind = "fixed_salary"
	IncomeFlatBenefit   IncomeKind = "flat_benefit"
)

// Frequency is how often a budget item recurs
type Frequency string

const (
	Weekly      Frequency = "weekly"
	Fortnightly Frequency = "fortnightly"
	Monthly     Frequency = "monthly"
	Quarterly   Frequency = "quarterly"
	Biannual    Frequency = "biannual"
	Yearly      Frequency = "yearly"
)

// BudgetCategory groups budget items for reporting and goal handling
type BudgetCategory string

const (
	CategoryEssential BudgetCategory = "essential"
	CategoryRecurring BudgetCategory = "recurring"
	CategoryGoal      BudgetCategory = "goal"
)

// Household is the full snapshot a projection runs against. It is never
// mutated by the engine.
type Household struct {
	Name          string         `yaml:"name" json:"name" toml:"name"`
	JourneyStart  *time.Time     `yaml:"journey_start,omitempty" json:"journey_start,omitempty" toml:"journey_start,omitempty"`
	People        []Person       `yaml:"people" json:"people" toml:"people" validate:"dive"`
	IncomeSources []IncomeSource `yaml:"income_sources" json:"income_sources" toml:"income_sources" validate:"dive"`
	Deposit       DepositPlan    `yaml:"deposit" json:"deposit" toml:"deposit"`
	Market        MarketSnapshot `yaml:"market" json:"market" toml:"market"`
}

// Person is a household member, optionally carrying a study-loan debt
type Person struct {
	ID       string    `yaml:"id" json:"id" toml:"id"`
	Name     string    `yaml:"name" json:"name" toml:"name" validate:"required"`
	LoanDebt *LoanDebt `yaml:"loan_debt,omitempty" json:"loan_debt,omitempty" toml:"loan_debt,omitempty"`
}

// LoanDebt is a government study loan (HECS-HELP) as known on BalanceAsOfDate.
// Additions dated on or before that date are already folded into Balance.
type LoanDebt struct {
	Balance         decimal.Decimal `yaml:"balance" json:"balance" toml:"balance"`
	BalanceAsOfDate *time.Time      `yaml:"balance_as_of_date,omitempty" json:"balance_as_of_date,omitempty" toml:"balance_as_of_date,omitempty"`
	IndexationRate  decimal.Decimal `yaml:"indexation_rate" json:"indexation_rate" toml:"indexation_rate"`
	Additions       []LoanAddition  `yaml:"additions,omitempty" json:"additions,omitempty" toml:"additions,omitempty"`
}

// LoanAddition is a future scheduled increase of a loan balance (e.g. a new study period)
type LoanAddition struct {
	Date   time.Time       `yaml:"date" json:"date" toml:"date"`
	Amount decimal.Decimal `yaml:"amount" json:"amount" toml:"amount"`
}

// ActivityWindow is an optional inclusive [start, end] date range
type ActivityWindow struct {
	StartDate *time.Time `yaml:"start_date,omitempty" json:"start_date,omitempty" toml:"start_date,omitempty"`
	EndDate   *time.Time `yaml:"end_date,omitempty" json:"end_date,omitempty" toml:"end_date,omitempty"`
}

// IsActiveOn reports whether the window contains date
func (w ActivityWindow) IsActiveOn(date time.Time) bool {
	return dateutil.IsActiveOn(w.StartDate, w.EndDate, date)
}

// IncomeSource is one stream of income belonging to a person. Exactly one of
// the variant blocks matching Kind is expected to be set.
type IncomeSource struct {
	ID             string     `yaml:"id" json:"id" toml:"id"`
	PersonID       string     `yaml:"person_id" json:"person_id" toml:"person_id" validate:"required"`
	Name           string     `yaml:"name" json:"name" toml:"name" validate:"required"`
	Kind           IncomeKind `yaml:"kind" json:"kind" toml:"kind" validate:"required,oneof=stepped_target fixed_salary flat_benefit"`
	PaymentDay     int        `yaml:"payment_day" json:"payment_day" toml:"payment_day" validate:"min=0,max=31"`
	ActivityWindow `yaml:",inline"`

	SteppedTarget *SteppedTarget `yaml:"stepped_target,omitempty" json:"stepped_target,omitempty" toml:"stepped_target,omitempty"`
	FixedSalary   *FixedSalary   `yaml:"fixed_salary,omitempty" json:"fixed_salary,omitempty" toml:"fixed_salary,omitempty"`
	FlatBenefit   *FlatBenefit   `yaml:"flat_benefit,omitempty" json:"flat_benefit,omitempty" toml:"flat_benefit,omitempty"`
}

// IsMonthlyCadence reports whether the source pays once a month on PaymentDay
func (s *IncomeSource) IsMonthlyCadence() bool {
	if s.Kind == IncomeFlatBenefit && s.FlatBenefit != nil && s.FlatBenefit.AnchorDate != nil {
		return false
	}
	return true
}

// SteppedTarget (TMN) is a monthly gross package growing in steps from
// CurrentValue to TargetValue over the journey. Allowances are the monthly
// non-taxable part of the package; Deductions are fixed monthly deductions.
type SteppedTarget struct {
	CurrentValue       decimal.Decimal `yaml:"current_value" json:"current_value" toml:"current_value"`
	TargetValue        decimal.Decimal `yaml:"target_value" json:"target_value" toml:"target_value"`
	StepIntervalMonths int             `yaml:"step_interval_months" json:"step_interval_months" toml:"step_interval_months"`
	Allowances         decimal.Decimal `yaml:"allowances" json:"allowances" toml:"allowances"`
	Deductions         decimal.Decimal `yaml:"deductions" json:"deductions" toml:"deductions"`
}

// FixedSalary is a flat annual gross salary
type FixedSalary struct {
	AnnualGross decimal.Decimal `yaml:"annual_gross" json:"annual_gross" toml:"annual_gross"`
}

// FlatBenefit is a fortnightly government payment. When AnchorDate is set,
// payments land every 14 days from it.
type FlatBenefit struct {
	FortnightlyAmount decimal.Decimal `yaml:"fortnightly_amount" json:"fortnightly_amount" toml:"fortnightly_amount"`
	Taxable           bool            `yaml:"taxable" json:"taxable" toml:"taxable"`
	AnchorDate        *time.Time      `yaml:"anchor_date,omitempty" json:"anchor_date,omitempty" toml:"anchor_date,omitempty"`
}

// DepositPlan holds the saving goal and everything that moves cash toward it
type DepositPlan struct {
	TargetDate     time.Time          `yaml:"target_date" json:"target_date" toml:"target_date" validate:"required"`
	DepositGoal    decimal.Decimal    `yaml:"deposit_goal" json:"deposit_goal" toml:"deposit_goal"`
	StartingCash   decimal.Decimal    `yaml:"starting_cash" json:"starting_cash" toml:"starting_cash"`
	EmergencyFund  EmergencyFund      `yaml:"emergency_fund" json:"emergency_fund" toml:"emergency_fund"`
	Budget         []BudgetItem       `yaml:"budget" json:"budget" toml:"budget" validate:"dive"`
	OneOffExpenses []OneOff           `yaml:"one_off_expenses,omitempty" json:"one_off_expenses,omitempty" toml:"one_off_expenses,omitempty" validate:"dive"`
	OneOffDeposits []OneOff           `yaml:"one_off_deposits,omitempty" json:"one_off_deposits,omitempty" toml:"one_off_deposits,omitempty" validate:"dive"`
	Holdings       []StockHolding     `yaml:"holdings,omitempty" json:"holdings,omitempty" toml:"holdings,omitempty" validate:"dive"`
	Strategy       InvestmentStrategy `yaml:"strategy" json:"strategy" toml:"strategy"`
	FHSS           *FHSSPlan          `yaml:"fhss,omitempty" json:"fhss,omitempty" toml:"fhss,omitempty"`
}

// EmergencyFund thresholds gate the cash/investment waterfall
type EmergencyFund struct {
	Floor  decimal.Decimal `yaml:"floor" json:"floor" toml:"floor"`
	Target decimal.Decimal `yaml:"target" json:"target" toml:"target"`
}

// BudgetItem is a recurring expense or savings goal
type BudgetItem struct {
	ID             string          `yaml:"id" json:"id" toml:"id"`
	Name           string          `yaml:"name" json:"name" toml:"name" validate:"required"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount" toml:"amount"`
	Frequency      Frequency       `yaml:"frequency" json:"frequency" toml:"frequency" validate:"required,oneof=weekly fortnightly monthly quarterly biannual yearly"`
	Category       BudgetCategory  `yaml:"category" json:"category" toml:"category" validate:"required,oneof=essential recurring goal"`
	ActivityWindow `yaml:",inline"`
	Deadline       *time.Time `yaml:"deadline,omitempty" json:"deadline,omitempty" toml:"deadline,omitempty"`
	Completed      bool       `yaml:"completed,omitempty" json:"completed,omitempty" toml:"completed,omitempty"`
}

// OneOff is a single expense or deposit applied in the calendar month of Date
type OneOff struct {
	Name   string          `yaml:"name" json:"name" toml:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount" toml:"amount"`
	Date   time.Time       `yaml:"date" json:"date" toml:"date" validate:"required"`
}

// StockHolding is an existing parcel of shares
type StockHolding struct {
	Symbol string          `yaml:"symbol" json:"symbol" toml:"symbol" validate:"required"`
	Shares decimal.Decimal `yaml:"shares" json:"shares" toml:"shares"`
}

// Allocation is one (symbol, weight) leg of the investment strategy
type Allocation struct {
	Symbol string          `yaml:"symbol" json:"symbol" toml:"symbol" validate:"required"`
	Weight decimal.Decimal `yaml:"weight" json:"weight" toml:"weight"`
}

// InvestmentStrategy describes how surplus above the emergency target is invested
type InvestmentStrategy struct {
	Allocations       []Allocation    `yaml:"allocations" json:"allocations" toml:"allocations" validate:"dive"`
	MinimumInvestment decimal.Decimal `yaml:"minimum_investment" json:"minimum_investment" toml:"minimum_investment"`
	BrokerFee         decimal.Decimal `yaml:"broker_fee" json:"broker_fee" toml:"broker_fee"`
}

// FHSSPlan lists First Home Super Saver contributions and the deemed rate
type FHSSPlan struct {
	Contributions []FHSSContribution `yaml:"contributions" json:"contributions" toml:"contributions" validate:"dive"`
	DeemedRate    decimal.Decimal    `yaml:"deemed_rate" json:"deemed_rate" toml:"deemed_rate"`
}

// FHSSContribution is a voluntary super contribution eligible for release
type FHSSContribution struct {
	Date         time.Time       `yaml:"date" json:"date" toml:"date" validate:"required"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount" toml:"amount"`
	Concessional bool            `yaml:"concessional" json:"concessional" toml:"concessional"`
}

// PersonByID looks up a person; nil when absent
func (h *Household) PersonByID(id string) *Person {
	for i := range h.People {
		if h.People[i].ID == id {
			return &h.People[i]
		}
	}
	return nil
}

// SourcesFor returns the income sources owned by personID
func (h *Household) SourcesFor(personID string) []IncomeSource {
	var out []IncomeSource
	for _, s := range h.IncomeSources {
		if s.PersonID == personID {
			out = append(out, s)
		}
	}
	return out
}

// Symbols returns every symbol referenced by holdings and the strategy,
// in first-seen order.
func (h *Household) Symbols() []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, hd := range h.Deposit.Holdings {
		add(hd.Symbol)
	}
	for _, a := range h.Deposit.Strategy.Allocations {
		add(a.Symbol)
	}
	return out
}
