package calculation

import (
	"sync"

	"github.com/homepath/deposit-forecast/pkg/money"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income Tax: Australian resident brackets for 2024-25 are used for every
//    projected month. No indexing of thresholds is applied.
//
// 2. Medicare Levy: flat 2% of the whole taxable income once income exceeds
//    the low-income threshold (no shade-in band).
//
// 3. Study Loan (HECS-HELP) Repayments: tables are keyed by income-year label.
//    2024-25 charges a percentage of total repayment income; 2025-26 onwards
//    charges marginally above the threshold. Unknown years use the default table.

// TaxCalculator computes annual income tax for an annual taxable income
type TaxCalculator interface {
	AnnualIncomeTax(annualTaxableIncome decimal.Decimal) decimal.Decimal
}

// LoanRepaymentCalculator computes the compulsory annual study-loan repayment
type LoanRepaymentCalculator interface {
	AnnualRepayment(annualIncome decimal.Decimal, incomeYear string) decimal.Decimal
}

// TaxBracket is one progressive bracket. A zero Max means unbounded.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// IncomeTaxCalculator applies progressive brackets plus a flat levy
type IncomeTaxCalculator struct {
	Year          string
	Brackets      []TaxBracket
	LevyRate      decimal.Decimal
	LevyThreshold decimal.Decimal
}

// NewIncomeTaxCalculator2024 creates a calculator for the 2024-25 income year
func NewIncomeTaxCalculator2024() *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		Year: "2024-25",
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(18200), decimal.Zero},
			{decimal.NewFromInt(18200), decimal.NewFromInt(45000), decimal.NewFromFloat(0.16)},
			{decimal.NewFromInt(45000), decimal.NewFromInt(135000), decimal.NewFromFloat(0.30)},
			{decimal.NewFromInt(135000), decimal.NewFromInt(190000), decimal.NewFromFloat(0.37)},
			{decimal.NewFromInt(190000), decimal.Zero, decimal.NewFromFloat(0.45)},
		},
		LevyRate:      decimal.NewFromFloat(0.02),
		LevyThreshold: decimal.NewFromInt(26000),
	}
}

// AnnualIncomeTax returns bracket tax plus the levy; negative income pays nothing
func (c *IncomeTaxCalculator) AnnualIncomeTax(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	for _, b := range c.Brackets {
		if income.LessThanOrEqual(b.Min) {
			break
		}
		top := income
		if !b.Max.IsZero() {
			top = decimal.Min(income, b.Max)
		}
		tax = tax.Add(top.Sub(b.Min).Mul(b.Rate))
	}

	if income.GreaterThan(c.LevyThreshold) {
		tax = tax.Add(income.Mul(c.LevyRate))
	}
	return tax
}

// RepaymentTier charges Base plus Rate on the income above Threshold when
// Marginal is set, otherwise Rate on the whole income.
type RepaymentTier struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
	Base      decimal.Decimal
	Marginal  bool
}

// RepaymentTable is an ascending list of tiers for one income year
type RepaymentTable []RepaymentTier

// Repayment returns the annual repayment for income using the highest tier reached
func (t RepaymentTable) Repayment(income decimal.Decimal) decimal.Decimal {
	var tier *RepaymentTier
	for i := range t {
		if income.GreaterThanOrEqual(t[i].Threshold) {
			tier = &t[i]
		}
	}
	if tier == nil {
		return decimal.Zero
	}
	if tier.Marginal {
		return money.NonNegative(tier.Base.Add(income.Sub(tier.Threshold).Mul(tier.Rate)))
	}
	return income.Mul(tier.Rate)
}

// DefaultRepaymentYear is used for income years without a table
const DefaultRepaymentYear = "2025-26"

// HECSRepaymentCalculator looks up repayment tables by income-year label
type HECSRepaymentCalculator struct {
	Tables      map[string]RepaymentTable
	DefaultYear string
	Logger      Logger

	warned sync.Map
}

// NewHECSRepaymentCalculator creates a calculator with the 2024-25 and 2025-26 tables
func NewHECSRepaymentCalculator() *HECSRepaymentCalculator {
	return &HECSRepaymentCalculator{
		Tables: map[string]RepaymentTable{
			"2024-25": hecsTable2024(),
			"2025-26": hecsTable2025(),
		},
		DefaultYear: DefaultRepaymentYear,
		Logger:      NopLogger{},
	}
}

// AnnualRepayment returns the compulsory repayment for income in incomeYear
func (c *HECSRepaymentCalculator) AnnualRepayment(income decimal.Decimal, incomeYear string) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	table, ok := c.Tables[incomeYear]
	if !ok {
		if _, seen := c.warned.LoadOrStore(incomeYear, true); !seen && c.Logger != nil {
			c.Logger.Warnf("no HECS repayment table for %s, using %s", incomeYear, c.DefaultYear)
		}
		table = c.Tables[c.DefaultYear]
	}
	return table.Repayment(income)
}

func hecsTable2024() RepaymentTable {
	pct := func(threshold int64, rate float64) RepaymentTier {
		return RepaymentTier{Threshold: decimal.NewFromInt(threshold), Rate: decimal.NewFromFloat(rate)}
	}
	return RepaymentTable{
		pct(54435, 0.01),
		pct(62851, 0.02),
		pct(66621, 0.025),
		pct(70619, 0.03),
		pct(74856, 0.035),
		pct(79347, 0.04),
		pct(84108, 0.045),
		pct(89155, 0.05),
		pct(94504, 0.055),
		pct(100175, 0.06),
		pct(106186, 0.065),
		pct(112557, 0.07),
		pct(119310, 0.075),
		pct(126468, 0.08),
		pct(134057, 0.085),
		pct(142101, 0.09),
		pct(150627, 0.095),
		pct(159664, 0.10),
	}
}

func hecsTable2025() RepaymentTable {
	return RepaymentTable{
		{Threshold: decimal.NewFromInt(67000), Rate: decimal.NewFromFloat(0.15), Marginal: true},
		{Threshold: decimal.NewFromInt(125000), Rate: decimal.NewFromFloat(0.17), Base: decimal.NewFromInt(8700), Marginal: true},
		{Threshold: decimal.NewFromInt(179286), Rate: decimal.NewFromFloat(0.10)},
	}
}
