package config

import (
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateExampleConfiguration creates a complete two-person example household
func (ip *InputParser) CreateExampleConfiguration() *domain.Household {
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	ptr := func(s string) *time.Time {
		t := date(s)
		return &t
	}
	rate := func(f float64) *decimal.Decimal {
		d := decimal.NewFromFloat(f)
		return &d
	}

	return &domain.Household{
		Name: "Example household",
		People: []domain.Person{
			{
				ID:   "alex",
				Name: "Alex",
				LoanDebt: &domain.LoanDebt{
					Balance:         decimal.NewFromInt(24500),
					BalanceAsOfDate: ptr("2025-07-01"),
					IndexationRate:  decimal.NewFromFloat(0.032),
					Additions: []domain.LoanAddition{
						{Date: date("2026-03-31"), Amount: decimal.NewFromInt(4200)},
					},
				},
			},
			{ID: "sam", Name: "Sam"},
		},
		IncomeSources: []domain.IncomeSource{
			{
				ID:         "alex-support",
				PersonID:   "alex",
				Name:       "Ministry support",
				Kind:       domain.IncomeSteppedTarget,
				PaymentDay: 15,
				SteppedTarget: &domain.SteppedTarget{
					CurrentValue:       decimal.NewFromInt(7200),
					TargetValue:        decimal.NewFromInt(8800),
					StepIntervalMonths: 6,
					Allowances:         decimal.NewFromInt(900),
					Deductions:         decimal.NewFromInt(150),
				},
			},
			{
				ID:          "sam-salary",
				PersonID:    "sam",
				Name:        "Salary",
				Kind:        domain.IncomeFixedSalary,
				PaymentDay:  28,
				FixedSalary: &domain.FixedSalary{AnnualGross: decimal.NewFromInt(78000)},
			},
			{
				ID:       "sam-family",
				PersonID: "sam",
				Name:     "Family payment",
				Kind:     domain.IncomeFlatBenefit,
				ActivityWindow: domain.ActivityWindow{
					EndDate: ptr("2026-12-31"),
				},
				FlatBenefit: &domain.FlatBenefit{
					FortnightlyAmount: decimal.NewFromInt(320),
					AnchorDate:        ptr("2025-09-04"),
				},
			},
		},
		Deposit: domain.DepositPlan{
			TargetDate:   date("2027-06-30"),
			DepositGoal:  decimal.NewFromInt(90000),
			StartingCash: decimal.NewFromInt(12000),
			EmergencyFund: domain.EmergencyFund{
				Floor:  decimal.NewFromInt(4000),
				Target: decimal.NewFromInt(10000),
			},
			Budget: []domain.BudgetItem{
				{ID: "rent", Name: "Rent", Amount: decimal.NewFromInt(560), Frequency: domain.Weekly, Category: domain.CategoryEssential},
				{ID: "groceries", Name: "Groceries", Amount: decimal.NewFromInt(900), Frequency: domain.Monthly, Category: domain.CategoryEssential},
				{ID: "utilities", Name: "Utilities", Amount: decimal.NewFromInt(780), Frequency: domain.Quarterly, Category: domain.CategoryEssential},
				{ID: "insurance", Name: "Car insurance", Amount: decimal.NewFromInt(1100), Frequency: domain.Yearly, Category: domain.CategoryRecurring},
				{ID: "phones", Name: "Phones", Amount: decimal.NewFromInt(45), Frequency: domain.Fortnightly, Category: domain.CategoryRecurring},
				{ID: "car-fund", Name: "Car replacement", Amount: decimal.NewFromInt(250), Frequency: domain.Monthly, Category: domain.CategoryGoal, Deadline: ptr("2026-06-30")},
			},
			OneOffExpenses: []domain.OneOff{
				{Name: "Christmas flights", Amount: decimal.NewFromInt(2200), Date: date("2025-12-10")},
			},
			OneOffDeposits: []domain.OneOff{
				{Name: "Tax refund", Amount: decimal.NewFromInt(1800), Date: date("2026-08-15")},
			},
			Holdings: []domain.StockHolding{
				{Symbol: "VAS.AU", Shares: decimal.NewFromInt(40)},
			},
			Strategy: domain.InvestmentStrategy{
				Allocations: []domain.Allocation{
					{Symbol: "VAS.AU", Weight: decimal.NewFromFloat(0.6)},
					{Symbol: "VGS.AU", Weight: decimal.NewFromFloat(0.4)},
				},
				MinimumInvestment: decimal.NewFromInt(1000),
				BrokerFee:         decimal.NewFromInt(3),
			},
			FHSS: &domain.FHSSPlan{
				DeemedRate: decimal.NewFromFloat(0.0517),
				Contributions: []domain.FHSSContribution{
					{Date: date("2025-07-15"), Amount: decimal.NewFromInt(5000), Concessional: true},
					{Date: date("2026-07-15"), Amount: decimal.NewFromInt(5000), Concessional: true},
				},
			},
		},
		Market: domain.MarketSnapshot{
			FallbackGrowthRate: decimal.NewFromFloat(0.07),
			Symbols: map[string]domain.SymbolQuote{
				"VAS.AU": {Price: decimal.NewFromFloat(101.50), GrowthRate: rate(0.082)},
				"VGS.AU": {Price: decimal.NewFromFloat(140.20), GrowthRate: rate(0.105)},
			},
		},
	}
}
