package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

var weightTolerance = decimal.NewFromFloat(0.001)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report YAML field names in error paths
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateConfiguration validates field constraints and cross-field rules
func (ip *InputParser) ValidateConfiguration(h *domain.Household) error {
	if h == nil {
		return fmt.Errorf("no household provided")
	}
	if err := ip.validate.Struct(h); err != nil {
		return translateValidationError(err)
	}

	if len(h.People) == 0 {
		return fmt.Errorf("at least one person is required")
	}
	seen := map[string]bool{}
	for i, p := range h.People {
		if seen[p.ID] {
			return fmt.Errorf("people[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		if err := validateLoan(p.LoanDebt); err != nil {
			return fmt.Errorf("people[%d].loan_debt: %w", i, err)
		}
	}

	for i, src := range h.IncomeSources {
		if !seen[src.PersonID] {
			return fmt.Errorf("income_sources[%d]: unknown person %q", i, src.PersonID)
		}
		if err := validateIncomeSource(&src); err != nil {
			return fmt.Errorf("income_sources[%d] (%s): %w", i, src.Name, err)
		}
	}

	return validateDeposit(&h.Deposit)
}

func validateLoan(debt *domain.LoanDebt) error {
	if debt == nil {
		return nil
	}
	if debt.Balance.IsNegative() {
		return fmt.Errorf("balance cannot be negative")
	}
	if debt.IndexationRate.IsNegative() {
		return fmt.Errorf("indexation rate cannot be negative")
	}
	return nil
}

func validateIncomeSource(src *domain.IncomeSource) error {
	if src.IsMonthlyCadence() && (src.PaymentDay < 1 || src.PaymentDay > 31) {
		return fmt.Errorf("payment day must be between 1 and 31, got %d", src.PaymentDay)
	}
	if src.StartDate != nil && src.EndDate != nil && src.EndDate.Before(*src.StartDate) {
		return fmt.Errorf("end date is before start date")
	}

	switch src.Kind {
	case domain.IncomeSteppedTarget:
		st := src.SteppedTarget
		if st == nil {
			return fmt.Errorf("stepped_target block is required for kind %s", src.Kind)
		}
		if st.StepIntervalMonths < 1 {
			return fmt.Errorf("step interval must be at least 1 month")
		}
		if st.CurrentValue.IsNegative() || st.TargetValue.IsNegative() {
			return fmt.Errorf("stepped values cannot be negative")
		}
	case domain.IncomeFixedSalary:
		if src.FixedSalary == nil {
			return fmt.Errorf("fixed_salary block is required for kind %s", src.Kind)
		}
	case domain.IncomeFlatBenefit:
		if src.FlatBenefit == nil {
			return fmt.Errorf("flat_benefit block is required for kind %s", src.Kind)
		}
	}
	return nil
}

func validateDeposit(plan *domain.DepositPlan) error {
	if plan.EmergencyFund.Floor.GreaterThan(plan.EmergencyFund.Target) {
		return fmt.Errorf("emergency fund floor (%s) cannot exceed target (%s)",
			plan.EmergencyFund.Floor.String(), plan.EmergencyFund.Target.String())
	}

	if allocs := plan.Strategy.Allocations; len(allocs) > 0 {
		total := decimal.Zero
		for _, a := range allocs {
			if a.Weight.IsNegative() {
				return fmt.Errorf("allocation weight for %s cannot be negative", a.Symbol)
			}
			total = total.Add(a.Weight)
		}
		if total.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(weightTolerance) {
			return fmt.Errorf("allocation weights must sum to 1, got %s", total.String())
		}
	}
	if plan.Strategy.MinimumInvestment.IsNegative() || plan.Strategy.BrokerFee.IsNegative() {
		return fmt.Errorf("minimum investment and broker fee cannot be negative")
	}

	for i, item := range plan.Budget {
		if item.Deadline != nil && item.Category != domain.CategoryGoal {
			return fmt.Errorf("budget[%d] (%s): only goal items may have a deadline", i, item.Name)
		}
	}
	return nil
}

// translateValidationError turns validator errors into field-path messages
func translateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", path, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", path, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
	}
}
