package output

import (
	"sort"
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the target date picked from a comparison.
type Recommendation struct {
	TargetDate   time.Time
	FinalDeposit decimal.Decimal
	// Margin is final deposit minus goal; negative when the goal is missed.
	Margin  decimal.Decimal
	Reached bool
}

// RecommendTarget picks the earliest target date whose projection reaches the
// deposit goal. When no date reaches it, the date with the smallest shortfall wins.
func RecommendTarget(rows []domain.ComparisonRow) Recommendation {
	if len(rows) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.ComparisonRow(nil), rows...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TargetDate.Before(ranked[j].TargetDate) })

	for _, r := range ranked {
		if r.Summary.GoalReached {
			return recommendationFor(r)
		}
	}
	best := ranked[0]
	for _, r := range ranked[1:] {
		if r.Summary.Shortfall.LessThan(best.Summary.Shortfall) {
			best = r
		}
	}
	return recommendationFor(best)
}

func recommendationFor(r domain.ComparisonRow) Recommendation {
	return Recommendation{
		TargetDate:   r.TargetDate,
		FinalDeposit: r.Summary.FinalDeposit,
		Margin:       r.Summary.FinalDeposit.Sub(r.Summary.DepositGoal),
		Reached:      r.Summary.GoalReached,
	}
}
