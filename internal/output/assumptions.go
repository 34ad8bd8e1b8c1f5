package output

import (
	"fmt"
	"sort"

	"github.com/homepath/deposit-forecast/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Income tax: 2024-25 resident brackets plus 2% Medicare levy, held constant",
	"Study loan repayments: income-year tables, 2025-26 used for later years",
	"Study loan indexation applied each June on the closing balance",
	"Investment growth compounds monthly at the annual rate / 12",
	"FHSS: 85% of concessional contributions, deemed earnings compound daily",
}

// GenerateAssumptions creates the assumptions list from the household's own
// strategy and market settings.
func GenerateAssumptions(h *domain.Household) []string {
	if h == nil {
		return DefaultAssumptions
	}
	out := append([]string(nil), DefaultAssumptions...)
	out = append(out, fmt.Sprintf("Fallback growth rate: %s p.a.", FormatRate(h.Market.FallbackGrowthRate)))

	symbols := make([]string, 0, len(h.Market.Symbols))
	for s := range h.Market.Symbols {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		q := h.Market.Symbols[s]
		if q.GrowthRate != nil {
			out = append(out, fmt.Sprintf("%s growth rate: %s p.a.", s, FormatRate(*q.GrowthRate)))
		}
	}

	st := h.Deposit.Strategy
	if len(st.Allocations) > 0 {
		out = append(out, fmt.Sprintf("Surplus above the emergency target (%s) invested once it reaches %s; broker fee %s per trade",
			FormatCurrency(h.Deposit.EmergencyFund.Target), FormatCurrency(st.MinimumInvestment), FormatCurrency(st.BrokerFee)))
	}
	if h.Deposit.FHSS != nil {
		out = append(out, fmt.Sprintf("FHSS deemed rate: %s p.a.", FormatRate(h.Deposit.FHSS.DeemedRate)))
	}
	return out
}
