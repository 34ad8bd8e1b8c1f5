package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/homepath/deposit-forecast/internal/domain"
)

// CSVFormatter exports one row per simulated month.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

var csvHeader = []string{
	"Month", "PeriodStart", "PeriodEnd", "ProrationFactor",
	"NetIncome", "Essential", "Recurring", "Goals", "OneOff", "OneOffDeposits", "Surplus",
	"CashPool", "EmergencyReserve", "AvailableCash", "FundStatus",
	"Invested", "BrokerFees", "InvestmentPools", "HoldingValues", "Growth", "PendingInvestment",
	"FHSS", "LoanBalance", "TotalDeposit",
}

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, m := range result.Months {
		row := []string{
			strconv.Itoa(m.MonthIndex),
			FormatDate(m.PeriodStart),
			FormatDate(m.PeriodEnd),
			m.ProrationFactor.StringFixed(4),
			m.NetIncome.StringFixed(2),
			m.Expenses.Essential.StringFixed(2),
			m.Expenses.Recurring.StringFixed(2),
			m.Expenses.Goals.StringFixed(2),
			m.Expenses.OneOff.StringFixed(2),
			m.OneOffDeposits.StringFixed(2),
			m.Surplus.StringFixed(2),
			m.CashPool.StringFixed(2),
			m.EmergencyReserve.StringFixed(2),
			m.AvailableCash.StringFixed(2),
			string(m.FundStatus),
			sumAmounts(m.Invested).StringFixed(2),
			m.BrokerFees.StringFixed(2),
			sumAmounts(m.InvestmentPools).StringFixed(2),
			sumAmounts(m.HoldingValues).StringFixed(2),
			m.Growth.StringFixed(2),
			m.PendingInvestment.StringFixed(2),
			m.FHSS.Total.StringFixed(2),
			m.TotalLoanBalance.StringFixed(2),
			m.TotalDeposit.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
