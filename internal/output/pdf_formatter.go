package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/homepath/deposit-forecast/internal/domain"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter produces a printable A4 report: summary, assumptions and the month table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

type pdfReport struct {
	pdf    *fpdf.Fpdf
	result *domain.ProjectionResult
}

func (p PDFFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), result: result}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetFooterFunc(func() {
		r.pdf.SetY(-15)
		r.pdf.SetFont("Arial", "I", 8)
		r.pdf.SetTextColor(128, 128, 128)
		r.pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", r.pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	r.addSummaryPage()
	r.addMonthlyTable()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addSummaryPage() {
	s := r.result.Summary
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "House Deposit Forecast", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "", 13)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 8, r.result.Household, "", 1, "C", false, 0, "")
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("%s to %s (%d months)",
		FormatDate(r.result.JourneyStart), FormatDate(r.result.TargetDate), s.Months), "", 1, "C", false, 0, "")
	r.pdf.Ln(8)

	r.drawSectionHeader("Summary")
	widths := []float64{contentWidth * 0.6, contentWidth * 0.4}
	outcome := "Shortfall"
	outcomeValue := FormatCurrency(s.Shortfall)
	if s.GoalReached {
		outcome = "Goal reached"
		outcomeValue = "yes"
		if s.GoalReachedDate != nil {
			outcomeValue = FormatMonth(*s.GoalReachedDate)
		}
	}
	rows := [][]string{
		{"Deposit goal", FormatCurrency(s.DepositGoal)},
		{"Final deposit", FormatCurrency(s.FinalDeposit)},
		{outcome, outcomeValue},
		{"Net income", FormatCurrency(s.TotalNetIncome)},
		{"Expenses", FormatCurrency(s.TotalExpenses)},
		{"Invested", FormatCurrency(s.TotalInvested)},
		{"Broker fees", FormatCurrency(s.TotalBrokerFees)},
		{"Investment growth", FormatCurrency(s.TotalGrowth)},
		{"Loan repayments", FormatCurrency(s.TotalRepayments)},
		{"Final loan balance", FormatCurrency(s.FinalLoanBalance)},
		{"FHSS releasable", FormatCurrency(s.FinalFHSS)},
		{"Lowest cash pool", FormatCurrency(s.LowestCashPool)},
	}
	r.drawTableHeader([]string{"Measure", "Value"}, widths)
	for _, row := range rows {
		r.drawTableRow(row, widths, row[0] == "Final deposit")
	}
	r.pdf.Ln(8)

	r.drawSectionHeader("Key Assumptions")
	assumptions := r.result.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range assumptions {
		r.pdf.MultiCell(contentWidth, 5, "- "+a, "", "L", false)
	}
}

func (r *pdfReport) addMonthlyTable() {
	r.pdf.AddPage()
	r.drawSectionHeader("Month by Month")
	headers := []string{"Month", "Net income", "Expenses", "Surplus", "Cash pool", "Status", "Investments", "Deposit"}
	widths := []float64{22, 24, 24, 22, 24, 20, 22, 22}
	r.drawTableHeader(headers, widths)
	for _, m := range r.result.Months {
		if r.pdf.GetY() > 265 {
			r.pdf.AddPage()
			r.drawTableHeader(headers, widths)
		}
		r.drawTableRow([]string{
			FormatMonth(m.Date),
			m.NetIncome.StringFixed(0),
			m.TotalExpenses.StringFixed(0),
			m.Surplus.StringFixed(0),
			m.CashPool.StringFixed(0),
			string(m.FundStatus),
			m.TotalInvestments.StringFixed(0),
			m.TotalDeposit.StringFixed(0),
		}, widths, m.IsLastMonth)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFont("Arial", "", 9)
	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	}
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
