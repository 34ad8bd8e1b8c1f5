package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartFormatter renders the deposit path as a PNG line chart.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string      { return "chart" }
func (c ChartFormatter) Extension() string { return "png" }

// Format draws four series: total deposit, cash pool, investments and the goal.
func (c ChartFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	months := result.Months
	if len(months) < 2 {
		return nil, fmt.Errorf("need at least 2 months to chart, got %d", len(months))
	}

	xValues := make([]time.Time, len(months))
	depositY := make([]float64, len(months))
	cashY := make([]float64, len(months))
	investY := make([]float64, len(months))
	goalY := make([]float64, len(months))
	goal := result.Summary.DepositGoal.InexactFloat64()

	for i, m := range months {
		xValues[i] = m.PeriodEnd
		depositY[i] = m.TotalDeposit.InexactFloat64()
		cashY[i] = m.CashPool.InexactFloat64()
		investY[i] = m.TotalInvestments.InexactFloat64()
		goalY[i] = goal
	}

	depositSeries := chart.TimeSeries{
		Name: "Total Deposit",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: depositY,
	}
	cashSeries := chart.TimeSeries{
		Name: "Cash Pool",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("16a34a"),
			StrokeWidth: 1.5,
		},
		XValues: xValues,
		YValues: cashY,
	}
	investSeries := chart.TimeSeries{
		Name: "Investments",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("f59e0b"),
			StrokeWidth: 1.5,
		},
		XValues: xValues,
		YValues: investY,
	}
	goalSeries := chart.TimeSeries{
		Name: "Deposit Goal",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: goalY,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Deposit Path: %s", result.Household),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{depositSeries, cashSeries, investSeries, goalSeries},
	}
	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
