package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/homepath/deposit-forecast/internal/calculation"
	"github.com/shopspring/decimal"
)

// print_prorate lays out a journey's months with their proration factors and,
// optionally, a stepped income schedule across them.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: print_prorate <start YYYY-MM-DD> <target YYYY-MM-DD> [current target intervalMonths [paymentDay]]")
		return
	}
	start, err := time.Parse("2006-01-02", os.Args[1])
	if err != nil {
		panic(err)
	}
	target, err := time.Parse("2006-01-02", os.Args[2])
	if err != nil {
		panic(err)
	}

	var (
		stepped          bool
		current, goal    decimal.Decimal
		interval, payDay int
	)
	if len(os.Args) >= 6 {
		stepped = true
		current = decimal.RequireFromString(os.Args[3])
		goal = decimal.RequireFromString(os.Args[4])
		if interval, err = strconv.Atoi(os.Args[5]); err != nil {
			panic(err)
		}
		payDay = 1
		if len(os.Args) >= 7 {
			if payDay, err = strconv.Atoi(os.Args[6]); err != nil {
				panic(err)
			}
		}
	}

	plan := calculation.BuildJourneyPlan(start, target)
	fmt.Printf("Journey %s to %s: %d months\n", start.Format("2006-01-02"), target.Format("2006-01-02"), plan.Len())
	for _, p := range plan.Months {
		fmt.Printf("%3d %s  %s..%s  days=%2d factor=%s year=%s",
			p.Index, p.Month.Format("Jan 2006"), p.Start.Format("02"), p.End.Format("02"),
			p.DaysInMonth, p.Factor.StringFixed(4), p.IncomeYear())
		if stepped {
			v := calculation.SteppedValue(current, goal, interval, plan.Len(), p.Index)
			fmt.Printf("  stepped=%s paid=%t", v.StringFixed(2), calculation.PaysInPeriod(p, payDay))
		}
		fmt.Println()
	}
}
