package main

import (
	"fmt"
	"time"

	"github.com/homepath/deposit-forecast/internal/calculation"
	"github.com/homepath/deposit-forecast/internal/output"
	"github.com/spf13/cobra"
)

func newCompareCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		targets    []string
		format     string
		start      string
	)
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Compare the final deposit across several target dates",
		Example: `  depositforecast compare -c household.yaml --targets 2026-06-30,2027-06-30,2028-06-30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := loadHousehold(configPath)
			if err != nil {
				return err
			}
			if err := applyDateOverrides(h, start, ""); err != nil {
				return err
			}
			dates := make([]time.Time, 0, len(targets))
			for _, t := range targets {
				d, err := time.Parse(dateLayout, t)
				if err != nil {
					return fmt.Errorf("invalid target %q: %w", t, err)
				}
				dates = append(dates, d)
			}
			if len(dates) == 0 {
				dates = append(dates, h.Deposit.TargetDate)
			}

			engine := calculation.NewProjectionEngine()
			engine.SetLogger(root.logger)
			rows, err := engine.CompareTargetDates(cmd.Context(), h, nil, dates)
			if err != nil {
				return err
			}
			data, err := output.FormatComparison(rows, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "household file (yaml, json or toml)")
	cmd.Flags().StringSliceVar(&targets, "targets", nil, "comma separated target dates (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, csv or json")
	cmd.Flags().StringVar(&start, "start", "", "journey start date override (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
