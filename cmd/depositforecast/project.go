package main

import (
	"context"
	"fmt"
	"time"

	"github.com/homepath/deposit-forecast/internal/calculation"
	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/homepath/deposit-forecast/internal/market"
	"github.com/homepath/deposit-forecast/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type projectOptions struct {
	configPath string
	format     string
	outputDir  string
	start      string
	target     string
	debug      bool
	live       bool
}

func newProjectCmd(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the deposit from the journey start to the target date",
		Example: `  depositforecast project -c household.yaml
  depositforecast project -c household.yaml -f pdf -o reports/
  depositforecast project -c household.toml --start 2025-09-25 --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := loadHousehold(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyDateOverrides(h, opts.start, opts.target); err != nil {
				return err
			}

			engine := calculation.NewProjectionEngine()
			engine.SetLogger(root.logger)
			engine.Debug = opts.debug
			if opts.debug {
				root.logger.SetLevel(logrus.DebugLevel)
			}

			var snapshot calculation.MarketData
			if opts.live {
				snap, err := liveSnapshot(cmd.Context(), root, h.Symbols(), h.Market)
				if err != nil {
					return err
				}
				snapshot = snap
			}

			result, err := engine.Project(h, snapshot)
			if err != nil {
				return err
			}
			result.Assumptions = output.GenerateAssumptions(h)
			return writeProjection(cmd, result, opts.format, opts.outputDir)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "household file (yaml, json or toml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "output format: console, json, csv, chart, pdf or all")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for written reports (console prints to stdout)")
	cmd.Flags().StringVar(&opts.start, "start", "", "journey start date override (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.target, "target", "", "target date override (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log one line per simulated month")
	cmd.Flags().BoolVar(&opts.live, "live-market", false, "refresh prices and growth rates from the market data API")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func applyDateOverrides(h *domain.Household, start, target string) error {
	if start != "" {
		d, err := time.Parse(dateLayout, start)
		if err != nil {
			return fmt.Errorf("invalid --start %q: %w", start, err)
		}
		h.JourneyStart = &d
	}
	if target != "" {
		d, err := time.Parse(dateLayout, target)
		if err != nil {
			return fmt.Errorf("invalid --target %q: %w", target, err)
		}
		h.Deposit.TargetDate = d
	}
	return nil
}

// writeProjection prints console output, and writes every other format to a file.
func writeProjection(cmd *cobra.Command, result *domain.ProjectionResult, format, dir string) error {
	if output.NormalizeFormatName(format) == "console" && dir == "" {
		data, err := output.ConsoleFormatter{}.Format(result)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	paths, err := output.GenerateReport(result, format, dir)
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
	}
	return err
}

func liveSnapshot(ctx context.Context, root *rootOptions, symbols []string, base domain.MarketSnapshot) (domain.MarketSnapshot, error) {
	if root.settings.APIKey == "" {
		return domain.MarketSnapshot{}, fmt.Errorf("EODHD_API_KEY is not set")
	}
	clientOpts := []market.ClientOption{market.WithLogger(root.logger)}
	if root.settings.BaseURL != "" {
		clientOpts = append(clientOpts, market.WithBaseURL(root.settings.BaseURL))
	}
	builder := market.NewSnapshotBuilder(market.NewClient(root.settings.APIKey, clientOpts...), base.FallbackGrowthRate)
	builder.Cache = market.NewCache(market.DefaultCacheTTL)
	builder.Logger = root.logger

	snap, err := builder.BuildSnapshot(ctx, symbols)
	if err != nil {
		return domain.MarketSnapshot{}, err
	}
	// keep configured quotes for symbols the API could not serve
	for s, q := range base.Symbols {
		if _, ok := snap.Symbols[s]; !ok {
			snap = snap.WithQuote(s, q)
		}
	}
	return snap, nil
}
