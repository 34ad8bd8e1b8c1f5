package main

import (
	"fmt"

	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newMarketCmd(root *rootOptions) *cobra.Command {
	var (
		symbols      []string
		configPath   string
		fallbackRate string
	)
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Fetch a live market snapshot and print it as YAML",
		Long: `Fetches the latest price and a trailing compound annual growth rate for each
symbol. The output can be pasted into the market section of a household file.`,
		Example: `  depositforecast market --symbols VAS.AU,VGS.AU
  depositforecast market -c household.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := domain.MarketSnapshot{}
			if configPath != "" {
				h, err := loadHousehold(configPath)
				if err != nil {
					return err
				}
				base = h.Market
				if len(symbols) == 0 {
					symbols = h.Symbols()
				}
			}
			if fallbackRate != "" {
				rate, err := decimal.NewFromString(fallbackRate)
				if err != nil {
					return fmt.Errorf("invalid --fallback-rate %q: %w", fallbackRate, err)
				}
				base.FallbackGrowthRate = rate
			}
			if len(symbols) == 0 {
				return fmt.Errorf("no symbols given (--symbols or --config)")
			}

			snap, err := liveSnapshot(cmd.Context(), root, symbols, base)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(map[string]domain.MarketSnapshot{"market": snap}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringSliceVar(&symbols, "symbols", nil, "comma separated symbols (e.g. VAS.AU,VGS.AU)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "household file supplying symbols and the fallback rate")
	cmd.Flags().StringVar(&fallbackRate, "fallback-rate", "", "annual growth rate used when history is unavailable")
	return cmd
}
