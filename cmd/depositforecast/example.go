package main

import (
	"fmt"

	"github.com/homepath/deposit-forecast/internal/config"
	"github.com/spf13/cobra"
)

func newExampleCmd(root *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example household file (yaml or toml by extension)",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), out); err != nil {
				return err
			}
			root.logger.WithField("file", out).Debug("example configuration written")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "household.yaml", "file to write")
	return cmd
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate a household file",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := loadHousehold(configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d people, %d income sources, %d budget items\n",
				h.Name, len(h.People), len(h.IncomeSources), len(h.Deposit.Budget))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "household file (yaml, json or toml)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
