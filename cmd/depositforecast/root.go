package main

import (
	"errors"
	"io"
	"strings"

	"github.com/homepath/deposit-forecast/internal/calculation"
	"github.com/homepath/deposit-forecast/internal/config"
	"github.com/homepath/deposit-forecast/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var _ calculation.Logger = (*logrus.Logger)(nil)

type rootOptions struct {
	envFile  string
	logLevel string
	settings config.Settings
	logger   *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "depositforecast",
		Short:         "Month-by-month house deposit forecasting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(opts.envFile)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				settings.LogLevel = opts.logLevel
			}
			opts.settings = settings
			opts.logger = newLogger(settings, cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "environment file to load (default .env when present)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newProjectCmd(opts),
		newCompareCmd(opts),
		newExampleCmd(opts),
		newValidateCmd(opts),
		newMarketCmd(opts),
	)
	return cmd
}

// newLogger builds the process logger from settings. Unknown levels fall back to info.
func newLogger(s config.Settings, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if strings.EqualFold(s.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func loadHousehold(path string) (*domain.Household, error) {
	if path == "" {
		return nil, errors.New("a household file is required (--config)")
	}
	return config.NewInputParser().LoadFromFile(path)
}
