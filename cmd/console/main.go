package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erp/console/internal/application/seed"
	"github.com/erp/console/internal/infrastructure/api"
	"github.com/erp/console/internal/infrastructure/config"
	"github.com/erp/console/internal/infrastructure/logger"
	"github.com/erp/console/internal/interfaces/tui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger and API client shared by
// every subcommand.
func setup() (*config.Config, *zap.Logger, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = cfg.Log.Output
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building logger: %w", err)
	}
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, log)
	return cfg, log, client, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "console",
		Short:         "Terminal console for the lumber ERP backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, client, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			log.Info("starting console",
				zap.String("version", version),
				zap.String("api", cfg.API.BaseURL))
			return tui.Run(client, log)
		},
	}
	root.AddCommand(newSeedCmd())
	return root
}

func newSeedCmd() *cobra.Command {
	var count int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo data in the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, client, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := seed.Run(ctx, client, log, count); err != nil {
				return err
			}
			log.Info("seeding finished", zap.Int("count", count))
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 5, "rows to create per collection")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall seeding deadline")
	return cmd
}
