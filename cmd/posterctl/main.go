package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/poster-atlas/site/catalog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "posterctl",
		Short: "Inspect and query a railway poster dataset",
		Long: `posterctl loads a poster dataset the same way the site does and runs
checks and filter queries against it from the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			zap.ReplaceGlobals(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	dataSource := os.Getenv("POSTERS_DATA")
	if dataSource == "" {
		dataSource = "data.json"
	}
	root.PersistentFlags().StringVar(&dataSource, "data", dataSource, "dataset file path or http(s) URL")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	load := func(ctx context.Context) (*catalog.Catalog, error) {
		c := catalog.New(dataSource)
		if err := c.Load(ctx); err != nil {
			return nil, err
		}
		return c, nil
	}

	root.AddCommand(
		newCheckCmd(load),
		newOptionsCmd(load),
		newSearchCmd(load),
		newGenCmd(),
	)
	return root
}

type loader func(ctx context.Context) (*catalog.Catalog, error)
