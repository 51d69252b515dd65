package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/icons"
	"github.com/llehouerou/showcase/internal/logging"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Marketing site content server and section preview",
	Long: `showcase stores the services, industries and pages of a marketing site,
serves them over a JSON API with an admin surface, and previews any page in
the terminal with its carousels running.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		icons.Init(cfg.Icons)

		opts := logging.Options{
			Level:   cfg.Log.Level,
			File:    cfg.Log.File,
			Verbose: verbose,
		}
		// The preview owns the terminal; stderr output would corrupt it.
		if cmd == previewCmd && opts.File == "" {
			logger = zap.NewNop()
			return nil
		}
		logger, err = logging.New(opts)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/showcase/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, previewCmd, seedCmd, listCmd, industryCmd, reorderCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
