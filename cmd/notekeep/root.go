package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/neuronex/notekeep"
	"github.com/neuronex/notekeep/internal/config"
	"github.com/neuronex/notekeep/pkg/core"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storePath   string
	adapterName string
	storeFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notekeep",
	Short: "A single-user notebook store with derived views and AI augmentation",
	Long: `Notekeep keeps a personal collection of study notebooks in a local store.
Every mutation persists the full collection before it becomes visible, so the
file on disk and what you see never drift apart.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Store path (default: config, then XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&adapterName, "adapter", "", "Persistence adapter: fs or badger (default: config)")
	rootCmd.PersistentFlags().StringVar(&storeFormat, "format", "", "On-disk format for the fs adapter: json or yaml (default: config)")
}

// loadConfig merges the config file with command-line overrides.
// Flags win over the file; the file wins over defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if adapterName != "" {
		cfg.Adapter = adapterName
	}
	if storeFormat != "" {
		cfg.Format = storeFormat
	}
	return cfg, cfg.Validate()
}

// openStore assembles the notebook store from config and flags.
func openStore(ctx context.Context) (*core.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return notekeep.Open(ctx, cfg.StorePath,
		notekeep.WithAdapter(cfg.Adapter),
		notekeep.WithFormat(cfg.Format),
		notekeep.WithAutoInit(true),
		notekeep.WithLogger(slog.Default()),
	)
}
