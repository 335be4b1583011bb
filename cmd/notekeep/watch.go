package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neuronex/notekeep"
	lifecycleadapter "github.com/neuronex/notekeep/pkg/adapters/lifecycle"
	"github.com/neuronex/notekeep/pkg/core"
	"github.com/spf13/cobra"
)

var watchPattern string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the store file for external changes",
	Long: `Watch observes the store file and prints an event for every notebook
created, modified, or deleted by another process. Only the fs adapter
supports watching. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}

		adapter, err := notekeep.Init(cfg.StorePath,
			notekeep.WithAdapter(cfg.Adapter),
			notekeep.WithFormat(cfg.Format),
			notekeep.WithAutoInit(true),
			notekeep.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to open adapter", err)
		}

		watchable, ok := adapter.(core.Watchable)
		if !ok {
			fmt.Fprintf(os.Stderr, "Adapter %q does not support watching\n", cfg.Adapter)
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := watchable.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watch", err)
		}

		// Run the feed through the lifecycle bridge so the watch loop is a
		// managed source; the bridge closes its channel when the feed ends.
		src := lifecycleadapter.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Println("Watching for changes (Ctrl+C to stop)...")
		for {
			select {
			case evt, ok := <-src.Events():
				if !ok {
					return
				}
				if e, isNotebook := evt.(core.Event); isNotebook {
					ts := time.Unix(e.Timestamp, 0).Format(time.RFC3339)
					fmt.Printf("%s  %-6s  %s\n", ts, e.Type, e.ID)
				}
			case <-sig:
				cancel()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*", "Glob pattern of notebook IDs to report")
}
