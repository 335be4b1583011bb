package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/neuronex/notekeep/pkg/augment"
	"github.com/spf13/cobra"
)

// inflight refuses concurrent requests for the same notebook. A one-shot CLI
// invocation can never collide with itself; the guard matters only when the
// command is driven in-process (scripted via Execute or future long-lived
// modes), so it lives here rather than in each caller.
var inflight = augment.NewInflight()

// augmentCmd represents the augment command
var augmentCmd = &cobra.Command{
	Use:   "augment [explain|summarize|quiz] [id]",
	Short: "Generate AI-derived text for a notebook",
	Long: `Augment sends a notebook's title or content to the configured
completion provider and prints the result. Configure the provider via the
augment section of the config file or NOTEKEEP_AUGMENT_API_KEY. The result
is display-only; the notebook itself is never modified.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kind, id := augment.Kind(args[0]), args[1]

		cfg, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}

		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, ok := store.Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Notebook not found: %s\n", id)
			os.Exit(1)
		}

		completer, err := augment.NewOpenAICompleter(augment.OpenAIConfig{
			APIKey:  cfg.Augment.APIKey,
			Model:   cfg.Augment.Model,
			BaseURL: cfg.Augment.BaseURL,
		}, slog.Default())
		if err != nil {
			if errors.Is(err, augment.ErrUnconfigured) {
				fmt.Fprintln(os.Stderr, "No augmentation provider configured: set augment.api_key or NOTEKEEP_AUGMENT_API_KEY")
				os.Exit(1)
			}
			fatal("Failed to build provider", err)
		}

		gateway := augment.NewGateway(completer, slog.Default())

		if !inflight.Begin(nb.ID) {
			fmt.Fprintf(os.Stderr, "An augmentation for %s is already in flight\n", nb.ID)
			os.Exit(1)
		}
		defer inflight.End(nb.ID)

		text, err := gateway.Augment(context.Background(), kind, augment.Snapshot{
			Title:   nb.Title,
			Content: nb.Content,
		})
		if err != nil {
			fatal("Augmentation failed", err)
		}

		fmt.Println(text)
	},
}

func init() {
	rootCmd.AddCommand(augmentCmd)
}
