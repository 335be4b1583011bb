package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a notebook",
	Long:  `Show a notebook by its ID. Outputs the raw content by default, or the full record with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, ok := store.Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Notebook not found: %s\n", id)
			os.Exit(1)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(nb); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Print(nb.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
