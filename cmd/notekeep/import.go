package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a text file as a new notebook",
	Long: `Import reads a plain-text file and creates a notebook from it.
The notebook title is the file name without its extension, and the notebook
is tagged "Imported". Files that are not valid UTF-8 text are rejected.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		raw, err := os.ReadFile(path)
		if err != nil {
			fatal("Failed to read file", err)
		}

		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, err := store.Import(context.Background(), filepath.Base(path), string(raw))
		if err != nil {
			fatal("Failed to import", err)
		}

		fmt.Printf("Imported %s as notebook %s (%s)\n", path, nb.ID, nb.Title)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
