package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/neuronex/notekeep/pkg/core"
	"github.com/spf13/cobra"
)

var exportDir string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a notebook as a plain-text file",
	Long: `Export writes a notebook to a .txt file with a small header (title
and date) followed by the content. The file name is derived from the title.`,
	Args: cobra.ExactArgs(1),
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

		path := filepath.Join(exportDir, core.ExportFilename(nb))
		if err := os.WriteFile(path, core.Export(nb), 0o644); err != nil {
			fatal("Failed to write export file", err)
		}

		fmt.Printf("Exported notebook to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "Directory to write the export file into")
}
