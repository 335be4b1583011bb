package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new notebook",
	Long:  `Create a new notebook with an optional title. Without a title the notebook is created as "Untitled Notebook".`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := ""
		if len(args) > 0 {
			title = args[0]
		}

		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, err := store.Create(context.Background(), title)
		if err != nil {
			fatal("Failed to create notebook", err)
		}

		fmt.Printf("Created notebook %s (%s)\n", nb.ID, nb.Title)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
