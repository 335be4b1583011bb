package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a notebook",
	Long:  `Delete permanently removes a notebook from the store. There is no trash or undo.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		if err := store.Delete(context.Background(), id); err != nil {
			fatal("Failed to delete notebook", err)
		}

		fmt.Printf("Notebook deleted: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
