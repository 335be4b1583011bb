package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage a notebook's tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add [id] [tag]",
	Short: "Add a tag to a notebook",
	Long: `Add a tag to a notebook's tag set. The tag is trimmed of surrounding
whitespace; adding a tag the notebook already has is a no-op.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, tag := args[0], args[1]

		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, err := store.AddTag(context.Background(), id, tag)
		if err != nil {
			fatal("Failed to add tag", err)
		}

		fmt.Printf("Tags for %s: %s\n", nb.ID, strings.Join(nb.Tags, ", "))
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm [id] [tag]",
	Short: "Remove a tag from a notebook",
	Long:  `Remove a tag from a notebook's tag set. Removing a tag that is not present is a no-op.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, tag := args[0], args[1]

		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, err := store.RemoveTag(context.Background(), id, tag)
		if err != nil {
			fatal("Failed to remove tag", err)
		}

		fmt.Printf("Tags for %s: %s\n", nb.ID, strings.Join(nb.Tags, ", "))
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)
}
