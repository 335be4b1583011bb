package main

import (
	"context"
	"fmt"
	"os"

	"github.com/neuronex/notekeep/pkg/core"
	"github.com/spf13/cobra"
)

var (
	editTitle       string
	editContent     string
	editContentFile string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a notebook's title or content",
	Long: `Edit applies the given fields to a notebook. Fields you do not pass
stay unchanged; the notebook's modification time is refreshed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		var patch core.Patch
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &editContent
		}
		if editContentFile != "" {
			raw, err := os.ReadFile(editContentFile)
			if err != nil {
				fatal("Failed to read content file", err)
			}
			content := string(raw)
			patch.Content = &content
		}

		if patch.Title == nil && patch.Content == nil {
			fmt.Fprintln(os.Stderr, "Nothing to change: pass --title, --content, or --content-file")
			os.Exit(1)
		}

		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, err := store.Update(context.Background(), id, patch)
		if err != nil {
			fatal("Failed to update notebook", err)
		}

		fmt.Printf("Updated notebook %s (%s)\n", nb.ID, nb.Title)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
	editCmd.Flags().StringVar(&editContentFile, "content-file", "", "Read new content from a file")
}
