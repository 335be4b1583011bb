package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/neuronex/notekeep/pkg/core"
	"github.com/spf13/cobra"
)

var (
	listJSON   bool
	listSort   string
	listSearch string
	filterTag  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notebooks",
	Long: `List notebooks as a derived view over the collection: sorted first,
then narrowed by the search query. Neither step changes the stored order.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore(context.Background())
		if err != nil {
			fatal("Failed to open store", err)
		}

		view := core.Search(core.SortBy(store.List(), core.SortKey(listSort)), listSearch)

		if filterTag != "" {
			filtered := make([]core.Notebook, 0, len(view))
			for _, nb := range view {
				if nb.HasTag(filterTag) {
					filtered = append(filtered, nb)
				}
			}
			view = filtered
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(view); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, nb := range view {
			tags := ""
			if len(nb.Tags) > 0 {
				tags = fmt.Sprintf(" %v", nb.Tags)
			}
			fmt.Printf("%s  %s%s\n", nb.ID, nb.Title, tags)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listSort, "sort", "date", "Sort order: date or title")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by title or tag substring")
	listCmd.Flags().StringVar(&filterTag, "tag", "", "Filter by exact tag")
}
