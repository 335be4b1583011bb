package core

import (
	"sort"
	"strings"
)

// SortKey selects the ordering for a derived view.
type SortKey string

const (
	// SortByDate orders by LastModified, most recent first.
	SortByDate SortKey = "date"
	// SortByTitle orders lexicographically by title, ascending.
	SortByTitle SortKey = "title"
)

// SortBy returns a sorted copy of the collection. Ties keep their original
// relative order in both modes, so equal timestamps and duplicate titles are
// deterministic. An unknown key returns the input order unchanged.
// Pure projection: the input slice is never mutated.
func SortBy(notebooks []Notebook, key SortKey) []Notebook {
	out := append([]Notebook(nil), notebooks...)
	switch key {
	case SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastModified.After(out[j].LastModified)
		})
	case SortByTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	}
	return out
}

// Search filters the collection by a case-insensitive substring match against
// the title or any tag. An empty query returns the input unchanged. Matching
// preserves the input ordering; callers sort first, then search, so narrowing
// the query never reorders the notebooks that remain visible.
func Search(notebooks []Notebook, query string) []Notebook {
	if query == "" {
		return notebooks
	}

	q := strings.ToLower(query)
	out := make([]Notebook, 0, len(notebooks))
	for _, n := range notebooks {
		if matches(n, q) {
			out = append(out, n)
		}
	}
	return out
}

func matches(n Notebook, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(n.Title), loweredQuery) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}
