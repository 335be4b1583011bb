package core_test

import (
	"testing"
	"time"

	"github.com/neuronex/notekeep/pkg/core"
)

func titles(notebooks []core.Notebook) []string {
	out := make([]string, len(notebooks))
	for i, n := range notebooks {
		out[i] = n.Title
	}
	return out
}

func TestSortBy(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	collection := []core.Notebook{
		{ID: "1", Title: "Zeta", LastModified: base},
		{ID: "2", Title: "Alpha", LastModified: base.Add(time.Hour)},
		{ID: "3", Title: "Mid", LastModified: base.Add(30 * time.Minute)},
	}

	t.Run("Date Descending", func(t *testing.T) {
		got := titles(core.SortBy(collection, core.SortByDate))
		want := []string{"Alpha", "Mid", "Zeta"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("date sort: got %v, want %v", got, want)
			}
		}
	})

	t.Run("Title Ascending", func(t *testing.T) {
		got := titles(core.SortBy(collection, core.SortByTitle))
		want := []string{"Alpha", "Mid", "Zeta"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("title sort: got %v, want %v", got, want)
			}
		}
	})

	t.Run("Equal Timestamps Keep Original Order", func(t *testing.T) {
		tied := []core.Notebook{
			{ID: "a", Title: "First", LastModified: base},
			{ID: "b", Title: "Second", LastModified: base},
			{ID: "c", Title: "Third", LastModified: base},
		}
		got := titles(core.SortBy(tied, core.SortByDate))
		want := []string{"First", "Second", "Third"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("stable tie-break violated: got %v", got)
			}
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		_ = core.SortBy(collection, core.SortByTitle)
		if collection[0].Title != "Zeta" {
			t.Error("SortBy mutated its input")
		}
	})
}

func TestSearch(t *testing.T) {
	collection := []core.Notebook{
		{Title: "Zeta", Tags: []string{"cs"}},
		{Title: "Alpha", Tags: []string{"python"}},
	}

	t.Run("Matches Title Case-Insensitively", func(t *testing.T) {
		got := core.Search(collection, "alPHA")
		if len(got) != 1 || got[0].Title != "Alpha" {
			t.Fatalf("expected [Alpha], got %v", titles(got))
		}
	})

	t.Run("Matches Any Tag", func(t *testing.T) {
		got := core.Search(collection, "cs")
		if len(got) != 1 || got[0].Title != "Zeta" {
			t.Fatalf("expected [Zeta], got %v", titles(got))
		}
	})

	t.Run("Empty Query Returns Input Unchanged", func(t *testing.T) {
		got := core.Search(collection, "")
		if len(got) != 2 || got[0].Title != "Zeta" {
			t.Fatalf("expected passthrough, got %v", titles(got))
		}
	})

	t.Run("No Match", func(t *testing.T) {
		if got := core.Search(collection, "rust"); len(got) != 0 {
			t.Fatalf("expected empty result, got %v", titles(got))
		}
	})
}

// Sort first, then search: narrowing the query must never change the relative
// order of the notebooks that stay visible.
func TestSortSearchComposition(t *testing.T) {
	collection := []core.Notebook{
		{Title: "Zeta", Tags: []string{"cs"}},
		{Title: "Alpha", Tags: []string{"python"}},
	}

	sorted := core.SortBy(collection, core.SortByTitle)
	got := titles(sorted)
	if got[0] != "Alpha" || got[1] != "Zeta" {
		t.Fatalf("title sort: got %v, want [Alpha Zeta]", got)
	}

	filtered := core.Search(sorted, "cs")
	if len(filtered) != 1 || filtered[0].Title != "Zeta" {
		t.Fatalf("search on sorted: got %v, want [Zeta]", titles(filtered))
	}
}
