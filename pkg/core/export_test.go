package core_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/neuronex/notekeep/pkg/core"
)

func TestExport(t *testing.T) {
	n := core.Notebook{
		Title:        "Graph Theory",
		Content:      "Adjacency lists beat matrices for sparse graphs.",
		LastModified: time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC),
	}

	got := string(core.Export(n))
	want := fmt.Sprintf("Title: Graph Theory\nDate: %s\n\nAdjacency lists beat matrices for sparse graphs.",
		n.LastModified.Format("1/2/2006"))
	if got != want {
		t.Errorf("export layout mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Graph Theory", "Graph_Theory.txt"},
		{"  spaced   out  ", "_spaced_out_.txt"},
		{"single", "single.txt"},
		{"", "Untitled.txt"},
		{"tabs\tand\nnewlines", "tabs_and_newlines.txt"},
	}

	for _, tc := range cases {
		got := core.ExportFilename(core.Notebook{Title: tc.title})
		if got != tc.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
