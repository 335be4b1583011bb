package core

import (
	"fmt"
	"regexp"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Export renders a notebook as a plain-text byte sequence:
//
//	Title: <title>
//	Date: <date>
//
//	<content>
func Export(n Notebook) []byte {
	date := n.LastModified.Format("1/2/2006")
	return []byte(fmt.Sprintf("Title: %s\nDate: %s\n\n%s", n.Title, date, n.Content))
}

// ExportFilename derives a download filename from the notebook title:
// whitespace runs become underscores and a .txt suffix is appended.
func ExportFilename(n Notebook) string {
	title := n.Title
	if title == "" {
		title = "Untitled"
	}
	return whitespaceRe.ReplaceAllString(title, "_") + ".txt"
}
