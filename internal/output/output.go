// Package output serializes generated matrices and session lists into the
// forms CI consumes: one JSON document per invocation, GitHub Actions
// output-file lines, and a human-readable console report.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"qactl/internal/color"
	"qactl/internal/matrix"
)

// Document maps a test-kind name to its generated matrix entries. JSON
// serialization of a Document is deterministic: encoding/json emits map
// keys in sorted order, and the entry lists are already ordered by the
// generator.
type Document map[string][]matrix.Entry

// BuildDocument assembles the per-kind matrices into one document.
func BuildDocument(matrices map[matrix.Kind][]matrix.Entry) Document {
	doc := make(Document, len(matrices))
	for kind, entries := range matrices {
		doc[string(kind)] = entries
	}
	return doc
}

// kinds returns the document's test-kind names in sorted order.
func (d Document) kinds() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteJSON writes the whole document as a single JSON object to path.
func WriteJSON(path string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling matrix document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing matrix document to %s: %w", path, err)
	}
	return nil
}

// AppendGitHubOutput appends one "<kind>=<json>" line per test kind to the
// given GitHub Actions output file.
func AppendGitHubOutput(path string, doc Document) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening GitHub output file %s: %w", path, err)
	}
	defer f.Close()
	for _, name := range doc.kinds() {
		data, err := json.Marshal(doc[name])
		if err != nil {
			return fmt.Errorf("marshaling %s matrix: %w", name, err)
		}
		if _, err := fmt.Fprintf(f, "%s=%s\n", name, data); err != nil {
			return fmt.Errorf("writing GitHub output: %w", err)
		}
	}
	return nil
}

// RenderReport writes the human-readable matrix listing, one section per
// test kind in sorted order.
func RenderReport(w io.Writer, doc Document) {
	for _, name := range doc.kinds() {
		entries := doc[name]
		fmt.Fprintf(w, "%s %s\n",
			color.HeadingStyle.Render(name),
			color.MutedStyle.Render(fmt.Sprintf("(%d)", len(entries))))
		for _, entry := range entries {
			if entry.Skip {
				fmt.Fprintf(w, "  %s %s\n",
					color.WarningStyle.Render("skipped:"),
					entry.SkipReason)
				continue
			}
			if entry.Companion == nil {
				fmt.Fprintf(w, "  %s\n", entry.Runtime)
				continue
			}
			fmt.Fprintf(w, "  %s + %s\n", entry.Runtime, entry.Companion)
		}
	}
}
