// Package stats accumulates per-extension line totals and renders the final
// report.
package stats

import (
	"fmt"
	"io"
)

// ExtensionStats holds the running totals for one extension.
type ExtensionStats struct {
	Lines int
	Files int
}

// Summary aggregates counts per extension. Entries are created zero-valued on
// first sight and only ever grow; first-seen order is kept for reporting.
type Summary struct {
	byExt map[string]*ExtensionStats
	order []string
}

func NewSummary() *Summary {
	return &Summary{byExt: make(map[string]*ExtensionStats)}
}

// Add records one file with the given extension and line count.
func (s *Summary) Add(ext string, lines int) {
	entry, ok := s.byExt[ext]
	if !ok {
		entry = &ExtensionStats{}
		s.byExt[ext] = entry
		s.order = append(s.order, ext)
	}
	entry.Files++
	entry.Lines += lines
}

// Stats returns the totals recorded for ext.
func (s *Summary) Stats(ext string) (ExtensionStats, bool) {
	entry, ok := s.byExt[ext]
	if !ok {
		return ExtensionStats{}, false
	}
	return *entry, true
}

// WriteReport prints one line per extension and the grand total. With no
// recorded files only the header and the zero-valued footer are printed.
func (s *Summary) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "Total lines in files by extension:")
	totalLines, totalFiles := 0, 0
	for _, ext := range s.order {
		entry := s.byExt[ext]
		fmt.Fprintf(w, "  %s: %d %s in %d %s\n",
			ext,
			entry.Lines, plural(entry.Lines, "line"),
			entry.Files, plural(entry.Files, "file"),
		)
		totalLines += entry.Lines
		totalFiles += entry.Files
	}
	fmt.Fprintf(w, "Total lines in all %d %s: %d.\n", totalFiles, plural(totalFiles, "file"), totalLines)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
