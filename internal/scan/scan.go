// Package scan walks a directory tree and selects the files a count should
// cover.
package scan

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// Config carries the settings for one scan. It is built once from the command
// line and immutable afterwards.
type Config struct {
	// Path is the root of the tree to walk.
	Path string
	// Extensions is the include set, in first-seen order. Empty means every
	// file that has an extension is counted.
	Extensions []string
	// Excludes are literal substrings matched against the full file path.
	Excludes []string
}

// Files walks cfg.Path recursively and calls visit once for every file that
// passes the filters. Hidden files and directories are traversed like any
// other. The first error, from the walk or from visit, aborts the scan.
func Files(cfg Config, visit func(path, ext string) error) error {
	return filepath.WalkDir(cfg.Path, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}

		// Extension runs from the last dot; a bare name or a trailing dot
		// means the file has none and is always skipped.
		ext := filepath.Ext(entry.Name())
		if ext == "" || ext == "." {
			return nil
		}
		if len(cfg.Extensions) > 0 && !slices.Contains(cfg.Extensions, ext) {
			return nil
		}
		if excluded(path, cfg.Excludes) {
			return nil
		}
		return visit(path, ext)
	})
}

// excluded reports whether path contains any exclude pattern. The match is a
// raw substring test, not segment-aware: excluding "vs" also drops
// "devs.txt".
func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
