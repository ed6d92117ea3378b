// Package cli parses the count_lines argument grammar into a scan
// configuration.
package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"count-lines/internal/scan"
)

// ErrHelp is returned when --help appears anywhere in the arguments. The
// caller prints the usage text and exits 0 without scanning anything.
var ErrHelp = errors.New("help requested")

const usageText = `Usage: count_lines [EXTENSION]... [OPTION]...

Count lines in files by extension in a directory recursively.

With no EXTENSION, all files with extension are included.
EXTENSION example: .txt .cs.

  -e, --exclude  exclude all files whose full name contains the specified value
  -p, --path     search path, current directory is default

Examples:
  count_lines .js .ts -e .vs/  Count lines in .js and .ts files, exclude named
                               with '.vs/'.
  count_lines                  Count lines in files by extension in current
                               directory recursively.
`

// Usage returns the full usage text.
func Usage() string { return usageText }

const hintLine = "Try 'count_lines --help' for more information."

// UsageError describes a rejected command line. Message is what the user sees
// after the "Error: " prefix; Hint is an optional extra line.
type UsageError struct {
	Message string
	Hint    string
}

func (e *UsageError) Error() string { return e.Message }

// ExitCode marks usage errors as exit-1 failures for the top-level dispatch.
func (e *UsageError) ExitCode() int { return 1 }

// Parse consumes the raw argument vector and produces a scan configuration.
// Tokens are handled left to right: -e/--exclude and -p/--path consume the
// following token, -p last occurrence wins, and every other non-option token
// must be a valid extension. Duplicate extensions are silently ignored,
// keeping first-occurrence order.
func Parse(args []string) (scan.Config, error) {
	// --help short-circuits everything else, even tokens that would
	// otherwise be rejected first.
	if slices.Contains(args, "--help") {
		return scan.Config{}, ErrHelp
	}

	cfg := scan.Config{Path: "."}
	seen := make(map[string]bool)
	for i := 0; i < len(args); i++ {
		token := args[i]
		switch {
		case token == "-e" || token == "--exclude":
			if i+1 >= len(args) {
				return scan.Config{}, &UsageError{Message: "Parameter -e requires a value."}
			}
			i++
			cfg.Excludes = append(cfg.Excludes, args[i])
		case token == "-p" || token == "--path":
			if i+1 >= len(args) {
				return scan.Config{}, &UsageError{Message: "Parameter -p requires a value."}
			}
			i++
			cfg.Path = args[i]
		case strings.HasPrefix(token, "-"):
			return scan.Config{}, &UsageError{
				Message: fmt.Sprintf("Unknown option '%s'.", token),
				Hint:    hintLine,
			}
		default:
			if !ValidExtension(token) {
				return scan.Config{}, &UsageError{
					Message: fmt.Sprintf("Invalid extension '%s'.", token),
					Hint:    hintLine,
				}
			}
			if !seen[token] {
				seen[token] = true
				cfg.Extensions = append(cfg.Extensions, token)
			}
		}
	}
	return cfg, nil
}

// ValidExtension reports whether token is a leading dot followed by one or
// more ASCII alphanumerics. Matching is case-sensitive and nothing is
// normalized.
func ValidExtension(token string) bool {
	if len(token) < 2 || token[0] != '.' {
		return false
	}
	for i := 1; i < len(token); i++ {
		c := token[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
