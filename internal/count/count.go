// Package count reads files and counts their line records.
package count

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// Lines returns the number of lines in the file at path. A line is whatever a
// text-line reader yields as one record: a final line without a terminator
// still counts, and an empty file has zero lines.
func Lines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return readLines(f)
}

// readLines counts with bufio.Reader rather than bufio.Scanner so lines
// longer than the scanner's token limit are still counted correctly.
func readLines(r io.Reader) (int, error) {
	reader := bufio.NewReader(r)
	lines := 0
	for {
		chunk, err := reader.ReadString('\n')
		if len(chunk) > 0 {
			lines++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return 0, err
		}
	}
}
