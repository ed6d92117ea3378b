package count

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLinesEmptyFile(t *testing.T) {
	got, err := Lines(writeFile(t, ""))
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if got != 0 {
		t.Fatalf("empty file counted as %d lines, want 0", got)
	}
}

func TestLinesSingleNewline(t *testing.T) {
	got, err := Lines(writeFile(t, "\n"))
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("lone newline counted as %d lines, want 1", got)
	}
}

func TestLinesUnterminatedFinalLine(t *testing.T) {
	got, err := Lines(writeFile(t, "alpha\nbeta"))
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if got != 2 {
		t.Fatalf("unterminated final line counted as %d lines, want 2", got)
	}
}

func TestLinesNoTerminatorAtAll(t *testing.T) {
	got, err := Lines(writeFile(t, "no newline here"))
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("single unterminated line counted as %d lines, want 1", got)
	}
}

func TestLinesCRLF(t *testing.T) {
	got, err := Lines(writeFile(t, "a\r\nb\r\n"))
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if got != 2 {
		t.Fatalf("CRLF file counted as %d lines, want 2", got)
	}
}

func TestLinesLongLine(t *testing.T) {
	// Longer than bufio.Scanner's default token limit; must still be one line.
	got, err := Lines(writeFile(t, strings.Repeat("x", 1<<17)+"\n"))
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("long line counted as %d lines, want 1", got)
	}
}

func TestLinesMissingFile(t *testing.T) {
	if _, err := Lines(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
