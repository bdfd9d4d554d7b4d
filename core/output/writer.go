// Package output handles file naming and writing for headlink outputs.
// A run writes a single document; its name is either given explicitly or
// derived from the run time (e.g., links-20260101-090000.html).
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Stdout is the output directory value that writes to standard output.
const Stdout = "-"

// Writer writes rendered output to disk or to a stream.
type Writer struct {
	OutputDir string
	stream    io.Writer
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory;
// if it is "-", output goes to stdout.
func New(outputDir string) (*Writer, error) {
	if outputDir == Stdout {
		return NewStream(os.Stdout), nil
	}
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// NewStream creates a Writer that copies output to w instead of a file.
func NewStream(w io.Writer) *Writer {
	return &Writer{stream: w}
}

// Write stores data under name+ext and returns the path written, or
// Stdout when writing to a stream. An empty name is replaced by a
// timestamped default.
func (w *Writer) Write(name string, data []byte, ext string) (string, error) {
	if w.stream != nil {
		if _, err := w.stream.Write(data); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
		if len(data) > 0 && data[len(data)-1] != '\n' && ext != ".pdf" {
			if _, err := io.WriteString(w.stream, "\n"); err != nil {
				return "", fmt.Errorf("writing output: %w", err)
			}
		}
		return Stdout, nil
	}

	if name == "" {
		name = DefaultName(time.Now())
	}
	path := filepath.Join(w.OutputDir, sanitize(strings.TrimSuffix(name, ext))+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// DefaultName returns the timestamped base name for a run at t.
func DefaultName(t time.Time) string {
	return "links-" + t.UTC().Format("20060102-150405")
}

// sanitize replaces characters outside [A-Za-z0-9_-] with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
