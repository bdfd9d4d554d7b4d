// Package urllist reads the list of article URLs a run works on.
// Input is one URL per line; surrounding whitespace is trimmed and blank
// lines are ignored. Order is preserved, since output follows input order.
package urllist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ParseList reads one URL per line from r.
func ParseList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var urls []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading URL list: %w", err)
	}
	return urls, nil
}

// Invalid returns the entries of urls that fail Validate, with their errors.
func Invalid(urls []string) []error {
	var errs []error
	for _, u := range urls {
		if err := Validate(u); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
