// Package urllist — URL rules.
// Provides helpers to validate and normalize article URLs.
package urllist

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that rawURL is absolute: it must include a scheme and a host.
func Validate(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}
	return nil
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	parsed.Host = strings.ToLower(parsed.Host)

	// Keep root "/".
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
