// Package core defines the pipeline types and interfaces for headlink.
// Each stage of the pipeline is a clean, testable interface:
// fetch → extract title → segment → render → write.
package core

import (
	"context"

	"github.com/gaurav-prasanna/headlink/core/segment"
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Link is one article the caller wants rendered: a URL and its title.
// The title may be an error descriptor produced by a failed fetch.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Item is the outcome of processing one Link.
type Item struct {
	URL      string            `json:"url"`
	Title    string            `json:"title"`
	Skipped  bool              `json:"skipped"`
	Segments *segment.Segments `json:"segments,omitempty"`
	HTML     string            `json:"html,omitempty"`
}

// Digest is the ordered set of processed items for one run.
type Digest struct {
	Items       []Item `json:"items"`
	GeneratedAt string `json:"generated_at"` // ISO8601
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the page title out of raw HTML.
type Extractor interface {
	Extract(html string) (string, error)
}

// TitleSource resolves a URL to a page title.
type TitleSource interface {
	Title(ctx context.Context, url string) (string, error)
}

// Renderer converts a digest into a final output format.
type Renderer interface {
	Render(digest Digest) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
