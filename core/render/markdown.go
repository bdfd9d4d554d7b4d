// Package render — Markdown renderer.
// Converts the digest's HTML into Markdown for newsletter tools that do not
// accept HTML.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/headlink/core"
)

// MarkdownRenderer converts the raw fragments with html-to-markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the digest to Markdown, one paragraph per link.
func (r *MarkdownRenderer) Render(digest core.Digest) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(digest.Raw())
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
