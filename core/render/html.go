// Package render provides output renderers for the headlink pipeline.
// This file implements the HTML renderer, which emits the segmented
// fragments as they are.
package render

import (
	"github.com/gaurav-prasanna/headlink/core"
)

// HTMLRenderer writes one fragment per line. With Preview set it emits the
// display form instead, where skipped links leave a note.
type HTMLRenderer struct {
	Preview bool
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer(preview bool) *HTMLRenderer {
	return &HTMLRenderer{Preview: preview}
}

// Render returns the digest's HTML.
func (r *HTMLRenderer) Render(digest core.Digest) ([]byte, error) {
	if r.Preview {
		return []byte(digest.Preview()), nil
	}
	return []byte(digest.Raw()), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
