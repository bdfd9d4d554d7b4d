// Package render — JSON renderer.
// Emits every item with its spans and fragment, so other tools can restyle
// the segmentation without re-running it.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/headlink/core"
)

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type jsonDigest struct {
	GeneratedAt string      `json:"generated_at"`
	Count       int         `json:"count"`
	Skipped     int         `json:"skipped"`
	Items       []core.Item `json:"items"`
	HTML        string      `json:"html"`
}

// Render marshals the digest with summary counts and the combined HTML.
func (r *JSONRenderer) Render(digest core.Digest) ([]byte, error) {
	items := digest.Items
	if items == nil {
		items = []core.Item{}
	}
	out := jsonDigest{
		GeneratedAt: digest.GeneratedAt,
		Count:       len(items),
		Skipped:     len(items) - len(digest.Rendered()),
		Items:       items,
		HTML:        digest.Raw(),
	}

	// Fragments stay readable: no \u003c escapes.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
