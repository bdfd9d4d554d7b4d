package core

import (
	"fmt"
	"strings"
)

// Raw returns the fragments joined by newlines, one line per item.
// Skipped items leave an empty line; surrounding whitespace is trimmed.
func (d Digest) Raw() string {
	var b strings.Builder
	for _, item := range d.Items {
		if item.Skipped {
			b.WriteString("\n")
			continue
		}
		b.WriteString(item.HTML)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// Preview returns the fragments concatenated for display, with a note in
// place of each skipped item.
func (d Digest) Preview() string {
	var b strings.Builder
	for _, item := range d.Items {
		if item.Skipped {
			fmt.Fprintf(&b, "<p><em>Skipped link for %s due to missing or error in title.</em></p>\n", item.URL)
			continue
		}
		b.WriteString(item.HTML)
	}
	return b.String()
}

// Rendered returns the items that were segmented, in order.
func (d Digest) Rendered() []Item {
	items := make([]Item, 0, len(d.Items))
	for _, item := range d.Items {
		if !item.Skipped {
			items = append(items, item)
		}
	}
	return items
}
