// Package digest turns an ordered list of (url, title) pairs into a Digest.
// Titles that are blank or that carry a fetch error descriptor are skipped;
// every other title goes through the segmenter. Output order always follows
// input order.
package digest

import (
	"strings"
	"time"

	"github.com/gaurav-prasanna/headlink/core"
	"github.com/gaurav-prasanna/headlink/core/segment"
	"github.com/gaurav-prasanna/headlink/internal"
)

var log = internal.GetLogger()

// skipMarkers are lowercase substrings that flag a title as a failed fetch.
var skipMarkers = []string{"error", "title not found"}

// ShouldSkip reports whether title is blank or looks like a fetch failure.
func ShouldSkip(title string) bool {
	if strings.TrimSpace(title) == "" {
		return true
	}
	lower := strings.ToLower(title)
	for _, marker := range skipMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Build processes links in order.
func Build(links []core.Link) core.Digest {
	items := make([]core.Item, 0, len(links))
	for _, link := range links {
		items = append(items, buildItem(link))
	}
	return core.Digest{
		Items:       items,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func buildItem(link core.Link) core.Item {
	item := core.Item{URL: link.URL, Title: link.Title}
	if ShouldSkip(link.Title) {
		log.WithField("url", link.URL).Infof("Skipping link due to missing or error in title: %q", link.Title)
		item.Skipped = true
		return item
	}

	seg := segment.Partition(link.Title)
	item.Segments = &seg
	item.HTML = seg.HTML(link.URL)
	return item
}
