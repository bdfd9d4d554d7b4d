// Package extract implements the Extractor interface.
// It pulls the document title out of a full HTML page: the text of the
// first <title> element, trimmed.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NoTitle is returned when the page has no usable <title>.
const NoTitle = "No title found"

// TitleExtractor reads the <title> of an HTML document.
type TitleExtractor struct{}

// New creates a TitleExtractor.
func New() *TitleExtractor {
	return &TitleExtractor{}
}

// Extract parses html and returns the first <title>'s text. Pages without a
// title, or with an empty one, yield NoTitle.
func (e *TitleExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return NoTitle, nil
	}
	return title, nil
}
