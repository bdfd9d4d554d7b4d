// Package segment partitions an article title into a bold lead, an unmarked
// middle and a hyperlinked tail, and renders the result as a single HTML
// sentence fragment.
//
// The partition is purely word-count based:
//
//	n == 0  empty-title sentinel
//	n == 1  the word is both bold and linked
//	n >= 2  one bold word (two when n > 5), the last ~35% of the title
//	        linked, everything in between left as plain text
//
// Titles and URLs are inserted into the markup verbatim.
package segment

import (
	"fmt"
	"math"
	"strings"

	"github.com/gaurav-prasanna/headlink/core/normalize"
)

// EmptyTitleHTML is returned for titles with no words.
const EmptyTitleHTML = "<p><em>(Title was empty)</em></p>"

const (
	// longTitleWords is the word count above which the lead gets two words.
	longTitleWords = 5
	// linkRatio is the share of the title's words the link should cover.
	linkRatio = 0.35
)

// SpanKind identifies one of the three spans of a segmented title.
type SpanKind int

const (
	Bold SpanKind = iota
	Middle
	Link
)

func (k SpanKind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Middle:
		return "middle"
	case Link:
		return "link"
	default:
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
}

// MarshalText lets SpanKind serialize by name.
func (k SpanKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Span is a contiguous run of title words.
type Span struct {
	Kind  SpanKind `json:"kind"`
	Words []string `json:"words"`
}

// Text joins the span's words with single spaces.
func (s Span) Text() string {
	return strings.Join(s.Words, " ")
}

// Len returns the number of words in the span.
func (s Span) Len() int {
	return len(s.Words)
}

// Layout records which branch of the partition produced a Segments value.
type Layout int

const (
	// LayoutEmpty: the title had no words.
	LayoutEmpty Layout = iota
	// LayoutSingle: one word, rendered bold and linked.
	LayoutSingle
	// LayoutSplit: bold lead, optional middle, link tail.
	LayoutSplit
	// LayoutFallback: nothing remained after the lead, so the link span
	// repeats the bold span and the lead itself becomes the link.
	LayoutFallback
)

func (l Layout) String() string {
	switch l {
	case LayoutEmpty:
		return "empty"
	case LayoutSingle:
		return "single"
	case LayoutSplit:
		return "split"
	case LayoutFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// MarshalText lets Layout serialize by name.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Segments is the partition of one title.
type Segments struct {
	Layout Layout `json:"layout"`
	Bold   Span   `json:"bold"`
	Middle Span   `json:"middle"`
	Link   Span   `json:"link"`
}

// Words splits a title on runs of whitespace, dropping empty tokens.
func Words(title string) []string {
	return strings.Fields(title)
}

// BoldCount returns the number of lead words for a title of n words.
func BoldCount(n int) int {
	if n > longTitleWords && n-2 >= 1 {
		return 2
	}
	return 1
}

// LinkTarget returns the preferred number of linked words for a title of n
// words: round(n * 0.35), never less than one.
func LinkTarget(n int) int {
	target := int(math.Round(float64(n) * linkRatio))
	if target < 1 {
		return 1
	}
	return target
}

// Partition splits title into its bold, middle and link spans.
func Partition(title string) Segments {
	words := Words(title)
	n := len(words)

	switch n {
	case 0:
		return Segments{
			Layout: LayoutEmpty,
			Bold:   Span{Kind: Bold},
			Middle: Span{Kind: Middle},
			Link:   Span{Kind: Link},
		}
	case 1:
		return Segments{
			Layout: LayoutSingle,
			Bold:   Span{Kind: Bold, Words: words},
			Middle: Span{Kind: Middle},
			Link:   Span{Kind: Link, Words: words},
		}
	}

	boldCount := BoldCount(n)
	seg := Segments{
		Layout: LayoutSplit,
		Bold:   Span{Kind: Bold, Words: words[:boldCount]},
		Middle: Span{Kind: Middle},
		Link:   Span{Kind: Link},
	}
	rest := words[boldCount:]
	linkTarget := LinkTarget(n)

	switch {
	case len(rest) == 0:
		// Unreachable with the current BoldCount rule; kept so a lead that
		// swallows the whole title still produces a link.
		seg.Layout = LayoutFallback
		seg.Link.Words = seg.Bold.Words
	case len(rest) <= linkTarget:
		seg.Link.Words = rest
	default:
		linkCount := min(linkTarget, len(rest))
		split := len(rest) - linkCount
		seg.Middle.Words = rest[:split]
		seg.Link.Words = rest[split:]
	}
	return seg
}

// HTML renders the segments as a paragraph fragment linking to url.
func (s Segments) HTML(url string) string {
	switch s.Layout {
	case LayoutEmpty:
		return EmptyTitleHTML
	case LayoutSingle, LayoutFallback:
		return "<p><strong>" + anchor(url, s.BoldText()) + "</strong>.</p>"
	}

	var b strings.Builder
	b.WriteString("<p><strong>")
	b.WriteString(s.BoldText())
	b.WriteString("</strong>")
	if middle := s.MiddleText(); middle != "" {
		b.WriteString(" ")
		b.WriteString(middle)
	}
	if link := s.LinkText(); link != "" {
		b.WriteString(" ")
		b.WriteString(anchor(url, link))
	}
	b.WriteString(".</p>")
	return b.String()
}

// BoldText is the sentence-cased lead.
func (s Segments) BoldText() string {
	return normalize.ToSentenceCase(s.Bold.Text())
}

// MiddleText is the lowercased middle span.
func (s Segments) MiddleText() string {
	return strings.ToLower(strings.TrimSpace(s.Middle.Text()))
}

// LinkText is the lowercased link span without its trailing period.
func (s Segments) LinkText() string {
	return normalize.CleanAndLower(s.Link.Text())
}

// Segment partitions title and renders it as an HTML fragment linking to url.
func Segment(title, url string) string {
	return Partition(title).HTML(url)
}

func anchor(url, text string) string {
	return `<a href="` + url + `" target="_blank">` + text + `</a>`
}
