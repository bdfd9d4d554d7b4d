package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://example.com/story"

func link(text string) string {
	return `<a href="` + testURL + `" target="_blank">` + text + `</a>`
}

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "empty",
			title: "",
			want:  EmptyTitleHTML,
		},
		{
			name:  "whitespace only",
			title: "   ",
			want:  "<p><em>(Title was empty)</em></p>",
		},
		{
			name:  "single word",
			title: "OK",
			want:  "<p><strong>" + link("Ok") + "</strong>.</p>",
		},
		{
			name:  "single word with padding",
			title: "\t golang \n",
			want:  "<p><strong>" + link("Golang") + "</strong>.</p>",
		},
		{
			name:  "two words link the tail",
			title: "Hello World",
			want:  "<p><strong>Hello</strong> " + link("world") + ".</p>",
		},
		{
			name:  "three words",
			title: "Breaking News Update",
			want:  "<p><strong>Breaking</strong> news " + link("update") + ".</p>",
		},
		{
			name:  "trailing period stripped from link only",
			title: "Go Is Really Fast.",
			want:  "<p><strong>Go</strong> is really " + link("fast") + ".</p>",
		},
		{
			name:  "five words link two",
			title: "Why Rust Is Eating C++",
			want:  "<p><strong>Why</strong> rust is " + link("eating c++") + ".</p>",
		},
		{
			name:  "long title gets two bold words",
			title: "A Very Long Headline About Many Important Topics",
			want:  "<p><strong>A very</strong> long headline about " + link("many important topics") + ".</p>",
		},
		{
			name:  "irregular whitespace",
			title: "  Breaking\tNews \n Update ",
			want:  "<p><strong>Breaking</strong> news " + link("update") + ".</p>",
		},
		{
			name:  "link made of a lone period is dropped",
			title: "Wait For It .",
			want:  "<p><strong>Wait</strong> for it.</p>",
		},
		{
			name:  "no escaping",
			title: "Tom & <Jerry>",
			want:  "<p><strong>Tom</strong> & " + link("<jerry>") + ".</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Segment(tt.title, testURL))
		})
	}
}

func TestSegmentLinkMatchingLeadIsStillLinked(t *testing.T) {
	// The tail repeats the lead word; only the fallback layout may fold the
	// link into the lead.
	got := Segment("News News", testURL)
	assert.Equal(t, "<p><strong>News</strong> "+link("news")+".</p>", got)
}

func TestBoldCount(t *testing.T) {
	for n := 2; n <= 5; n++ {
		assert.Equal(t, 1, BoldCount(n), "n=%d", n)
	}
	for n := 6; n <= 40; n++ {
		assert.Equal(t, 2, BoldCount(n), "n=%d", n)
	}
}

func TestLinkTarget(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{6, 2},
		{7, 2},
		{8, 3},
		{9, 3},
		{12, 4},
		{20, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LinkTarget(tt.n), "n=%d", tt.n)
	}
}

func TestPartition(t *testing.T) {
	seg := Partition("A Very Long Headline About Many Important Topics")
	assert.Equal(t, LayoutSplit, seg.Layout)
	assert.Equal(t, []string{"A", "Very"}, seg.Bold.Words)
	assert.Equal(t, []string{"Long", "Headline", "About"}, seg.Middle.Words)
	assert.Equal(t, []string{"Many", "Important", "Topics"}, seg.Link.Words)
	assert.Equal(t, Bold, seg.Bold.Kind)
	assert.Equal(t, Middle, seg.Middle.Kind)
	assert.Equal(t, Link, seg.Link.Kind)

	assert.Equal(t, LayoutEmpty, Partition(" \t ").Layout)

	single := Partition("OK")
	assert.Equal(t, LayoutSingle, single.Layout)
	assert.Equal(t, []string{"OK"}, single.Bold.Words)
}

func TestFallbackLayoutLinksTheLead(t *testing.T) {
	seg := Segments{
		Layout: LayoutFallback,
		Bold:   Span{Kind: Bold, Words: []string{"Breaking", "NEWS"}},
		Middle: Span{Kind: Middle},
		Link:   Span{Kind: Link, Words: []string{"Breaking", "NEWS"}},
	}
	assert.Equal(t, "<p><strong>"+link("Breaking news")+"</strong>.</p>", seg.HTML(testURL))
}

func TestPartitionProperties(t *testing.T) {
	vocabulary := strings.Fields("alpha Beta gamma DELTA epsilon zeta Eta theta iota kappa lambda mu nu xi omicron pi rho sigma tau upsilon")

	for n := 1; n <= len(vocabulary); n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			words := vocabulary[:n]
			title := strings.Join(words, "  ")
			seg := Partition(title)

			if n == 1 {
				require.Equal(t, LayoutSingle, seg.Layout)
			} else {
				require.Equal(t, LayoutSplit, seg.Layout)
				assert.Equal(t, BoldCount(n), seg.Bold.Len())
				assert.GreaterOrEqual(t, seg.Link.Len(), 1)

				var joined []string
				joined = append(joined, seg.Bold.Words...)
				joined = append(joined, seg.Middle.Words...)
				joined = append(joined, seg.Link.Words...)
				assert.Equal(t, words, joined)
			}

			out := seg.HTML(testURL)
			assert.True(t, strings.HasPrefix(out, "<p>"), out)
			assert.True(t, strings.HasSuffix(out, ".</p>"), out)
			assert.Equal(t, 1, strings.Count(out, "<strong>"), out)
			assert.Equal(t, 1, strings.Count(out, "<a href="), out)
		})
	}
}

func TestLayoutMarshalText(t *testing.T) {
	text, err := LayoutFallback.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fallback", string(text))
	assert.Equal(t, "link", Link.String())
}
