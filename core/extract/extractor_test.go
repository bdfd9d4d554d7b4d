package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "plain title",
			html: "<html><head><title>Breaking News Update</title></head><body></body></html>",
			want: "Breaking News Update",
		},
		{
			name: "whitespace trimmed",
			html: "<html><head><title>\n   Spaced Out  \n</title></head></html>",
			want: "Spaced Out",
		},
		{
			name: "first title wins",
			html: "<head><title>First</title></head><body><svg><title>Second</title></svg></body>",
			want: "First",
		},
		{
			name: "entities decoded",
			html: "<title>Tom &amp; Jerry</title>",
			want: "Tom & Jerry",
		},
		{
			name: "missing title",
			html: "<html><body><h1>Hello</h1></body></html>",
			want: NoTitle,
		},
		{
			name: "empty title",
			html: "<title>   </title>",
			want: NoTitle,
		},
		{
			name: "empty document",
			html: "",
			want: NoTitle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := New().Extract(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
