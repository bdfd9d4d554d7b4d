package urllist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	input := "https://a.test/one\n\n   https://b.test/two  \r\n\t\nhttps://a.test/one\n"
	urls, err := ParseList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.test/one", "https://b.test/two", "https://a.test/one"}, urls)
}

func TestParseListEmpty(t *testing.T) {
	urls, err := ParseList(strings.NewReader("\n  \n"))
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com/story", false},
		{"http://example.com", false},
		{"example.com/story", true},
		{"/relative/path", true},
		{"://broken", true},
	}
	for _, tt := range tests {
		err := Validate(tt.url)
		if tt.wantErr {
			assert.Error(t, err, tt.url)
		} else {
			assert.NoError(t, err, tt.url)
		}
	}
}

func TestInvalid(t *testing.T) {
	errs := Invalid([]string{"https://ok.test", "nope", "https://fine.test/x"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "nope")
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com/a", NormalizeURL("https://Example.com/a/#top"))
	assert.Equal(t, "https://example.com/", NormalizeURL("https://example.com/"))
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{
		"https://a.test/story",
		"https://b.test/",
		"https://a.test/story/",
		"https://A.test/story#comments",
		"https://b.test",
	})
	assert.Equal(t, []string{"https://a.test/story", "https://b.test/", "https://b.test"}, got)
}
