package fetch

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gaurav-prasanna/headlink/core"
)

// Cached is a TitleSource that remembers successfully fetched titles.
// Failures are never cached, so a flaky site is retried on the next call.
type Cached struct {
	src   core.TitleSource
	cache *lru.Cache[string, string]
}

// NewCached wraps src with an LRU cache holding up to size titles.
func NewCached(src core.TitleSource, size int) (*Cached, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("creating title cache: %w", err)
	}
	return &Cached{src: src, cache: cache}, nil
}

// Title returns the cached title for url, fetching it on a miss.
func (c *Cached) Title(ctx context.Context, url string) (string, error) {
	if title, ok := c.cache.Get(url); ok {
		return title, nil
	}
	title, err := c.src.Title(ctx, url)
	if err != nil {
		return "", err
	}
	c.cache.Add(url, title)
	return title, nil
}

// Len returns the number of cached titles.
func (c *Cached) Len() int {
	return c.cache.Len()
}
