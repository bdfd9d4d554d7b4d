package fetch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/headlink/core"
	"github.com/gaurav-prasanna/headlink/internal"
)

var log = internal.GetLogger()

// ConnectErrorTitle stands in for the title when the page could not be
// fetched for any reason other than an HTTP status.
const ConnectErrorTitle = "Error: Could not connect to server or fetch title."

// TitleFetcher resolves URLs to page titles by fetching the page and
// extracting its <title>.
type TitleFetcher struct {
	fetcher   core.Fetcher
	extractor core.Extractor
}

// NewTitleFetcher combines a Fetcher and an Extractor into a TitleSource.
func NewTitleFetcher(fetcher core.Fetcher, extractor core.Extractor) *TitleFetcher {
	return &TitleFetcher{fetcher: fetcher, extractor: extractor}
}

// Title fetches url and returns its page title.
func (t *TitleFetcher) Title(ctx context.Context, url string) (string, error) {
	result, err := t.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	title, err := t.extractor.Extract(result.HTML)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	return title, nil
}

// Describe turns a fetch failure into the descriptive title shown in place
// of the real one. Descriptors always contain "error", so downstream
// filtering skips them.
func Describe(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error fetching title (Status: %d)", statusErr.Code)
	}
	return ConnectErrorTitle
}

// All resolves the title of every URL, running up to concurrency fetches at
// once. The returned links are in the same order as urls. Failed fetches do
// not abort the batch: their title is the failure's descriptor.
func All(ctx context.Context, src core.TitleSource, urls []string, concurrency int) []core.Link {
	if concurrency < 1 {
		concurrency = 1
	}

	links := make([]core.Link, len(urls))
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, url := range urls {
		links[i].URL = url
		g.Go(func() error {
			log.Debugf("Fetching title for %s", url)
			title, err := src.Title(ctx, url)
			if err != nil {
				log.WithError(err).WithField("url", url).Warn("Title fetch failed")
				links[i].Title = Describe(err)
				return nil
			}
			log.WithField("url", url).Debugf("Title fetched: %s", title)
			links[i].Title = title
			return nil
		})
	}
	g.Wait()

	return links
}
