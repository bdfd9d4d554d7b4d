// Package fetch implements the Fetcher and TitleSource interfaces.
// It performs HTTP GET requests with browser-like defaults, because many
// news sites refuse requests that do not look like a browser.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gaurav-prasanna/headlink/config"
	"github.com/gaurav-prasanna/headlink/core"
	"github.com/gaurav-prasanna/headlink/internal"
)

const defaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of a page is read; the <title> lives in <head>.
const maxBodyBytes = 4 << 20

// StatusError reports a non-2xx response from the target site.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

// SetupError reports a request that could not be built, so nothing was
// sent to the target site.
type SetupError struct {
	URL string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("creating request: %v", e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// Options configures an HTTPFetcher.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Retries is the number of extra attempts on connection errors and 5xx
	// responses. Zero disables retrying.
	Retries int
}

// OptionsFromConfig maps the fetch section of the config onto Options.
func OptionsFromConfig(cfg config.FetchConfig) Options {
	return Options{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Retries:   cfg.Retries,
	}
}

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// New creates an HTTPFetcher. Zero-valued options fall back to a 5 second
// timeout and the default browser User-Agent.
func New(opts Options) *HTTPFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = config.DefaultUserAgent
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = opts.Retries
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.HTTPClient.Timeout = opts.Timeout
	retryClient.Logger = internal.NewLeveledLogrus(internal.GetLogger())
	retryClient.Backoff = retryablehttp.DefaultBackoff
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	// Hand the last response back instead of a generic "giving up" error so
	// the status code survives.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &HTTPFetcher{
		client:    retryClient.StandardClient(),
		userAgent: opts.UserAgent,
	}
}

// Fetch retrieves the HTML content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SetupError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
