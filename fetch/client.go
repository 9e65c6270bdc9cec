package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultUserAgent is a browser-like agent string; the feed serves 403s
// to obvious robots.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// ClientOptions configures a Client.
type ClientOptions struct {
	UserAgent string
	Timeout   time.Duration
	Retries   int
	Backoff   time.Duration
}

// DefaultClientOptions returns the defaults tuned for the live feed.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		UserAgent: DefaultUserAgent,
		Timeout:   25 * time.Second,
		Retries:   4,
		Backoff:   1200 * time.Millisecond,
	}
}

// Client retrieves documents from URLs or local files.
type Client struct {
	httpClient *http.Client
	opts       ClientOptions
}

// NewClient creates a client with default options.
func NewClient() *Client {
	return NewClientWithOptions(DefaultClientOptions())
}

// NewClientWithOptions creates a client with custom options. Non-positive
// retry and timing values fall back to the defaults.
func NewClientWithOptions(opts ClientOptions) *Client {
	defaults := DefaultClientOptions()
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.Retries <= 0 {
		opts.Retries = defaults.Retries
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaults.Backoff
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		opts:       opts,
	}
}

// Fetch returns the document for the given source: raw markup is passed
// through, files are read, and URLs are fetched with retries.
func (c *Client) Fetch(ctx context.Context, src string) (string, error) {
	switch DetectSource(src) {
	case SourceMarkup:
		return src, nil
	case SourceURL:
		return c.fetchURL(ctx, src)
	default:
		data, err := os.ReadFile(src)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), nil
	}
}

// fetchURL retrieves a URL with bounded retries. A 403 gets one immediate
// follow-up with tweaked cache headers before counting as a failure; the
// feed's edge intermittently rejects and then accepts the same client.
func (c *Client) fetchURL(ctx context.Context, url string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < c.opts.Retries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, c.opts.Backoff); err != nil {
				return "", err
			}
		}

		body, status, err := c.get(ctx, url, false)
		if err == nil && status == http.StatusForbidden {
			body, status, err = c.get(ctx, url, true)
		}
		if err != nil {
			lastErr = err
			continue
		}
		if status < 200 || status >= 300 {
			lastErr = fmt.Errorf("unexpected status %d", status)
			continue
		}
		return body, nil
	}

	return "", fmt.Errorf("fetching %s: %w", url, lastErr)
}

func (c *Client) get(ctx context.Context, url string, tweaked bool) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	if tweaked {
		req.Header.Set("Pragma", "no-cache")
		req.Header.Set("DNT", "1")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}
	return string(body), resp.StatusCode, nil
}

// sleepCtx waits for the duration unless the context ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
