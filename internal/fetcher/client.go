package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/dhkim-dev/boardwatch/internal/board"
	"github.com/dhkim-dev/boardwatch/internal/metrics"
)

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Config controls outbound request behavior.
type Config struct {
	Timeout        time.Duration
	AcceptLanguage string
}

// Client performs single page retrievals using a Colly collector.
// Every request carries a freshly drawn identity from the pool.
type Client struct {
	cfg           Config
	identities    *IdentityPool
	baseCollector *colly.Collector
}

// NewClient builds a Client.
func NewClient(cfg Config, identities *IdentityPool) *Client {
	c := colly.NewCollector(colly.Async(false))
	c.DetectCharset = true
	c.IgnoreRobotsTxt = true
	// The cache above this client refetches fixed URLs once entries go
	// stale, and clones share the collector's visited-URL store, so
	// revisits must be allowed.
	c.AllowURLRevisit = true
	if cfg.AcceptLanguage == "" {
		cfg.AcceptLanguage = "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7"
	}
	return &Client{
		cfg:           cfg,
		identities:    identities,
		baseCollector: c,
	}
}

// Get issues an HTTP GET and returns the response body as text.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	return c.run(ctx, rawURL, func(collector *colly.Collector) error {
		return collector.Visit(rawURL)
	})
}

// PostForm issues a form-encoded POST and returns the response body as text.
func (c *Client) PostForm(ctx context.Context, rawURL string, form map[string]string) (string, error) {
	return c.run(ctx, rawURL, func(collector *colly.Collector) error {
		return collector.Post(rawURL, form)
	})
}

func (c *Client) run(ctx context.Context, rawURL string, visit func(*colly.Collector) error) (string, error) {
	var (
		body     string
		status   int
		fetchErr error
	)
	start := time.Now()
	collector := c.buildCollector(rawURL, &body, &status, &fetchErr)

	done := make(chan error, 1)
	go func() {
		done <- visit(collector)
	}()

	select {
	case <-ctx.Done():
		return "", &board.FetchError{URL: rawURL, Err: ctx.Err()}
	case err := <-done:
		metrics.RecordFetch(hostOf(rawURL), status, time.Since(start))
		if fetchErr != nil {
			return "", fetchErr
		}
		if err != nil {
			return "", &board.FetchError{URL: rawURL, Err: fmt.Errorf("visit: %w", err)}
		}
		return body, nil
	}
}

func (c *Client) buildCollector(rawURL string, body *string, status *int, fetchErr *error) *colly.Collector {
	collector := c.baseCollector.Clone()
	collector.UserAgent = c.identities.Next()
	timeout := c.cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	collector.SetRequestTimeout(timeout)

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", acceptHeader)
		r.Headers.Set("Accept-Language", c.cfg.AcceptLanguage)
	})

	collector.OnResponse(func(r *colly.Response) {
		*status = r.StatusCode
		*body = string(r.Body)
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			*status = r.StatusCode
			*fetchErr = &board.FetchError{
				URL:        rawURL,
				StatusCode: r.StatusCode,
				Status:     http.StatusText(r.StatusCode),
			}
			return
		}
		*fetchErr = &board.FetchError{URL: rawURL, Err: err}
	})

	return collector
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Hostname()
}
