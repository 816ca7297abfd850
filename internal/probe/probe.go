package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// connection pooling limits to keep a probe run polite to image hosts
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 4
	defaultMaxConnsPerHost     = 4
	defaultIdleConnTimeout     = 30 * time.Second
	defaultConcurrency         = 8
)

// Result is the outcome of probing one image URL.
type Result struct {
	// URL is the probed address.
	URL string

	// StatusCode is the HTTP status code. Zero if no response was received.
	StatusCode int

	// ContentType is the Content-Type header of the response.
	ContentType string

	// Latency is the total time taken for the request.
	Latency time.Duration

	// Error contains any error that occurred during the request.
	Error error
}

// OK reports whether a browser would be able to show the image.
func (r Result) OK() bool {
	if r.Error != nil || r.StatusCode < 200 || r.StatusCode > 299 {
		return false
	}
	// servers that omit the header are given the benefit of the doubt
	return r.ContentType == "" || strings.HasPrefix(r.ContentType, "image/")
}

// Client probes image URLs.
//
// Client uses per-request timeouts via context rather than a global timeout.
// Only headers are read; bodies are never downloaded.
type Client struct {
	httpClient  *http.Client
	concurrency int
}

// NewClient creates a new probe [Client].
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			// no default timeout - we use per-request timeouts via context
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
		concurrency: defaultConcurrency,
	}
}

// Check probes every URL concurrently and returns the results in the order
// of urls. A HEAD request is tried first; hosts that reject HEAD are asked
// again with GET.
//
// Check waits for every URL and always returns one Result per URL; failures
// are captured in the Error field. Once ctx is cancelled the remaining
// requests fail fast and carry the context error.
func (c *Client) Check(ctx context.Context, urls []string, timeout time.Duration) []Result {
	results := make([]Result, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			results[i] = c.check(ctx, u, timeout)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (c *Client) check(ctx context.Context, url string, timeout time.Duration) Result {
	res := c.fetch(ctx, http.MethodHead, url, timeout)
	if res.StatusCode == http.StatusMethodNotAllowed || res.StatusCode == http.StatusNotImplemented {
		res = c.fetch(ctx, http.MethodGet, url, timeout)
	}
	return res
}

func (c *Client) fetch(ctx context.Context, method, url string, timeout time.Duration) Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return Result{
			URL:     url,
			Latency: time.Since(start),
			Error:   fmt.Errorf("failed to create request: %w", err),
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{
			URL:     url,
			Latency: time.Since(start),
			Error:   fmt.Errorf("request failed: %w", err),
		}
	}
	// body is never read
	_ = resp.Body.Close()

	return Result{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Latency:     time.Since(start),
	}
}

// Close closes all idle connections in the client's connection pool.
//
// Safe to call multiple times. After Close, the client remains usable but
// new connections will be established as needed.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
