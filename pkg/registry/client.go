// Package registry downloads the operator table from the public registry.
package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultUserAgent  = "mccmnc (+https://github.com/jbjulia/mccmnc)"

	// maxBodySize caps the payload read from the registry.
	maxBodySize = 64 << 20
)

type Client struct {
	httpClient *http.Client
	userAgent  string
	maxRetries uint
	newBackOff func() backoff.BackOff
}

type ClientOption func(*Client)

// WithTimeout bounds each attempt.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithMaxRetries sets how many times a transient failure is retried. Zero
// disables retries.
func WithMaxRetries(n uint) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithBackOff replaces the exponential backoff between attempts.
func WithBackOff(fn func() backoff.BackOff) ClientOption {
	return func(c *Client) {
		c.newBackOff = fn
	}
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  DefaultUserAgent,
		maxRetries: DefaultMaxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads url and returns the response body.
// Connection errors, timeouts, 5xx and 429 responses are retried. Any other
// non 2xx status fails immediately.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := zap.S().Named("registry")

	attempt := 0
	operation := func() ([]byte, error) {
		attempt++
		logger.Debugw("fetching registry", "url", url, "attempt", attempt)
		return c.get(ctx, url)
	}

	body, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.maxRetries+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warnw("fetch failed, retrying", "url", url, "attempt", attempt, "next", next, "error", err)
		}),
	)
	if err != nil {
		if srvErrors.IsNetworkError(err) {
			return nil, err
		}
		return nil, srvErrors.NewNetworkError("fetch", url, err)
	}

	logger.Debugw("registry fetched", "url", url, "bytes", len(body), "attempts", attempt)
	return body, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(srvErrors.NewNetworkError("fetch", url, err))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(srvErrors.NewNetworkError("fetch", url, err))
		}
		return nil, srvErrors.NewNetworkError("fetch", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return nil, srvErrors.NewHTTPStatusError(url, resp.StatusCode, resp.Status)
	default:
		return nil, backoff.Permanent(srvErrors.NewHTTPStatusError(url, resp.StatusCode, resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, srvErrors.NewNetworkError("read", url, err)
	}
	if len(body) > maxBodySize {
		return nil, backoff.Permanent(srvErrors.NewNetworkError("read", url, fmt.Errorf("response larger than %d bytes", maxBodySize)))
	}
	return body, nil
}
