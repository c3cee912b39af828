// Package fetch downloads font files and probes font URLs over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/logging"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxBytes  = 10 << 20
	defaultUserAgent = "fontify/1.0"
)

// ErrTooLarge is returned when a font body exceeds Config.MaxBytes.
var ErrTooLarge = errors.New("font exceeds size limit")

// Config tunes the HTTP client. Zero fields use the defaults.
type Config struct {
	Timeout       time.Duration
	MaxBytes      int64
	RatePerSecond float64
	Burst         int
	UserAgent     string
}

// Client implements port.FontFetcher and port.URLProber.
// Concurrent fetches of one URL share a single request.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	maxBytes  int64
	userAgent string
	group     singleflight.Group
}

var (
	_ port.FontFetcher = (*Client)(nil)
	_ port.URLProber   = (*Client)(nil)
)

// NewClient creates a client. A non-positive RatePerSecond disables limiting.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   limiter,
		maxBytes:  cfg.MaxBytes,
		userAgent: cfg.UserAgent,
	}
}

// WithHTTPClient replaces the underlying client, for tests and custom transports.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// Fetch downloads fontURL. Non-2xx responses return a *port.HTTPStatusError.
func (c *Client) Fetch(ctx context.Context, fontURL string) (*port.FetchedFont, error) {
	ch := c.group.DoChan(fontURL, func() (any, error) {
		// Shared by every waiter, so it must outlive the first caller.
		return c.fetch(context.WithoutCancel(ctx), fontURL)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logging.FromContext(ctx).Trace().Str("font_url", fontURL).Msg("font fetch shared")
		}
		return res.Val.(*port.FetchedFont), nil
	}
}

func (c *Client) fetch(ctx context.Context, fontURL string) (*port.FetchedFont, error) {
	log := logging.FromContext(ctx)

	resp, err := c.do(ctx, http.MethodGet, fontURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &port.HTTPStatusError{URL: fontURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read font body: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrTooLarge, fontURL, c.maxBytes)
	}

	log.Debug().Str("font_url", fontURL).Int("bytes", len(body)).Msg("font downloaded")

	return &port.FetchedFont{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// Probe issues a HEAD request and reports the status and content type.
func (c *Client) Probe(ctx context.Context, rawURL string) (*port.ProbeResult, error) {
	resp, err := c.do(ctx, http.MethodHead, rawURL)
	if err != nil {
		return nil, err
	}
	_ = resp.Body.Close()

	return &port.ProbeResult{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func (c *Client) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s %s: %w", method, rawURL, err)
	}
	return resp, nil
}
