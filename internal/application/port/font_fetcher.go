package port

import (
	"context"
	"fmt"
	"net/http"
)

// FetchedFont is a downloaded font resource.
type FetchedFont struct {
	Body        []byte
	ContentType string
}

// FontFetcher downloads font resources.
type FontFetcher interface {
	// Fetch downloads the full body at url. Non-2xx responses return *HTTPStatusError.
	Fetch(ctx context.Context, url string) (*FetchedFont, error)
}

// ProbeResult is the outcome of a HEAD request.
type ProbeResult struct {
	StatusCode  int
	ContentType string
}

// OK reports a 2xx status.
func (r *ProbeResult) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// URLProber checks whether a URL is reachable without downloading it.
type URLProber interface {
	Probe(ctx context.Context, url string) (*ProbeResult, error)
}

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}
