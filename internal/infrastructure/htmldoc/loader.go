package htmldoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/logging"
)

const (
	loadTimeout  = 20 * time.Second
	maxPageBytes = 20 << 20
)

// Loader downloads and parses pages.
type Loader struct {
	client *http.Client
}

// NewLoader creates a loader. A nil client gets a default with a timeout.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: loadTimeout}
	}
	return &Loader{client: client}
}

// Load fetches pageURL and parses the response as HTML.
func (l *Loader) Load(ctx context.Context, pageURL string) (port.Document, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &port.HTTPStatusError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	doc, err := Parse(io.LimitReader(resp.Body, maxPageBytes), resp.Request.URL.String())
	if err != nil {
		return nil, err
	}

	log.Debug().Str("url", pageURL).Msg("page loaded")
	return doc, nil
}
