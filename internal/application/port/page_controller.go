package port

import (
	"context"
	"time"
)

// PageInfo describes an open page hosting an override engine.
type PageInfo struct {
	ID       string
	URL      string
	State    string
	OpenedAt time.Time
}

// PageController lists open pages and reloads them.
// It stands in for the browser's tab API.
type PageController interface {
	ListPages(ctx context.Context) ([]PageInfo, error)

	// ReloadPage tears down the page's engine and starts a fresh one with current settings.
	ReloadPage(ctx context.Context, id string) error
}
