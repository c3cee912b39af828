// Package pages tracks open pages and runs one override engine per page load.
package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/logging"
	"github.com/bnema/fontify/internal/override"
	"github.com/google/uuid"
)

// ErrPageNotFound is returned for unknown page IDs.
var ErrPageNotFound = errors.New("page not found")

// Loader opens a fresh document for a URL, once per page load.
type Loader interface {
	Load(ctx context.Context, pageURL string) (port.Document, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, pageURL string) (port.Document, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, pageURL string) (port.Document, error) {
	return f(ctx, pageURL)
}

// Renderer is implemented by documents that can serialize themselves.
type Renderer interface {
	Render(w io.Writer) error
}

type page struct {
	id  string
	url string

	// mu guards the fields below; a reload swaps them.
	mu       sync.Mutex
	openedAt time.Time
	doc      port.Document
	engine   *override.Engine
	closed   bool
}

// Registry implements port.PageController. It is safe for concurrent use.
type Registry struct {
	deps   override.Deps
	opts   override.Options
	loader Loader
	now    func() time.Time

	mu    sync.RWMutex
	pages map[string]*page
}

var _ port.PageController = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry(deps override.Deps, opts override.Options, loader Loader) *Registry {
	return &Registry{
		deps:   deps,
		opts:   opts,
		loader: loader,
		now:    time.Now,
		pages:  make(map[string]*page),
	}
}

// Open loads pageURL and starts its engine.
func (r *Registry) Open(ctx context.Context, pageURL string) (port.PageInfo, error) {
	pageURL = strings.TrimSpace(pageURL)

	p := &page{id: uuid.NewString(), url: pageURL}
	doc, err := r.load(ctx, p)
	if err != nil {
		return port.PageInfo{}, err
	}
	r.start(ctx, p, doc)

	r.mu.Lock()
	r.pages[p.id] = p
	r.mu.Unlock()

	logging.FromContext(ctx).Info().Str("page_id", p.id).Str("url", pageURL).Msg("page opened")
	return r.info(p), nil
}

// load fetches a fresh document for p. It takes no locks.
func (r *Registry) load(ctx context.Context, p *page) (port.Document, error) {
	doc, err := r.loader.Load(ctx, p.url)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", p.url, err)
	}
	return doc, nil
}

// start runs a new engine on doc. The caller holds p.mu or owns p.
func (r *Registry) start(ctx context.Context, p *page, doc port.Document) {
	engineCtx := logging.WithPageID(context.WithoutCancel(ctx), p.id)
	engine := override.New(r.deps, r.opts)
	engine.Start(engineCtx, doc)

	p.doc = doc
	p.engine = engine
	p.openedAt = r.now().UTC()
}

// ListPages returns the open pages ordered by opening time.
func (r *Registry) ListPages(_ context.Context) ([]port.PageInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]port.PageInfo, 0, len(r.pages))
	for _, p := range r.pages {
		infos = append(infos, r.info(p))
	}
	slices.SortFunc(infos, func(a, b port.PageInfo) int {
		if c := a.OpenedAt.Compare(b.OpenedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return infos, nil
}

// Get returns one page.
func (r *Registry) Get(id string) (port.PageInfo, error) {
	p, err := r.lookup(id)
	if err != nil {
		return port.PageInfo{}, err
	}
	return r.info(p), nil
}

// ReloadPage unloads the page and loads it again with a new engine, which
// reads the current settings.
func (r *Registry) ReloadPage(ctx context.Context, id string) error {
	p, err := r.lookup(id)
	if err != nil {
		return err
	}

	doc, err := r.load(ctx, p)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("%w: %s", ErrPageNotFound, id)
	}
	p.engine.Stop()
	r.start(ctx, p, doc)

	logging.FromContext(ctx).Debug().Str("page_id", id).Msg("page reloaded")
	return nil
}

// Settle waits until the page engine has reached Idle or Maintaining.
func (r *Registry) Settle(ctx context.Context, id string) error {
	p, err := r.lookup(id)
	if err != nil {
		return err
	}

	p.mu.Lock()
	settled := p.engine.Settled()
	p.mu.Unlock()

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Render writes the current document of a page.
func (r *Registry) Render(id string, w io.Writer) error {
	p, err := r.lookup(id)
	if err != nil {
		return err
	}

	p.mu.Lock()
	doc := p.doc
	p.mu.Unlock()

	renderer, ok := doc.(Renderer)
	if !ok {
		return fmt.Errorf("page %s cannot be rendered", id)
	}
	return renderer.Render(w)
}

// Close unloads a page.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	p, ok := r.pages[id]
	delete(r.pages, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrPageNotFound, id)
	}
	p.stop()
	return nil
}

// Shutdown unloads every page.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	all := r.pages
	r.pages = make(map[string]*page)
	r.mu.Unlock()

	for _, p := range all {
		p.stop()
	}
}

func (r *Registry) lookup(id string) (*page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, id)
	}
	return p, nil
}

func (p *page) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.engine.Stop()
}

func (r *Registry) info(p *page) port.PageInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	return port.PageInfo{
		ID:       p.id,
		URL:      p.url,
		State:    p.engine.State().String(),
		OpenedAt: p.openedAt,
	}
}
