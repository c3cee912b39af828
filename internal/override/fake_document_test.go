package override_test

import (
	"context"
	"sync"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
)

// fakeDocument is an in-memory page with synchronous mutation callbacks.
type fakeDocument struct {
	mu         sync.Mutex
	url        string
	loading    bool
	noHead     bool
	head       []port.Node
	body       []port.Node
	readyFns   []func()
	headObs    map[int]func([]port.Mutation)
	bodyObs    map[int]func([]port.Mutation)
	nextObs    int
	appendHook func(n port.Node) error
}

func newFakeDocument(url string, head ...port.Node) *fakeDocument {
	return &fakeDocument{
		url:     url,
		head:    head,
		headObs: map[int]func([]port.Mutation){},
		bodyObs: map[int]func([]port.Mutation){},
	}
}

func (d *fakeDocument) URL() string { return d.url }

func (d *fakeDocument) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

func (d *fakeDocument) OnReady(fn func()) {
	d.mu.Lock()
	if d.loading {
		d.readyFns = append(d.readyFns, fn)
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	fn()
}

func (d *fakeDocument) HeadChildren() ([]port.Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.noHead {
		return nil, port.ErrNoHead
	}
	out := make([]port.Node, len(d.head))
	copy(out, d.head)
	return out, nil
}

func (d *fakeDocument) AppendToHead(n port.Node) error {
	d.mu.Lock()
	hook := d.appendHook
	d.mu.Unlock()

	if hook != nil {
		if err := hook(n); err != nil {
			return err
		}
	}

	d.mu.Lock()
	if d.noHead {
		d.mu.Unlock()
		return port.ErrNoHead
	}
	d.head = append(d.head, n)
	obs := observers(d.headObs)
	d.mu.Unlock()

	notify(obs, port.Mutation{Target: port.MutationHead, Added: []port.Node{n}})
	return nil
}

func (d *fakeDocument) RemoveByID(id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, n := range d.head {
		if n.ID == id {
			d.head = append(d.head[:i:i], d.head[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (d *fakeDocument) ObserveHead(fn func([]port.Mutation)) (func(), error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.noHead {
		return nil, port.ErrNoHead
	}
	return d.register(d.headObs, fn), nil
}

func (d *fakeDocument) ObserveBody(fn func([]port.Mutation)) (func(), error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.register(d.bodyObs, fn), nil
}

func (d *fakeDocument) register(set map[int]func([]port.Mutation), fn func([]port.Mutation)) func() {
	id := d.nextObs
	d.nextObs++
	set[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(set, id)
	}
}

// pageAppendHead simulates the page inserting an element into <head>.
func (d *fakeDocument) pageAppendHead(n port.Node) {
	d.mu.Lock()
	d.head = append(d.head, n)
	obs := observers(d.headObs)
	d.mu.Unlock()
	notify(obs, port.Mutation{Target: port.MutationHead, Added: []port.Node{n}})
}

// pageAppendBody simulates the page inserting an element into <body>.
func (d *fakeDocument) pageAppendBody(n port.Node) {
	d.mu.Lock()
	d.body = append(d.body, n)
	obs := observers(d.bodyObs)
	d.mu.Unlock()
	notify(obs, port.Mutation{Target: port.MutationBody, Added: []port.Node{n}})
}

// rewriteHead replaces <head> wholesale without any mutation record.
func (d *fakeDocument) rewriteHead(nodes ...port.Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.head = nodes
}

func (d *fakeDocument) finishLoading() {
	d.mu.Lock()
	d.loading = false
	d.noHead = false
	fns := d.readyFns
	d.readyFns = nil
	d.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (d *fakeDocument) count(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.head {
		if c.ID == id {
			n++
		}
	}
	return n
}

func (d *fakeDocument) element(id string) (port.Node, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.head {
		if c.ID == id {
			return c, true
		}
	}
	return port.Node{}, false
}

func (d *fakeDocument) headIDs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]string, 0, len(d.head))
	for _, c := range d.head {
		ids = append(ids, c.ID)
	}
	return ids
}

func (d *fakeDocument) lastHeadID() string {
	ids := d.headIDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[len(ids)-1]
}

func observers(set map[int]func([]port.Mutation)) []func([]port.Mutation) {
	out := make([]func([]port.Mutation), 0, len(set))
	for _, fn := range set {
		out = append(out, fn)
	}
	return out
}

func notify(obs []func([]port.Mutation), m port.Mutation) {
	for _, fn := range obs {
		fn([]port.Mutation{m})
	}
}

type settingsStub struct {
	settings *entity.Settings
	err      error
}

func (s settingsStub) Load(context.Context) (*entity.Settings, error) {
	return s.settings, s.err
}

type resolverStub struct {
	mu      sync.Mutex
	payload *entity.FontPayload
	err     error
	calls   []string
}

func (r *resolverStub) Resolve(_ context.Context, fontURL string) (*entity.FontPayload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fontURL)
	return r.payload, r.err
}

func (r *resolverStub) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
