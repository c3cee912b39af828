// Package htmldoc adapts a parsed golang.org/x/net/html tree to port.Document.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/fontify/internal/application/port"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a fully parsed HTML page. It is never loading.
type Document struct {
	mu      sync.Mutex
	url     string
	root    *html.Node
	headObs map[int]func([]port.Mutation)
	bodyObs map[int]func([]port.Mutation)
	nextObs int
}

var _ port.Document = (*Document)(nil)

// Parse reads an HTML page. The parser always synthesizes <head> and <body>.
func Parse(r io.Reader, pageURL string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{
		url:     pageURL,
		root:    root,
		headObs: make(map[int]func([]port.Mutation)),
		bodyObs: make(map[int]func([]port.Mutation)),
	}, nil
}

func (d *Document) URL() string { return d.url }

func (d *Document) Loading() bool { return false }

func (d *Document) OnReady(fn func()) { fn() }

func (d *Document) HeadChildren() ([]port.Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	head := find(d.root, atom.Head)
	if head == nil {
		return nil, port.ErrNoHead
	}
	return elementChildren(head), nil
}

func (d *Document) AppendToHead(n port.Node) error {
	return d.appendTo(atom.Head, port.MutationHead, port.ErrNoHead, n)
}

// AppendToBody inserts n as the last child of <body>, as a page script would.
func (d *Document) AppendToBody(n port.Node) error {
	return d.appendTo(atom.Body, port.MutationBody, port.ErrNoBody, n)
}

func (d *Document) appendTo(a atom.Atom, target port.MutationTarget, missing error, n port.Node) error {
	d.mu.Lock()
	parent := find(d.root, a)
	if parent == nil {
		d.mu.Unlock()
		return missing
	}
	parent.AppendChild(toHTML(n))

	obs := d.headObs
	if target == port.MutationBody {
		obs = d.bodyObs
	}
	callbacks := make([]func([]port.Mutation), 0, len(obs))
	for _, fn := range obs {
		callbacks = append(callbacks, fn)
	}
	d.mu.Unlock()

	mutations := []port.Mutation{{Target: target, Added: []port.Node{n}}}
	for _, fn := range callbacks {
		fn(mutations)
	}
	return nil
}

func (d *Document) RemoveByID(id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := findByID(d.root, id)
	if n == nil || n.Parent == nil {
		return false, nil
	}
	n.Parent.RemoveChild(n)
	return true, nil
}

func (d *Document) ObserveHead(fn func([]port.Mutation)) (func(), error) {
	return d.observe(atom.Head, port.ErrNoHead, d.headObs, fn)
}

func (d *Document) ObserveBody(fn func([]port.Mutation)) (func(), error) {
	return d.observe(atom.Body, port.ErrNoBody, d.bodyObs, fn)
}

func (d *Document) observe(a atom.Atom, missing error, set map[int]func([]port.Mutation), fn func([]port.Mutation)) (func(), error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if find(d.root, a) == nil {
		return nil, missing
	}

	id := d.nextObs
	d.nextObs++
	set[id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(set, id)
	}, nil
}

// Render serializes the current tree.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// Bytes returns the serialized page.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func find(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func elementChildren(n *html.Node) []port.Node {
	out := make([]port.Node, 0)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, toPort(c))
		}
	}
	return out
}

func toPort(n *html.Node) port.Node {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
	}

	return port.Node{
		Tag:      strings.ToLower(n.Data),
		ID:       attrs["id"],
		Attrs:    attrs,
		Text:     text.String(),
		Children: elementChildren(n),
	}
}

func toHTML(n port.Node) *html.Node {
	tag := strings.ToLower(n.Tag)
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	attrs := make(map[string]string, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	if n.ID != "" {
		attrs["id"] = n.ID
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	// id first keeps rendered output stable and readable.
	if i := slices.Index(keys, "id"); i > 0 {
		keys = append([]string{"id"}, slices.Delete(keys, i, i+1)...)
	}
	for _, k := range keys {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}

	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}
	return el
}
