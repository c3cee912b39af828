package port

import (
	"errors"
	"strings"
)

// Errors returned by Document implementations when a structural part of
// the page does not exist yet.
var (
	ErrNoHead = errors.New("document has no head")
	ErrNoBody = errors.New("document has no body")
)

// Node is a detached snapshot of a DOM element.
// Tag is lowercase. Children holds element children only.
type Node struct {
	Tag      string
	ID       string
	Attrs    map[string]string
	Text     string
	Children []Node
}

// Attr returns an attribute value, or "" when absent.
func (n Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// IsStylesheet reports whether the node is a <style> or a <link rel="stylesheet">.
func (n Node) IsStylesheet() bool {
	switch n.Tag {
	case "style":
		return true
	case "link":
		for _, rel := range strings.Fields(strings.ToLower(n.Attr("rel"))) {
			if rel == "stylesheet" {
				return true
			}
		}
	}
	return false
}

// ContainsStylesheet reports whether the node or any descendant is a stylesheet.
func (n Node) ContainsStylesheet() bool {
	if n.IsStylesheet() {
		return true
	}
	for _, c := range n.Children {
		if c.ContainsStylesheet() {
			return true
		}
	}
	return false
}

// MutationTarget identifies the observed subtree.
type MutationTarget int

const (
	// MutationHead is the document head subtree.
	MutationHead MutationTarget = iota
	// MutationBody is the document body subtree.
	MutationBody
)

// Mutation describes elements inserted under an observed subtree.
type Mutation struct {
	Target MutationTarget
	Added  []Node
}

// Document is the live page the override engine works on.
// Implementations must be safe for concurrent use and must invoke
// observer callbacks without holding internal locks: the engine may call
// back into the document from a different goroutine while a callback runs.
type Document interface {
	// URL returns the page URL.
	URL() string

	// Loading reports whether the document is still being parsed.
	Loading() bool

	// OnReady registers fn to run once parsing finishes (DOMContentLoaded).
	// fn runs at most once; if the document is already ready it runs immediately.
	OnReady(fn func())

	// HeadChildren returns the element children of <head> in order.
	HeadChildren() ([]Node, error)

	// AppendToHead inserts node as the last child of <head>.
	AppendToHead(node Node) error

	// RemoveByID removes the element with the given id, anywhere in the document.
	RemoveByID(id string) (bool, error)

	// ObserveHead reports element insertions anywhere under <head>.
	ObserveHead(fn func([]Mutation)) (cancel func(), err error)

	// ObserveBody reports element insertions anywhere under <body>.
	ObserveBody(fn func([]Mutation)) (cancel func(), err error)
}
