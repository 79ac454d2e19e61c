package md2wechat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2wechat/internal/dom"
)

// ErrHostNotFound is returned when a host id is not attached to the document.
var ErrHostNotFound = errors.New("host not found in document")

// Compile-time interface check.
var _ LiveDocument = (*MemoryDocument)(nil)

// blankPage is the document NewBlankDocument starts from.
const blankPage = "<!DOCTYPE html><html><head></head><body></body></html>"

// MemoryDocument is a Document over an in-memory HTML tree. Hosts are
// appended to the document body and copies go to Sink.
type MemoryDocument struct {
	Sink Sink

	mu        sync.Mutex
	root      *html.Node
	body      *html.Node
	selection *html.Node
	copies    []Payload
}

// NewMemoryDocument wraps an existing document tree. When root has no
// <body> element, hosts are appended to root itself.
func NewMemoryDocument(root *html.Node, sink Sink) *MemoryDocument {
	body := dom.FindElement(root, "body")
	if body == nil {
		body = root
	}
	return &MemoryDocument{Sink: sink, root: root, body: body}
}

// ParseMemoryDocument parses a full HTML document from r.
func ParseMemoryDocument(r io.Reader, sink Sink) (*MemoryDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return NewMemoryDocument(root, sink), nil
}

// NewBlankDocument creates a MemoryDocument over an empty page.
func NewBlankDocument(sink Sink) *MemoryDocument {
	root, err := html.Parse(strings.NewReader(blankPage))
	if err != nil {
		panic("md2wechat: parsing blank page: " + err.Error()) // constant input
	}
	return NewMemoryDocument(root, sink)
}

// Root returns the document tree.
func (d *MemoryDocument) Root() *html.Node {
	return d.root
}

// Selection returns the currently selected node, or nil.
func (d *MemoryDocument) Selection() *html.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection
}

// Copies returns every payload copied so far, oldest first.
func (d *MemoryDocument) Copies() []Payload {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Payload, len(d.copies))
	copy(out, d.copies)
	return out
}

// AppendHost implements Document.
func (d *MemoryDocument) AppendHost(ctx context.Context, host *html.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.body.AppendChild(host)
	return nil
}

// RemoveHost implements Document.
func (d *MemoryDocument) RemoveHost(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for {
		host := dom.FindByAttr(d.body, HostAttr, id)
		if host == nil || host.Parent == nil {
			return nil
		}
		if d.selection != nil && dom.Contains(host, d.selection) {
			d.selection = nil
		}
		host.Parent.RemoveChild(host)
	}
}

// ClearSelection implements Document.
func (d *MemoryDocument) ClearSelection(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = nil
	return nil
}

// SelectNode implements Document.
func (d *MemoryDocument) SelectNode(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	host := dom.FindByAttr(d.body, HostAttr, id)
	if host == nil {
		return fmt.Errorf("%w: %s", ErrHostNotFound, id)
	}
	for c := host.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			d.selection = c
			return nil
		}
	}
	return fmt.Errorf("%w: host %s is empty", ErrHostNotFound, id)
}

// ExecCopy implements Document. It serialises the selected node and hands
// the payload to Sink. An empty selection copies nothing and reports false.
func (d *MemoryDocument) ExecCopy(ctx context.Context) (bool, error) {
	d.mu.Lock()
	selected := d.selection
	d.mu.Unlock()

	if selected == nil {
		return false, nil
	}

	markup, err := dom.Render(selected)
	if err != nil {
		return false, fmt.Errorf("serialising selection: %w", err)
	}
	p := Payload{HTML: markup, Text: dom.PlainText(selected)}

	if d.Sink != nil {
		if err := d.Sink.Write(ctx, p); err != nil {
			return false, err
		}
	}

	d.mu.Lock()
	d.copies = append(d.copies, p)
	d.mu.Unlock()
	return true, nil
}

// Close implements LiveDocument. It does nothing.
func (d *MemoryDocument) Close() error {
	return nil
}
