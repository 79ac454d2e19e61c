package md2wechat

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/net/html"

	"github.com/alnah/go-md2wechat/internal/dom"
	"github.com/alnah/go-md2wechat/internal/fileutil"
	"github.com/alnah/go-md2wechat/internal/inliner"
	"github.com/alnah/go-md2wechat/internal/process"
)

// styleEngine renders a preview page and captures the computed styles of
// the subtree matched by selector.
type styleEngine interface {
	Snapshot(ctx context.Context, pageHTML, selector string) (*Snapshot, error)
	OpenDocument(ctx context.Context, sink Sink) (LiveDocument, error)
	Close() error
}

// LiveDocument is a Document on a page that must be closed after use.
type LiveDocument interface {
	Document
	Close() error
}

// Compile-time interface checks.
var (
	_ styleEngine  = (*chromeEngine)(nil)
	_ LiveDocument = (*ChromeDocument)(nil)
)

// Snapshot is a rendered subtree rebuilt as an HTML tree, together with
// the computed styles captured in the same walk.
type Snapshot struct {
	Root     *html.Node // nil when the selector matched nothing
	Resolver *inliner.MapResolver
}

// wrapperProperties are captured on every element in addition to the
// inlined ones; the wrapper reads them from the root.
var wrapperProperties = []string{"padding", "background-image"}

// markerProperties are captured on li::before.
var markerProperties = []string{"content", "color", "font-weight", "font-size", "left"}

// snapshotScript walks the subtree in document order and returns it as
// plain data. Text nodes carry "x"; elements carry tag, attributes,
// computed style, ::before style (li only) and children.
const snapshotScript = `(selector, props, markerProps) => {
	const root = document.querySelector(selector);
	if (!root) return null;
	const pick = (cs, names) => {
		const out = {};
		for (const n of names) out[n] = cs.getPropertyValue(n);
		return out;
	};
	const walk = (n) => {
		if (n.nodeType === Node.TEXT_NODE) return { x: n.nodeValue };
		if (n.nodeType !== Node.ELEMENT_NODE) return null;
		const e = { t: n.tagName.toLowerCase(), a: [], s: pick(getComputedStyle(n), props), c: [] };
		for (const at of n.attributes) e.a.push([at.name, at.value]);
		if (e.t === 'li') e.b = pick(getComputedStyle(n, '::before'), markerProps);
		for (const c of n.childNodes) {
			const w = walk(c);
			if (w) e.c.push(w);
		}
		return e;
	};
	return walk(root);
}`

type snapshotNode struct {
	Tag      string            `json:"t"`
	Attrs    [][2]string       `json:"a"`
	Style    map[string]string `json:"s"`
	Before   map[string]string `json:"b"`
	Text     *string           `json:"x"`
	Children []snapshotNode    `json:"c"`
}

// build rebuilds n as a detached tree and records its styles in r.
func (n snapshotNode) build(r *inliner.MapResolver) *html.Node {
	if n.Text != nil {
		return dom.NewText(*n.Text)
	}

	attrs := make([]html.Attribute, 0, len(n.Attrs))
	for _, kv := range n.Attrs {
		attrs = append(attrs, html.Attribute{Key: kv[0], Val: kv[1]})
	}
	el := dom.NewElement(n.Tag, attrs...)
	r.Set(el, n.Style)
	if n.Before != nil {
		r.SetPseudo(el, inliner.PseudoBefore, n.Before)
	}
	for _, c := range n.Children {
		el.AppendChild(c.build(r))
	}
	return el
}

// chromeEngine drives headless Chrome via go-rod.
// Rod downloads Chromium on first run if no browser is found.
type chromeEngine struct {
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newChromeEngine(timeout time.Duration) *chromeEngine {
	return &chromeEngine{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (e *chromeEngine) ensureBrowser() (*rod.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		return e.browser, nil
	}

	l := launcher.New()

	// Pre-installed browser (containers)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// Chrome's sandbox is unavailable in most CI runners and containers
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") != "" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	e.launcher = l
	e.browser = b
	return b, nil
}

// open loads url in a new page and waits for it to finish loading.
func (e *chromeEngine) open(ctx context.Context, url string) (*rod.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := e.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			_ = page.Close()
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	return page.Context(ctx), nil
}

// Snapshot writes pageHTML to a temporary file, loads it and captures the
// subtree matched by selector.
func (e *chromeEngine) Snapshot(ctx context.Context, pageHTML, selector string) (*Snapshot, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(pageHTML, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := e.open(ctx, fileutil.FileURL(tmpPath))
	if err != nil {
		return nil, err
	}
	defer page.Close()

	props := make([]string, 0, len(inliner.Properties)+len(wrapperProperties))
	props = append(props, inliner.Properties...)
	props = append(props, wrapperProperties...)

	res, err := page.Eval(snapshotScript, selector, props, markerProperties)
	if err != nil {
		return nil, fmt.Errorf("%w: capturing computed styles: %v", ErrStyleResolve, err)
	}

	snap := &Snapshot{Resolver: inliner.NewMapResolver()}
	if res.Value.Nil() {
		return snap, nil
	}

	var root snapshotNode
	if err := res.Value.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("%w: decoding snapshot: %v", ErrStyleResolve, err)
	}
	snap.Root = root.build(snap.Resolver)
	return snap, nil
}

// OpenDocument opens a blank page that a ChromeDocument can commit into.
func (e *chromeEngine) OpenDocument(ctx context.Context, sink Sink) (LiveDocument, error) {
	page, err := e.open(ctx, "about:blank")
	if err != nil {
		return nil, err
	}
	return &ChromeDocument{Page: page, Sink: sink}, nil
}

// Close releases the browser and kills any leftover Chrome processes.
func (e *chromeEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	if e.browser != nil {
		err = e.browser.Close()
		e.browser = nil
	}
	if e.launcher != nil {
		_ = process.KillProcessGroup(e.launcher.PID())
		e.launcher.Kill()
		e.launcher.Cleanup()
		e.launcher = nil
	}
	return err
}

// ChromeDocument is a Document on a live go-rod page. It selects with
// window.getSelection and copies with document.execCommand("copy"); the
// copied payload is captured from the copy event and written to Sink.
type ChromeDocument struct {
	Page *rod.Page
	Sink Sink
}

const (
	appendHostScript = `(markup) => {
	const t = document.createElement('template');
	t.innerHTML = markup;
	document.body.appendChild(t.content.firstElementChild);
}`
	removeHostScript = `(attr, id) => {
	for (const n of document.querySelectorAll('[' + attr + ']')) {
		if (n.getAttribute(attr) === id) n.remove();
	}
}`
	clearSelectionScript = `() => {
	const s = window.getSelection();
	if (s) s.removeAllRanges();
}`
	selectNodeScript = `(attr, id) => {
	const host = Array.from(document.querySelectorAll('[' + attr + ']')).find((n) => n.getAttribute(attr) === id);
	if (!host || !host.firstElementChild) return false;
	const range = document.createRange();
	range.selectNode(host.firstElementChild);
	const s = window.getSelection();
	s.removeAllRanges();
	s.addRange(range);
	return true;
}`
	execCopyScript = `() => {
	let payload = null;
	const capture = () => {
		const s = window.getSelection();
		if (!s || s.rangeCount === 0) return;
		const box = document.createElement('div');
		box.appendChild(s.getRangeAt(0).cloneContents());
		payload = { html: box.innerHTML, text: s.toString() };
	};
	document.addEventListener('copy', capture, true);
	let ok = false;
	try {
		ok = document.execCommand('copy');
	} finally {
		document.removeEventListener('copy', capture, true);
	}
	return { ok: ok, payload: payload };
}`
)

// AppendHost implements Document.
func (d *ChromeDocument) AppendHost(ctx context.Context, host *html.Node) error {
	markup, err := dom.Render(host)
	if err != nil {
		return fmt.Errorf("serialising host: %w", err)
	}
	_, err = d.Page.Context(ctx).Eval(appendHostScript, markup)
	return err
}

// RemoveHost implements Document.
func (d *ChromeDocument) RemoveHost(ctx context.Context, id string) error {
	_, err := d.Page.Context(ctx).Eval(removeHostScript, HostAttr, id)
	return err
}

// ClearSelection implements Document.
func (d *ChromeDocument) ClearSelection(ctx context.Context) error {
	_, err := d.Page.Context(ctx).Eval(clearSelectionScript)
	return err
}

// SelectNode implements Document.
func (d *ChromeDocument) SelectNode(ctx context.Context, id string) error {
	res, err := d.Page.Context(ctx).Eval(selectNodeScript, HostAttr, id)
	if err != nil {
		return err
	}
	if !res.Value.Bool() {
		return fmt.Errorf("%w: %s", ErrHostNotFound, id)
	}
	return nil
}

// ExecCopy implements Document. The command runs as a user gesture, which
// Chrome requires before it honours execCommand("copy").
func (d *ChromeDocument) ExecCopy(ctx context.Context) (bool, error) {
	res, err := d.Page.Context(ctx).Evaluate(rod.Eval(execCopyScript).ByUser())
	if err != nil {
		return false, err
	}

	var out struct {
		OK      bool     `json:"ok"`
		Payload *Payload `json:"payload"`
	}
	if err := res.Value.Unmarshal(&out); err != nil {
		return false, fmt.Errorf("decoding copy result: %w", err)
	}
	if !out.OK {
		return false, nil
	}

	if d.Sink != nil && out.Payload != nil {
		if err := d.Sink.Write(ctx, *out.Payload); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Close closes the underlying page.
func (d *ChromeDocument) Close() error {
	return d.Page.Close()
}
