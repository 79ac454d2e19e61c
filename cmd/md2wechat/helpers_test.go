package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/net/html"

	md2wechat "github.com/alnah/go-md2wechat"
	"github.com/alnah/go-md2wechat/internal/dom"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake exporter and environment
// ---------------------------------------------------------------------------

// fragmentHTML is what fakeExporter commits.
const fragmentHTML = `<section data-tool="md2wechat">你好</section>`

// fakeExporter stands in for the Chrome-backed exporter. Copy commits a
// fixed fragment through the given committer, so the target wiring runs
// for real.
type fakeExporter struct {
	mu sync.Mutex

	theme     string
	exportErr error
	copyErr   error
	openErr   error

	inputs []md2wechat.Input
	closed bool
}

func (f *fakeExporter) record(in md2wechat.Input) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
}

func (f *fakeExporter) lastInput() md2wechat.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.inputs) == 0 {
		return md2wechat.Input{}
	}
	return f.inputs[len(f.inputs)-1]
}

func (f *fakeExporter) Render(_ context.Context, in md2wechat.Input) (*md2wechat.Preview, error) {
	f.record(in)
	if in.Markdown == "" {
		return nil, md2wechat.ErrEmptyMarkdown
	}
	return &md2wechat.Preview{HTML: "<html>" + in.Markdown + "</html>", Theme: f.theme}, nil
}

func (f *fakeExporter) Export(_ context.Context, in md2wechat.Input) (*md2wechat.Result, error) {
	f.record(in)
	if f.exportErr != nil {
		return nil, f.exportErr
	}
	return &md2wechat.Result{
		Fragment:  testFragment(),
		HTML:      fragmentHTML,
		Sanitized: `<section>你好</section>`,
	}, nil
}

func (f *fakeExporter) Copy(ctx context.Context, in md2wechat.Input, c md2wechat.Committer) error {
	f.record(in)
	if f.copyErr != nil {
		return f.copyErr
	}
	return c.Commit(ctx, testFragment())
}

func (f *fakeExporter) OpenDocument(_ context.Context, sink md2wechat.Sink) (md2wechat.LiveDocument, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return md2wechat.NewBlankDocument(sink), nil
}

func (f *fakeExporter) Theme() string { return f.theme }

func (f *fakeExporter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func testFragment() *html.Node {
	sec := dom.NewElement("section", html.Attribute{Key: "data-tool", Val: "md2wechat"})
	sec.AppendChild(&html.Node{Type: html.TextNode, Data: "你好"})
	return sec
}

// clipboardSink records clipboard writes.
type clipboardSink struct {
	mu       sync.Mutex
	payloads []md2wechat.Payload
	err      error
}

func (s *clipboardSink) Write(_ context.Context, p md2wechat.Payload) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return nil
}

func (s *clipboardSink) written() []md2wechat.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]md2wechat.Payload(nil), s.payloads...)
}

// testEnv bundles an Environment with the doubles behind it.
type testEnv struct {
	*Environment
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	clipboard *clipboardSink
	exporter  *fakeExporter
}

// newTestEnv returns an environment whose exporter factory still runs the
// real option validation (themes, asset path, highlight style) before
// handing out the fake.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	te := &testEnv{
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		clipboard: &clipboardSink{},
		exporter:  &fakeExporter{},
	}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	te.Environment = &Environment{
		Now:       func() time.Time { return fixed },
		Stdin:     strings.NewReader(""),
		Stdout:    te.stdout,
		Stderr:    te.stderr,
		Clipboard: te.clipboard,
		NewExporter: func(opts ...md2wechat.Option) (Exporter, error) {
			exp, err := md2wechat.NewExporter(opts...)
			if err != nil {
				return nil, err
			}
			te.exporter.theme = exp.Theme()
			_ = exp.Close()
			return te.exporter, nil
		},
	}
	return te
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
