package md2wechat

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2wechat/internal/assets"
	"github.com/alnah/go-md2wechat/internal/dom"
	"github.com/alnah/go-md2wechat/internal/fileutil"
	"github.com/alnah/go-md2wechat/internal/inliner"
	"github.com/alnah/go-md2wechat/internal/logging"
	"github.com/alnah/go-md2wechat/internal/pipeline"
	"github.com/alnah/go-md2wechat/internal/target"
)

// customTheme is the theme class used for CSS given as a path or content.
const customTheme = "custom"

// previewSelector matches the exported root of the preview page.
const previewSelector = "." + pipeline.PreviewClass

// Compile-time interface checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.Preprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Exporter turns Markdown into inline-styled HTML for the WeChat editor.
// Create with NewExporter, and Close when done.
type Exporter struct {
	cfg          exporterConfig
	log          *slog.Logger
	assetLoader  assets.AssetLoader
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
	engine       styleEngine
	sanitizer    Sanitizer

	theme        string // class suffix of the preview page
	themeCSS     string // base, theme and highlight CSS
	pageTemplate string

	inFlight atomic.Bool
}

// NewExporter creates an Exporter with the default theme, hard line breaks
// and the WeChat paste profile. Use options to customise it.
// Returns an error if a theme, the highlight style or the page template
// cannot be loaded.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg:          exporterConfig{timeout: defaultTimeout, hardWraps: true},
		log:          logging.NewNop(),
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.Preprocessor{},
		sanitizer:    target.WeChatPolicy(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(e.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		e.assetLoader = resolver
	}

	e.converter = pipeline.NewGoldmarkConverter(pipeline.MarkdownOptions{HardWraps: e.cfg.hardWraps})

	if err := e.resolveTheme(); err != nil {
		return nil, err
	}

	tmpl, err := e.assetLoader.LoadTemplate(assets.PageTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	e.pageTemplate = tmpl

	if e.engine == nil {
		e.engine = newChromeEngine(e.cfg.timeout)
	}
	return e, nil
}

// Theme returns the theme name the preview page is rendered with.
func (e *Exporter) Theme() string {
	return e.theme
}

// Render converts in to the themed preview page.
func (e *Exporter) Render(ctx context.Context, in Input) (*Preview, error) {
	if in.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	md := e.preprocessor.PreprocessMarkdown(ctx, in.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := e.converter.ToHTML(ctx, md)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	body, err = pipeline.RewriteImagePaths(body, in.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("rewriting image paths: %w", err)
	}

	page, err := pipeline.BuildPage(e.pageTemplate, pipeline.PageData{
		Title: in.Title,
		Theme: e.theme,
		CSS:   pipeline.JoinCSS(e.themeCSS, in.CSS),
		Body:  body,
	})
	if err != nil {
		return nil, err
	}
	return &Preview{HTML: page, Theme: e.theme}, nil
}

// Export renders in, resolves its styles in the browser and returns the
// inline-styled fragment. Panics inside the pipeline are returned as
// ErrUnexpected.
func (e *Exporter) Export(ctx context.Context, in Input) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, e.cfg.timeout)
	defer cancel()

	preview, err := e.Render(ctx, in)
	if err != nil {
		return nil, err
	}

	snap, err := e.engine.Snapshot(ctx, preview.HTML, previewSelector)
	if err != nil {
		return nil, err
	}
	if snap.Root == nil {
		return nil, fmt.Errorf("%w: %s missing from rendered page", ErrUnexpected, previewSelector)
	}
	e.log.Debug("styles resolved", "theme", e.theme, "elements", snap.Resolver.Len())

	return e.inline(snap.Root, snap.Resolver)
}

// Copy exports in and commits the fragment with c.
// A Copy or CopyTree already running on e makes it fail with ErrCopyInFlight.
func (e *Exporter) Copy(ctx context.Context, in Input, c Committer) error {
	if !e.inFlight.CompareAndSwap(false, true) {
		return ErrCopyInFlight
	}
	defer e.inFlight.Store(false)

	res, err := e.Export(ctx, in)
	if err != nil {
		return err
	}
	return e.commit(ctx, c, res.Fragment)
}

// CopyTree inlines the .markdown-preview subtree of doc with styles from r
// and commits it with c. When doc has no such subtree it does nothing.
// A Copy or CopyTree already running on e makes it fail with ErrCopyInFlight.
func (e *Exporter) CopyTree(ctx context.Context, doc *html.Node, r StyleResolver, c Committer) (err error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return ErrCopyInFlight
	}
	defer e.inFlight.Store(false)

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpected, rec)
		}
	}()

	root := dom.FindByClass(doc, pipeline.PreviewClass)
	if root == nil {
		e.log.Debug("nothing to copy", "selector", previewSelector)
		return nil
	}

	res, err := e.inline(root, r)
	if err != nil {
		return err
	}
	return e.commit(ctx, c, res.Fragment)
}

// OpenDocument opens a blank browser page to commit into. Payloads the
// page copies are written to sink.
func (e *Exporter) OpenDocument(ctx context.Context, sink Sink) (LiveDocument, error) {
	return e.engine.OpenDocument(ctx, sink)
}

// Close releases the browser.
func (e *Exporter) Close() error {
	if e.engine != nil {
		return e.engine.Close()
	}
	return nil
}

// inline runs the transform and fills in the serialised forms.
func (e *Exporter) inline(root *html.Node, r StyleResolver) (*Result, error) {
	frag, err := inliner.Inline(root, r, inliner.Options{
		Wrap: inliner.WrapOptions{Padding: e.cfg.padding},
	})
	if err != nil {
		if errors.Is(err, inliner.ErrStyleResolve) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}

	markup, err := dom.Render(frag)
	if err != nil {
		return nil, fmt.Errorf("%w: serialising fragment: %v", ErrUnexpected, err)
	}

	res := &Result{Fragment: frag, HTML: markup}
	if e.sanitizer != nil {
		res.Sanitized = e.sanitizer.Sanitize(markup)
	}
	return res, nil
}

func (e *Exporter) commit(ctx context.Context, c Committer, frag *html.Node) error {
	if err := c.Commit(ctx, frag); err != nil {
		e.log.Debug("commit failed", "error", err)
		return err
	}
	e.log.Info("copied", "theme", e.theme)
	return nil
}

// resolveTheme loads the theme input (name, path, or CSS content) and the
// highlight stylesheet. Called once by NewExporter.
func (e *Exporter) resolveTheme() error {
	base, err := e.assetLoader.LoadTheme(assets.BaseTheme)
	if err != nil {
		return fmt.Errorf("loading base theme: %w", err)
	}

	input := e.cfg.themeInput
	var css string
	switch {
	case input == "":
		e.theme = assets.DefaultTheme
		css, err = e.assetLoader.LoadTheme(e.theme)
	case fileutil.IsFilePath(input):
		e.theme = customTheme
		var data []byte
		data, err = os.ReadFile(input) // #nosec G304 -- user-provided path
		css = string(data)
	case fileutil.IsCSS(input):
		e.theme = customTheme
		css = input
	default:
		e.theme = input
		css, err = e.assetLoader.LoadTheme(input)
	}
	if err != nil {
		return fmt.Errorf("loading theme %q: %w", cmp.Or(input, e.theme), err)
	}

	highlight, err := pipeline.HighlightCSS(e.cfg.highlightStyle)
	if err != nil {
		return err
	}

	e.themeCSS = pipeline.JoinCSS(base, css, highlight)
	return nil
}
