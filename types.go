package md2wechat

import (
	"log/slog"
	"time"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2wechat/internal/inliner"
)

// Resolved-style types, shared with the inliner so callers can supply
// their own resolver to CopyTree.
type (
	PropertyMap   = inliner.PropertyMap
	StyleResolver = inliner.StyleResolver
	MapResolver   = inliner.MapResolver
)

// NewMapResolver creates an empty MapResolver.
func NewMapResolver() *MapResolver {
	return inliner.NewMapResolver()
}

// Input is one article to export.
type Input struct {
	Markdown  string
	SourceDir string // resolves relative image paths; empty leaves them as written
	Title     string // <title> of the preview page
	CSS       string // appended after the theme stylesheet
}

// Preview is the themed page rendered from an Input, before styles are
// resolved. It is a complete HTML document.
type Preview struct {
	HTML  string
	Theme string
}

// Result is an exported article.
type Result struct {
	// Fragment is the detached outer wrapper section.
	Fragment *html.Node

	// HTML is Fragment serialised.
	HTML string

	// Sanitized is HTML as the paste target keeps it.
	Sanitized string
}

// Sanitizer reduces HTML to what a paste target keeps.
type Sanitizer interface {
	Sanitize(s string) string
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds the settings applied by options.
type exporterConfig struct {
	themeInput     string
	timeout        time.Duration
	assetPath      string
	padding        string
	highlightStyle string
	hardWraps      bool
}

// defaultTimeout bounds one export when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTheme selects the theme: an embedded or custom theme name, a path
// to a CSS file, or CSS content.
func WithTheme(nameOrPathOrCSS string) Option {
	return func(e *Exporter) {
		e.cfg.themeInput = nameOrPathOrCSS
	}
}

// WithTimeout sets the export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2wechat: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithAssetPath adds a directory of custom themes and templates that take
// precedence over the embedded ones.
func WithAssetPath(path string) Option {
	return func(e *Exporter) {
		e.cfg.assetPath = path
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.log = l
		}
	}
}

// WithPadding sets the wrapper padding used when the theme gives the
// preview root none.
func WithPadding(p string) Option {
	return func(e *Exporter) {
		e.cfg.padding = p
	}
}

// WithSanitizer sets the paste-target profile used for Result.Sanitized.
// nil disables the simulation.
func WithSanitizer(s Sanitizer) Option {
	return func(e *Exporter) {
		e.sanitizer = s
	}
}

// WithHighlightStyle selects the chroma style of fenced code blocks.
func WithHighlightStyle(name string) Option {
	return func(e *Exporter) {
		e.cfg.highlightStyle = name
	}
}

// WithHardWraps renders single newlines as line breaks.
func WithHardWraps(on bool) Option {
	return func(e *Exporter) {
		e.cfg.hardWraps = on
	}
}

// withEngine replaces the browser, for tests.
func withEngine(s styleEngine) Option {
	return func(e *Exporter) {
		e.engine = s
	}
}
