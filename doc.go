// Package md2wechat turns Markdown into inline-styled HTML that survives a
// paste into the WeChat official-account editor.
//
// The editor drops stylesheets and class attributes, so every style a theme
// gives the preview must be written onto the elements themselves. The
// exporter renders the themed preview in headless Chrome, reads each
// element's computed style, and copies a clone of the preview with those
// styles inlined.
//
// # Quick Start
//
//	exp, err := md2wechat.NewExporter(md2wechat.WithTheme("claude"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer exp.Close()
//
//	res, err := exp.Export(ctx, md2wechat.Input{Markdown: "# 你好\n\n正文"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.HTML)
//
// # Export Pipeline
//
//  1. Markdown preprocessing (line endings, ==highlight== syntax)
//  2. Markdown to HTML via Goldmark (GFM, hard line breaks, chroma classes)
//  3. Preview page assembly (base, theme and highlight CSS)
//  4. Style capture in headless Chrome (go-rod), one walk of the preview
//  5. Inlining: clone, write whitelisted computed styles, turn list
//     bullets drawn by li::before into real spans, wrap in two sections
//  6. Commit: attach off-screen, select, copy, detach
//
// # Committing
//
// Copy and CopyTree hand the fragment to a Committer. HostCommitter runs
// the select-and-copy protocol against a Document: ChromeDocument on a live
// page, or MemoryDocument for an in-memory page. Copied payloads go to a
// Sink (ClipboardSink, WriterSink).
//
//	doc := md2wechat.NewBlankDocument(md2wechat.NewClipboardSink(md2wechat.ClipboardHTML))
//	err := exp.Copy(ctx, input, md2wechat.NewHostCommitter(doc))
//
// Only one Copy or CopyTree runs at a time per Exporter; a second one fails
// with ErrCopyInFlight.
//
// # Custom Assets
//
// WithAssetPath points at a directory whose themes/ and templates/ entries
// override the embedded ones:
//
//	assets/
//	├── themes/
//	│   └── ocean.css
//	└── templates/
//	    └── page.html
//
// # Browser Requirements
//
// Style capture requires Chrome/Chromium. go-rod downloads a managed
// Chromium on first run (~/.cache/rod/browser/). For containers and CI, set
// ROD_NO_SANDBOX=1; use ROD_BROWSER_BIN to point at an installed binary.
package md2wechat
