// Package pipeline turns Markdown into the themed preview page that the
// exporter loads in a browser.
//
// Stages:
//   - Markdown preprocessing (line endings, ==highlight== syntax)
//   - Markdown to HTML conversion via Goldmark (GFM, hard line breaks,
//     chroma class-based highlighting)
//   - Relative image paths rewritten to file:// URLs
//   - Page assembly: theme CSS, chroma CSS and the HTML fragment rendered
//     into the page template
//
// Style resolution and inlining happen later, in the root package and
// internal/inliner, against the page built here.
package pipeline
