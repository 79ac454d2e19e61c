package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Class names of the preview page.
const (
	// PreviewClass marks the element whose subtree is exported.
	PreviewClass = "markdown-preview"

	// ThemeClassPrefix is prepended to the theme name on the outer container.
	ThemeClassPrefix = "theme-"
)

// ErrTemplateRender indicates the page template failed to parse or execute.
var ErrTemplateRender = errors.New("page template render failed")

// PageData is the input of the page template.
type PageData struct {
	Title string
	Theme string // theme name, without ThemeClassPrefix
	CSS   string // theme, extra and highlight CSS, concatenated
	Body  string // trusted HTML fragment from the converter
}

// pageView is what the template actually sees.
type pageView struct {
	Title        string
	ThemeClass   string
	PreviewClass string
	CSS          template.CSS
	Body         template.HTML
}

// BuildPage renders tmpl with data. The body is the converter's output and
// is inserted as-is; the CSS is inserted into a <style> element after
// closing sequences are neutralised.
func BuildPage(tmpl string, data PageData) (string, error) {
	t, err := template.New("page").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	view := pageView{
		Title:        data.Title,
		ThemeClass:   ThemeClassPrefix + data.Theme,
		PreviewClass: PreviewClass,
		CSS:          template.CSS(sanitizeCSS(data.CSS)),
		Body:         template.HTML(data.Body),
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes "</" so user CSS cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// JoinCSS concatenates stylesheets in cascade order, skipping empty ones.
func JoinCSS(sheets ...string) string {
	var b strings.Builder
	for _, s := range sheets {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s)
	}
	return b.String()
}
