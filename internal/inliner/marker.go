package inliner

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2wechat/internal/dom"
)

// FallbackMarkerOffset positions a marker when ::before reports no left offset.
const FallbackMarkerOffset = "-1em"

// Decoration is a list bullet that exists only as generated ::before
// content, described as data so it can be spliced into a tree later.
type Decoration struct {
	Glyph      string
	Color      string
	FontWeight string
	FontSize   string
	Left       string
}

// DecorationFor returns the bullet decoration of src, or nil when src has
// none to materialize.
//
// Only <li> elements whose parent is a <ul> qualify. Ordered-list numbers
// are left to the paste target's own list rendering.
func DecorationFor(src *html.Node, r StyleResolver) (*Decoration, error) {
	if !isUnorderedItem(src) {
		return nil, nil
	}

	before, err := r.ResolvePseudo(src, PseudoBefore)
	if err != nil {
		return nil, fmt.Errorf("%w: <li>::before: %v", ErrStyleResolve, err)
	}

	glyph, ok := MarkerGlyph(before.Get("content"))
	if !ok {
		return nil, nil
	}

	left := strings.TrimSpace(before.Get("left"))
	if left == "" || left == "auto" {
		left = FallbackMarkerOffset
	}

	return &Decoration{
		Glyph:      glyph,
		Color:      before.Get("color"),
		FontWeight: before.Get("font-weight"),
		FontSize:   before.Get("font-size"),
		Left:       left,
	}, nil
}

// MarkerGlyph recovers the literal glyph from a resolved content value.
// It strips one leading and one trailing quote character and reports
// false for values that generate nothing.
func MarkerGlyph(content string) (string, bool) {
	content = strings.TrimSpace(content)
	switch content {
	case "", "none", "normal", `""`, `''`:
		return "", false
	}

	if isQuote(content[0]) {
		content = content[1:]
	}
	if n := len(content); n > 0 && isQuote(content[n-1]) {
		content = content[:n-1]
	}
	if content == "" {
		return "", false
	}
	return content, true
}

// Materialize inserts d as a positioned <span> before target's first child
// and switches target to relative positioning with its native marker off.
func Materialize(target *html.Node, d Decoration) {
	span := dom.NewElement("span")
	span.AppendChild(dom.NewText(d.Glyph))

	setIfPresent(span, "color", d.Color)
	setIfPresent(span, "font-weight", d.FontWeight)
	setIfPresent(span, "font-size", d.FontSize)
	dom.SetStyleProperty(span, "position", "absolute")
	dom.SetStyleProperty(span, "left", d.Left)

	dom.SetStyleProperty(target, "position", "relative")
	dom.SetStyleProperty(target, "list-style-type", "none")

	dom.PrependChild(target, span)
}

func setIfPresent(n *html.Node, prop, val string) {
	if val = strings.TrimSpace(val); val != "" {
		dom.SetStyleProperty(n, prop, val)
	}
}

func isUnorderedItem(n *html.Node) bool {
	return dom.IsElement(n, "li") && dom.IsElement(n.Parent, "ul")
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}
