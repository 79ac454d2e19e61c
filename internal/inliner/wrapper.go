package inliner

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2wechat/internal/dom"
)

// Wrapper defaults.
const (
	ProvenanceAttr    = "data-tool"
	DefaultProvenance = "md2wechat"
	DefaultPadding    = "20px"
	DefaultRadius     = "4px"
)

// outerStyle keeps the target's stylesheet from clipping or overflowing
// the pasted block.
const outerStyle = "margin:0;padding:0;max-width:100%;box-sizing:border-box;word-break:break-word;"

// WrapOptions configures Wrap. Zero values select the defaults.
type WrapOptions struct {
	Padding    string // used when the root reports no padding
	Provenance string // value of the data-tool attribute
}

func (o WrapOptions) withDefaults() WrapOptions {
	if o.Padding == "" {
		o.Padding = DefaultPadding
	}
	if o.Provenance == "" {
		o.Provenance = DefaultProvenance
	}
	return o
}

// Wrap moves the content of clone into an inner <section> styled from the
// live root's resolved style, nests it in an outer <section>, and returns
// the outer one. clone is left empty.
//
// The inner section gets a 1px border in its own background color: some
// paste targets only paint a background on bordered elements.
func Wrap(clone *html.Node, root PropertyMap, opts WrapOptions) *html.Node {
	opts = opts.withDefaults()

	outer := dom.NewElement("section")
	dom.SetAttr(outer, dom.StyleAttr, outerStyle)
	dom.SetAttr(outer, ProvenanceAttr, opts.Provenance)

	inner := dom.NewElement("section")
	background := strings.TrimSpace(root.Get("background-color"))
	setIfPresent(inner, "background-color", background)
	if img := root.Get("background-image"); img != "none" {
		setIfPresent(inner, "background-image", img)
	}

	padding := paddingOf(root)
	if isZeroBox(padding) {
		padding = opts.Padding
	}
	dom.SetStyleProperty(inner, "padding", padding)

	if background == "" {
		background = "transparent"
	}
	dom.SetStyleProperty(inner, "border", "1px solid "+background)

	radius := strings.TrimSpace(root.Get("border-radius"))
	if radius == "" {
		radius = DefaultRadius
	}
	dom.SetStyleProperty(inner, "border-radius", radius)

	setIfPresent(inner, "font-family", root.Get("font-family"))
	setIfPresent(inner, "font-size", root.Get("font-size"))
	setIfPresent(inner, "line-height", root.Get("line-height"))
	setIfPresent(inner, "color", root.Get("color"))
	dom.SetStyleProperty(inner, "box-sizing", "border-box")

	dom.MoveChildren(inner, clone)
	outer.AppendChild(inner)
	return outer
}

// paddingOf returns the padding shorthand, composing it from the four
// sides when the resolver did not report one.
func paddingOf(root PropertyMap) string {
	if p := strings.TrimSpace(root.Get("padding")); p != "" {
		return p
	}
	sides := []string{
		strings.TrimSpace(root.Get("padding-top")),
		strings.TrimSpace(root.Get("padding-right")),
		strings.TrimSpace(root.Get("padding-bottom")),
		strings.TrimSpace(root.Get("padding-left")),
	}
	for _, s := range sides {
		if s == "" {
			return ""
		}
	}
	if sides[0] == sides[1] && sides[1] == sides[2] && sides[2] == sides[3] {
		return sides[0]
	}
	return strings.Join(sides, " ")
}

// isZeroBox reports whether a box shorthand paints no space.
func isZeroBox(v string) bool {
	for _, part := range strings.Fields(v) {
		if part != "0" && part != "0px" {
			return false
		}
	}
	return true
}
