package inliner

import (
	"strconv"
	"strings"

	"github.com/alnah/go-md2wechat/internal/dom"
)

// Properties is the ordered set of properties eligible for inlining.
// Declarations are emitted in this order.
var Properties = []string{
	"color", "background-color",
	"font-size", "font-family", "font-weight", "font-style",
	"text-align", "text-decoration", "line-height", "letter-spacing",
	"margin-top", "margin-bottom", "margin-left", "margin-right",
	"padding-top", "padding-bottom", "padding-left", "padding-right",
	"border-top-width", "border-top-style", "border-top-color",
	"border-bottom-width", "border-bottom-style", "border-bottom-color",
	"border-left-width", "border-left-style", "border-left-color",
	"border-right-width", "border-right-style", "border-right-color",
	"border-radius",
	"display", "width", "max-width", "height",
	"list-style-type", "list-style-position",
	"white-space", "word-break", "overflow-x",
	"box-shadow", "text-shadow",
}

// defaultValues are values the paste target is assumed to apply on its own.
var defaultValues = map[string]bool{
	"initial": true,
	"none":    true,
	"normal":  true,
	"auto":    true,
}

// Declarations reduces a resolved style to "property:value;" pairs for
// every entry of Properties worth inlining, in Properties order.
func Declarations(computed PropertyMap) string {
	var b strings.Builder
	for _, prop := range Properties {
		val := strings.TrimSpace(computed.Get(prop))
		if !Include(prop, val) {
			continue
		}
		b.WriteString(dom.FormatDeclaration(prop, val))
	}
	return b.String()
}

// Include reports whether prop with resolved value val is inlined.
//
// Border properties are kept unless the value is "0px" or "none"; every
// other property is dropped when its value is a default keyword.
// A transparent background-color is always dropped so the wrapper's
// background shows through.
func Include(prop, val string) bool {
	if val == "" {
		return false
	}
	if prop == "background-color" && IsTransparent(val) {
		return false
	}
	if strings.HasPrefix(prop, "border") {
		return val != "0px" && val != "none"
	}
	return !defaultValues[strings.ToLower(val)]
}

// IsTransparent reports whether a color value paints nothing: the
// "transparent" keyword or an rgba()/hsla() color with zero alpha.
func IsTransparent(val string) bool {
	v := strings.ToLower(strings.Join(strings.Fields(val), ""))
	if v == "transparent" {
		return true
	}

	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return false
	}
	switch v[:open] {
	case "rgba", "rgb", "hsla", "hsl":
	default:
		return false
	}

	args := v[open+1 : len(v)-1]
	var alpha string
	if i := strings.IndexByte(args, '/'); i >= 0 {
		alpha = args[i+1:]
	} else {
		parts := strings.Split(args, ",")
		if len(parts) != 4 {
			return false
		}
		alpha = parts[3]
	}

	return isZeroAlpha(alpha)
}

// isZeroAlpha parses a CSS alpha component ("0", "0.0", "0%").
func isZeroAlpha(alpha string) bool {
	alpha = strings.TrimSuffix(alpha, "%")
	f, err := strconv.ParseFloat(alpha, 64)
	return err == nil && f == 0
}
