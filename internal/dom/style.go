package dom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// StyleAttr is the inline style attribute name.
const StyleAttr = "style"

// Style parses n's style attribute into declarations, in source order.
// A missing or unparseable attribute yields no declarations.
func Style(n *html.Node) []*css.Declaration {
	raw, ok := Attr(n, StyleAttr)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	decls, err := parseDeclarations(raw)
	if err != nil {
		return nil
	}
	return decls
}

// parseDeclarations terminates the last declaration before parsing, since
// the parser only commits a value when it reaches a semicolon.
func parseDeclarations(raw string) ([]*css.Declaration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !strings.HasSuffix(raw, ";") {
		raw += ";"
	}
	return parser.ParseDeclarations(raw)
}

// StyleValue returns the value of prop in n's inline style.
// When a property is declared twice the last declaration wins.
func StyleValue(n *html.Node, prop string) (string, bool) {
	var (
		val   string
		found bool
	)
	for _, d := range Style(n) {
		if strings.EqualFold(d.Property, prop) {
			val, found = d.Value, true
		}
	}
	return val, found
}

// SetStyleProperty sets prop to value in n's inline style, replacing an
// existing declaration of prop or appending a new one.
// An empty value removes the property.
func SetStyleProperty(n *html.Node, prop, value string) {
	raw, _ := Attr(n, StyleAttr)
	decls, err := parseDeclarations(raw)
	if err != nil {
		// Keep text the parser could not read.
		if value != "" {
			if raw = strings.TrimSpace(raw); raw != "" && !strings.HasSuffix(raw, ";") {
				raw += ";"
			}
			SetAttr(n, StyleAttr, raw+FormatDeclaration(prop, value))
		}
		return
	}

	out := make([]*css.Declaration, 0, len(decls)+1)
	replaced := false
	for _, d := range decls {
		if !strings.EqualFold(d.Property, prop) {
			out = append(out, d)
			continue
		}
		if replaced || value == "" {
			continue
		}
		out = append(out, &css.Declaration{Property: prop, Value: value})
		replaced = true
	}
	if !replaced && value != "" {
		out = append(out, &css.Declaration{Property: prop, Value: value})
	}

	SetAttr(n, StyleAttr, FormatDeclarations(out))
}

// PrependStyle places decls before n's existing inline style text.
// The existing text is kept verbatim.
func PrependStyle(n *html.Node, decls string) {
	if decls == "" {
		return
	}
	existing, _ := Attr(n, StyleAttr)
	SetAttr(n, StyleAttr, decls+existing)
}

// FormatDeclaration renders a single "property:value;" pair.
func FormatDeclaration(prop, value string) string {
	return prop + ":" + value + ";"
}

// FormatDeclarations renders declarations as concatenated "property:value;"
// pairs, keeping !important flags.
func FormatDeclarations(decls []*css.Declaration) string {
	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteByte(';')
	}
	return b.String()
}
