package inliner

import (
	"errors"
	"maps"

	"golang.org/x/net/html"
)

// ErrStyleResolve indicates the resolver could not produce a style for a node.
var ErrStyleResolve = errors.New("style resolution failed")

// PseudoBefore names the ::before pseudo-element for ResolvePseudo.
const PseudoBefore = "before"

// PropertyMap holds resolved CSS values keyed by canonical property name.
type PropertyMap map[string]string

// Get returns the value of prop, or "" if it was not resolved.
func (m PropertyMap) Get(prop string) string {
	if m == nil {
		return ""
	}
	return m[prop]
}

// StyleResolver supplies resolved (computed) styles for source nodes.
type StyleResolver interface {
	// Resolve returns the resolved style of element n.
	Resolve(n *html.Node) (PropertyMap, error)

	// ResolvePseudo returns the resolved style of a pseudo-element of n,
	// e.g. PseudoBefore.
	ResolvePseudo(n *html.Node, pseudo string) (PropertyMap, error)
}

// MapResolver is a StyleResolver backed by literal property maps.
// Nodes without an entry resolve to an empty map.
// The zero value is ready to use.
type MapResolver struct {
	styles map[*html.Node]PropertyMap
	pseudo map[*html.Node]map[string]PropertyMap
}

// NewMapResolver creates an empty MapResolver.
func NewMapResolver() *MapResolver {
	return &MapResolver{}
}

// Set records the resolved style of n. The map is copied.
func (r *MapResolver) Set(n *html.Node, style PropertyMap) {
	if r.styles == nil {
		r.styles = make(map[*html.Node]PropertyMap)
	}
	r.styles[n] = maps.Clone(style)
}

// SetPseudo records the resolved style of n's pseudo-element. The map is copied.
func (r *MapResolver) SetPseudo(n *html.Node, pseudo string, style PropertyMap) {
	if r.pseudo == nil {
		r.pseudo = make(map[*html.Node]map[string]PropertyMap)
	}
	if r.pseudo[n] == nil {
		r.pseudo[n] = make(map[string]PropertyMap)
	}
	r.pseudo[n][pseudo] = maps.Clone(style)
}

// Len returns the number of nodes with a recorded style.
func (r *MapResolver) Len() int {
	return len(r.styles)
}

// Resolve implements StyleResolver.
func (r *MapResolver) Resolve(n *html.Node) (PropertyMap, error) {
	if style, ok := r.styles[n]; ok {
		return style, nil
	}
	return PropertyMap{}, nil
}

// ResolvePseudo implements StyleResolver.
func (r *MapResolver) ResolvePseudo(n *html.Node, pseudo string) (PropertyMap, error) {
	if style, ok := r.pseudo[n][pseudo]; ok {
		return style, nil
	}
	return PropertyMap{}, nil
}

// Compile-time interface check.
var _ StyleResolver = (*MapResolver)(nil)
