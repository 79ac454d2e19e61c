// Package dom provides the tree operations the exporter performs on
// golang.org/x/net/html nodes.
//
// # Cloning
//
// Clone copies a subtree and returns two element sequences captured during
// the same walk: the source elements and their copies, both in document
// order with the root first. Index i in one sequence always names the node
// at the same tree position as index i in the other, which is what lets
// per-node styling run over the pair without re-matching nodes.
//
// # Inline Styles
//
// Style helpers read and write the style attribute as a list of CSS
// declarations parsed with github.com/aymerick/douceur. SetStyleProperty
// behaves like CSSOM style.setProperty: an existing declaration of the same
// property is replaced in place, otherwise the declaration is appended.
package dom
