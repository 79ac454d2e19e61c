package dom

import "golang.org/x/net/html"

// Clone returns a detached deep copy of root along with the aligned
// element sequences of the source and the copy.
//
// Both sequences are filled during a single pre-order walk, so
// len(sources) == len(clones) and clones[i] is the copy of sources[i].
// Text, comment and other non-element nodes are copied into the tree but
// are not part of the sequences.
func Clone(root *html.Node) (clone *html.Node, sources, clones []*html.Node) {
	if root == nil {
		return nil, nil, nil
	}

	var walk func(src *html.Node) *html.Node
	walk = func(src *html.Node) *html.Node {
		dst := shallowCopy(src)
		if src.Type == html.ElementNode {
			sources = append(sources, src)
			clones = append(clones, dst)
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			dst.AppendChild(walk(c))
		}
		return dst
	}

	clone = walk(root)
	return clone, sources, clones
}

// shallowCopy copies a node without its links or children.
func shallowCopy(n *html.Node) *html.Node {
	attrs := make([]html.Attribute, len(n.Attr))
	copy(attrs, n.Attr)
	return &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      attrs,
	}
}

// Flatten returns root and all of its element descendants in document order.
// Root is included only if it is an element.
func Flatten(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ElementPath returns the element-child indexes leading from ancestor down
// to n. It returns nil, false if ancestor is not an ancestor of n.
func ElementPath(ancestor, n *html.Node) ([]int, bool) {
	var path []int
	for cur := n; cur != ancestor; cur = cur.Parent {
		if cur == nil || cur.Parent == nil {
			return nil, false
		}
		path = append(path, elementIndex(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// elementIndex returns the position of n among its parent's element children.
func elementIndex(n *html.Node) int {
	idx := 0
	for c := n.Parent.FirstChild; c != nil && c != n; c = c.NextSibling {
		if c.Type == html.ElementNode {
			idx++
		}
	}
	return idx
}
