package inliner

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2wechat/internal/dom"
)

// Sentinel errors for the transform.
var (
	ErrNilRoot    = errors.New("nil root node")
	ErrMisaligned = errors.New("source and clone sequences differ in length")
)

// Options configures Inline.
type Options struct {
	Wrap WrapOptions
}

// Inline returns a detached, fully inline-styled copy of root wrapped in
// the outer/inner section pair. root and its subtree are not modified.
func Inline(root *html.Node, r StyleResolver, opts Options) (*html.Node, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	clone, sources, clones := dom.Clone(root)
	if len(sources) != len(clones) {
		return nil, fmt.Errorf("%w: %d sources, %d clones", ErrMisaligned, len(sources), len(clones))
	}

	var rootStyle PropertyMap
	for i, src := range sources {
		computed, err := r.Resolve(src)
		if err != nil {
			return nil, fmt.Errorf("%w: <%s> at index %d: %v", ErrStyleResolve, src.Data, i, err)
		}
		if i == 0 {
			rootStyle = computed
		}

		dom.PrependStyle(clones[i], Declarations(computed))

		d, err := DecorationFor(src, r)
		if err != nil {
			return nil, err
		}
		if d != nil {
			Materialize(clones[i], *d)
		}
	}

	return Wrap(clone, rootStyle, opts.Wrap), nil
}
