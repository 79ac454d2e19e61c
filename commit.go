package md2wechat

import (
	"context"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"golang.org/x/net/html"

	"github.com/alnah/go-md2wechat/internal/dom"
)

// HostAttr identifies the temporary host element in the live document.
const HostAttr = "data-md2wechat-host"

// hostStyle keeps the host selectable while placing it outside the viewport
// and under every other layer.
const hostStyle = "position:fixed;top:-9999px;left:-9999px;z-index:-1000;"

// Committer places a detached fragment on the clipboard.
type Committer interface {
	Commit(ctx context.Context, fragment *html.Node) error
}

// Document is the selection surface of a live page.
//
// Hosts are addressed by the value of their HostAttr attribute.
// RemoveHost of an id that is not attached is not an error.
type Document interface {
	AppendHost(ctx context.Context, host *html.Node) error
	RemoveHost(ctx context.Context, id string) error
	ClearSelection(ctx context.Context) error
	// SelectNode replaces the selection with a range covering the first
	// element child of the host.
	SelectNode(ctx context.Context, id string) error
	// ExecCopy runs the platform copy command on the current selection and
	// reports whether the platform accepted it. A rejected copy returns
	// false. Errors wrapping ErrCopyFailed mean the payload was produced
	// but its sink refused it; any other error is unexpected.
	ExecCopy(ctx context.Context) (bool, error)
}

// Compile-time interface check.
var _ Committer = (*HostCommitter)(nil)

// HostCommitter commits a fragment by attaching it to a Document inside an
// off-screen host, selecting it and running the copy command.
// The host is removed and the selection cleared on every exit path.
type HostCommitter struct {
	Doc Document

	newID func() string
}

// NewHostCommitter creates a HostCommitter on doc.
func NewHostCommitter(doc Document) *HostCommitter {
	return &HostCommitter{Doc: doc}
}

// Commit implements Committer. fragment must be detached; it is detached
// again when Commit returns.
func (c *HostCommitter) Commit(ctx context.Context, fragment *html.Node) (err error) {
	if fragment == nil {
		return fmt.Errorf("%w: nil fragment", ErrUnexpected)
	}
	if fragment.Parent != nil || fragment.PrevSibling != nil || fragment.NextSibling != nil {
		return fmt.Errorf("%w: fragment is attached to a tree", ErrUnexpected)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	id := c.hostID()
	host := dom.NewElement("div",
		html.Attribute{Key: HostAttr, Val: id},
		html.Attribute{Key: dom.StyleAttr, Val: hostStyle},
	)
	host.AppendChild(fragment)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
		err = errors.Join(err, c.release(context.WithoutCancel(ctx), id))
		if fragment.Parent == host {
			host.RemoveChild(fragment)
		}
	}()

	if err := c.Doc.AppendHost(ctx, host); err != nil {
		return fmt.Errorf("%w: attaching host: %v", ErrUnexpected, err)
	}
	if err := c.Doc.ClearSelection(ctx); err != nil {
		return fmt.Errorf("%w: clearing selection: %v", ErrUnexpected, err)
	}
	if err := c.Doc.SelectNode(ctx, id); err != nil {
		return fmt.Errorf("%w: selecting fragment: %v", ErrUnexpected, err)
	}

	ok, err := c.Doc.ExecCopy(ctx)
	switch {
	case errors.Is(err, ErrCopyFailed):
		return err
	case err != nil:
		return fmt.Errorf("%w: copying: %v", ErrUnexpected, err)
	case !ok:
		return fmt.Errorf("%w: platform rejected the copy command", ErrCopyFailed)
	}
	return nil
}

// release removes the host and clears the selection. Both steps run even
// when the first one fails or panics.
func (c *HostCommitter) release(ctx context.Context, id string) error {
	return errors.Join(
		guard("removing host", func() error { return c.Doc.RemoveHost(ctx, id) }),
		guard("clearing selection", func() error { return c.Doc.ClearSelection(ctx) }),
	)
}

func guard(step string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrUnexpected, step, r)
		}
	}()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}
	return nil
}

func (c *HostCommitter) hostID() string {
	if c.newID != nil {
		return c.newID()
	}
	return ulid.Make().String()
}
