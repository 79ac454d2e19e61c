package md2wechat

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Payload is what a copy command places on the clipboard.
type Payload struct {
	HTML string `json:"html"` // text/html flavour
	Text string `json:"text"` // text/plain flavour
}

// Sink receives the payload of a successful copy.
type Sink interface {
	Write(ctx context.Context, p Payload) error
}

// Compile-time interface checks.
var (
	_ Sink = (*WriterSink)(nil)
	_ Sink = (*ClipboardSink)(nil)
)

// WriterSink writes the HTML flavour of a payload to an io.Writer.
type WriterSink struct {
	W io.Writer
}

// Write implements Sink.
func (s *WriterSink) Write(ctx context.Context, p Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.W, p.HTML); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}

// ClipboardFormat selects which payload flavours go to the system clipboard.
type ClipboardFormat int

// Clipboard formats.
const (
	ClipboardHTML   ClipboardFormat = iota // text/html with a text/plain fallback
	ClipboardMarkup                        // markup as text, for HTML-source paste boxes
	ClipboardText                          // plain text only
)

// ClipboardSink writes a payload to the system clipboard.
//
// With ClipboardHTML the HTML flavour is written through the platform
// utility (wl-copy or xclip, osascript, PowerShell). When none is
// installed the plain-text flavour is written instead.
type ClipboardSink struct {
	Format ClipboardFormat

	writeRich  func(ctx context.Context, html, text string) error
	writePlain func(string) error
}

// NewClipboardSink creates a ClipboardSink for the given format.
func NewClipboardSink(format ClipboardFormat) *ClipboardSink {
	return &ClipboardSink{Format: format}
}

// Write implements Sink.
func (s *ClipboardSink) Write(ctx context.Context, p Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.Format {
	case ClipboardMarkup:
		return s.plain(p.HTML)
	case ClipboardText:
		return s.plain(p.Text)
	}

	writeRich := s.writeRich
	if writeRich == nil {
		writeRich = writeRichClipboard
	}
	err := writeRich(ctx, p.HTML, p.Text)
	if errors.Is(err, errNoRichClipboard) {
		return s.plain(p.Text)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	return nil
}

// plain writes text as the only clipboard flavour.
func (s *ClipboardSink) plain(text string) error {
	write := s.writePlain
	if write == nil {
		if clipboard.Unsupported {
			return fmt.Errorf("%w: no clipboard utility available", ErrCopyFailed)
		}
		write = clipboard.WriteAll
	}
	if err := write(text); err != nil {
		return fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	return nil
}
