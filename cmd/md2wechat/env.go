package main

import (
	"context"
	"io"
	"os"
	"time"

	md2wechat "github.com/alnah/go-md2wechat"
)

// Exporter is the part of *md2wechat.Exporter the commands use.
type Exporter interface {
	Render(ctx context.Context, in md2wechat.Input) (*md2wechat.Preview, error)
	Export(ctx context.Context, in md2wechat.Input) (*md2wechat.Result, error)
	Copy(ctx context.Context, in md2wechat.Input, c md2wechat.Committer) error
	OpenDocument(ctx context.Context, sink md2wechat.Sink) (md2wechat.LiveDocument, error)
	Theme() string
	Close() error
}

// Compile-time interface implementation check.
var _ Exporter = (*md2wechat.Exporter)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, the clipboard and exporter construction.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Clipboard   md2wechat.Sink
	NewExporter func(opts ...md2wechat.Option) (Exporter, error)
}

// DefaultEnv returns the production environment: real stdio, the system
// clipboard and a Chrome-backed exporter.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Clipboard:   md2wechat.NewClipboardSink(md2wechat.ClipboardHTML),
		NewExporter: newExporter,
	}
}

func newExporter(opts ...md2wechat.Option) (Exporter, error) {
	exp, err := md2wechat.NewExporter(opts...)
	if err != nil {
		return nil, err
	}
	return exp, nil
}
