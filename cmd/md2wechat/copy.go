package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	md2wechat "github.com/alnah/go-md2wechat"
	"github.com/alnah/go-md2wechat/internal/config"
)

// targetError records which export target a copy failure came from, so the
// hint can name the right fix.
type targetError struct {
	target string
	err    error
}

func (e *targetError) Error() string { return e.err.Error() }
func (e *targetError) Unwrap() error { return e.err }

// runCopy exports one article and commits it to the configured target.
func runCopy(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCopyFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCopyUsage(env.Stdout)
		}
		return err
	}

	cfg, settings, err := loadSettings(flags.common.config)
	if err != nil {
		return err
	}
	mergeCopyFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	in, err := readInput(positional, env.Stdin)
	if err != nil {
		return err
	}
	if in.CSS, err = resolveExtraCSS(flags.style.css, cfg); err != nil {
		return err
	}

	log := newLogger(flags.common, settings, env.Stderr)
	opts, err := exporterOptions(cfg, log)
	if err != nil {
		return err
	}

	exp, err := env.NewExporter(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = exp.Close() }()

	start := env.Now()

	if cfg.Export.Simulate {
		res, err := exp.Export(ctx, in)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Stdout, res.Sanitized)
		return err
	}

	doc, release, err := openTarget(ctx, exp, cfg.Export, env)
	if err != nil {
		return err
	}
	copyErr := exp.Copy(ctx, in, md2wechat.NewHostCommitter(doc))
	if err := errors.Join(copyErr, release()); err != nil {
		return &targetError{target: cfg.Export.Target, err: err}
	}

	printCopied(env, flags.common, cfg.Export, exp.Theme(), env.Now().Sub(start))
	return nil
}

// openTarget returns the document the fragment is committed into and a
// release function for it.
func openTarget(ctx context.Context, exp Exporter, ec config.ExportConfig, env *Environment) (md2wechat.Document, func() error, error) {
	noop := func() error { return nil }

	switch ec.Target {
	case config.TargetClipboard:
		return md2wechat.NewBlankDocument(env.Clipboard), noop, nil
	case config.TargetStdout:
		return md2wechat.NewBlankDocument(&md2wechat.WriterSink{W: env.Stdout}), noop, nil
	case config.TargetFile:
		f, err := os.OpenFile(ec.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		release := func() error {
			if err := f.Close(); err != nil {
				return fmt.Errorf("%w: %v", ErrWriteOutput, err)
			}
			return nil
		}
		return md2wechat.NewBlankDocument(&md2wechat.WriterSink{W: f}), release, nil
	case config.TargetChrome:
		doc, err := exp.OpenDocument(ctx, env.Clipboard)
		if err != nil {
			return nil, nil, err
		}
		return doc, doc.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", md2wechat.ErrInvalidTarget, ec.Target)
	}
}

// printCopied reports a successful copy. Nothing is printed for the stdout
// target, whose output is the fragment itself.
func printCopied(env *Environment, f commonFlags, ec config.ExportConfig, theme string, elapsed time.Duration) {
	if f.quiet || ec.Target == config.TargetStdout {
		return
	}

	dest := "clipboard"
	if ec.Target == config.TargetFile {
		dest = ec.Output
	}

	if f.verbose {
		fmt.Fprintf(env.Stdout, "Copied to %s (theme %s, %v)\n", dest, theme, elapsed.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(env.Stdout, "Copied to %s\n", dest)
}
