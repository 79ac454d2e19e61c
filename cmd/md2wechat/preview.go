package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
)

// runPreview writes the themed preview page. The page keeps its classes
// and stylesheet, so it is for checking a theme in a browser, not for
// pasting.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printPreviewUsage(env.Stdout)
		}
		return err
	}

	cfg, settings, err := loadSettings(flags.common.config)
	if err != nil {
		return err
	}
	mergeStyleFlags(&flags.style, cfg)

	in, err := readInput(positional, env.Stdin)
	if err != nil {
		return err
	}
	if in.CSS, err = resolveExtraCSS(flags.style.css, cfg); err != nil {
		return err
	}

	opts, err := exporterOptions(cfg, newLogger(flags.common, settings, env.Stderr))
	if err != nil {
		return err
	}
	exp, err := env.NewExporter(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = exp.Close() }()

	preview, err := exp.Render(ctx, in)
	if err != nil {
		return err
	}

	out := resolvePreviewOutput(flags.output, positional[0])
	if out == stdinArg {
		_, err := fmt.Fprint(env.Stdout, preview.HTML)
		return err
	}
	if err := os.WriteFile(out, []byte(preview.HTML), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", out)
	}
	return nil
}

// resolvePreviewOutput picks the preview file: the -o value, or the input
// path with an .html extension. Stdin input goes to stdout.
//
//	("", "post.md")   -> "post.html"
//	("", "-")         -> "-"
//	("a.html", "-")   -> "a.html"
func resolvePreviewOutput(flagOutput, input string) string {
	if flagOutput != "" {
		return flagOutput
	}
	if input == stdinArg {
		return stdinArg
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
}
