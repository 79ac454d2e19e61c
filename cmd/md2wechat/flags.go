package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2wechat/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds the flags that shape the preview page.
type styleFlags struct {
	theme       string
	css         string // path to extra CSS appended after the theme
	highlight   string
	assetPath   string
	noHardWraps bool
}

// copyFlags holds all flags for the copy command.
type copyFlags struct {
	common   commonFlags
	style    styleFlags
	to       string
	output   string
	timeout  string
	padding  string
	simulate bool
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common commonFlags
	style  styleFlags
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addStyleFlags adds preview styling flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.theme, "theme", "t", "", "theme name, CSS file, or CSS text")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the theme")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding embedded themes and templates")
	fs.BoolVar(&f.noHardWraps, "no-hard-wraps", false, "keep single newlines inside paragraphs")
}

// newFlagSet returns a FlagSet that reports errors to the caller only.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseCopyFlags parses copy arguments. Returns flag.ErrHelp unwrapped for
// -h/--help and ErrUsage for anything else pflag rejects.
func parseCopyFlags(args []string) (*copyFlags, []string, error) {
	f := &copyFlags{}
	fs := newFlagSet("copy")
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	fs.StringVar(&f.to, "to", "", "target: clipboard, stdout, file, chrome")
	fs.StringVarP(&f.output, "output", "o", "", "output file (implies --to file)")
	fs.StringVar(&f.timeout, "timeout", "", "export timeout, e.g. 30s, 1m")
	fs.StringVar(&f.padding, "padding", "", "wrapper padding when the theme sets none")
	fs.BoolVar(&f.simulate, "simulate", false, "print what the editor keeps after paste")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview arguments.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	f := &previewFlags{}
	fs := newFlagSet("preview")
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: next to input)")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// mergeStyleFlags applies styling flags over cfg (CLI wins).
func mergeStyleFlags(f *styleFlags, cfg *config.Config) {
	if f.theme != "" {
		cfg.Theme.Name = f.theme
	}
	if f.highlight != "" {
		cfg.Markdown.HighlightStyle = f.highlight
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.noHardWraps {
		cfg.Markdown.HardWraps = false
	}
}

// mergeCopyFlags applies copy flags over cfg (CLI wins). An output path
// without --to selects the file target.
func mergeCopyFlags(f *copyFlags, cfg *config.Config) {
	mergeStyleFlags(&f.style, cfg)
	if f.output != "" {
		cfg.Export.Output = f.output
		if f.to == "" {
			cfg.Export.Target = config.TargetFile
		}
	}
	if f.to != "" {
		cfg.Export.Target = f.to
	}
	if f.timeout != "" {
		cfg.Browser.Timeout = f.timeout
	}
	if f.padding != "" {
		cfg.Export.Padding = f.padding
	}
	if f.simulate {
		cfg.Export.Simulate = true
	}
}
