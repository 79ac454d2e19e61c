package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	md2wechat "github.com/alnah/go-md2wechat"
	"github.com/alnah/go-md2wechat/internal/config"
	"github.com/alnah/go-md2wechat/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrReadCSS      = errors.New("failed to read CSS file")
	ErrWriteOutput  = errors.New("failed to write output file")
	ErrUsage        = errors.New("invalid usage")
)

// File permission constants.
const (
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// stdinArg reads the article from standard input.
const stdinArg = "-"

// loadSettings builds the effective config: defaults, then the config file
// (--config or MD2WECHAT_CONFIG), then environment variables. Flags are
// merged by the caller.
func loadSettings(flagConfig string) (*config.Config, *envSettings, error) {
	env := loadEnvSettings()

	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvSettings(env, cfg)
	return cfg, env, nil
}

// newLogger returns the logger for a command. -v wins over -q, and both
// win over MD2WECHAT_LOG_LEVEL. The default level is warn.
func newLogger(f commonFlags, env *envSettings, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if env.LogLevel != "" {
		level = logging.ParseLevel(env.LogLevel)
	}
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return logging.NewWithWriter(w, level)
}

// exporterOptions translates cfg into exporter options.
func exporterOptions(cfg *config.Config, log *slog.Logger) ([]md2wechat.Option, error) {
	timeout, err := cfg.Browser.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	opts := []md2wechat.Option{
		md2wechat.WithTimeout(timeout),
		md2wechat.WithLogger(log),
		md2wechat.WithHardWraps(cfg.Markdown.HardWraps),
	}
	if cfg.Theme.Name != "" {
		opts = append(opts, md2wechat.WithTheme(cfg.Theme.Name))
	}
	if cfg.Markdown.HighlightStyle != "" {
		opts = append(opts, md2wechat.WithHighlightStyle(cfg.Markdown.HighlightStyle))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2wechat.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Export.Padding != "" {
		opts = append(opts, md2wechat.WithPadding(cfg.Export.Padding))
	}
	return opts, nil
}

// readInput reads the article named by args: a file path, or "-" for stdin.
// Relative image paths resolve against the file's directory.
func readInput(args []string, stdin io.Reader) (md2wechat.Input, error) {
	switch {
	case len(args) == 0:
		return md2wechat.Input{}, ErrNoInput
	case len(args) > 1:
		return md2wechat.Input{}, fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	}

	if args[0] == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return md2wechat.Input{}, fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
		}
		return md2wechat.Input{Markdown: string(data)}, nil
	}

	path := args[0]
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input
	if err != nil {
		return md2wechat.Input{}, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return md2wechat.Input{
		Markdown:  string(data),
		SourceDir: dir,
		Title:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}, nil
}

// resolveExtraCSS returns the CSS appended after the theme: the --css file
// when given, otherwise theme.css from the config.
func resolveExtraCSS(cssFile string, cfg *config.Config) (string, error) {
	if cssFile == "" {
		return cfg.Theme.CSS, nil
	}
	data, err := os.ReadFile(cssFile) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(data), nil
}
