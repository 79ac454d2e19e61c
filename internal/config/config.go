package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2wechat/internal/fileutil"
	"github.com/alnah/go-md2wechat/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxThemeNameLength = 64      // matches asset name validation
	MaxCSSLength       = 1 << 16 // extra CSS appended to the theme
	MaxStyleLength     = 50      // chroma style name
	MaxPathLength      = 4096    // PATH_MAX
	MaxPaddingLength   = 50      // "20px" or "10px 12px 10px 12px"
	MaxDurationLength  = 20      // "30s", "1m30s"
)

// Export targets.
const (
	TargetClipboard = "clipboard"
	TargetStdout    = "stdout"
	TargetFile      = "file"
	TargetChrome    = "chrome"
)

// DefaultTimeout bounds one export when browser.timeout is unset.
const DefaultTimeout = 30 * time.Second

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "go-md2wechat"

// Config holds all configuration for an export.
type Config struct {
	Theme    ThemeConfig    `yaml:"theme"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Export   ExportConfig   `yaml:"export"`
	Browser  BrowserConfig  `yaml:"browser"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// ThemeConfig selects the preview theme.
type ThemeConfig struct {
	Name string `yaml:"name"` // Embedded or custom theme name (empty = "wechat")
	CSS  string `yaml:"css"`  // Extra CSS appended after the theme
}

// MarkdownConfig controls Markdown rendering.
type MarkdownConfig struct {
	HardWraps      bool   `yaml:"hardWraps"`      // Single newlines become <br>
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style for fenced code
}

// ExportConfig controls where the exported fragment goes.
type ExportConfig struct {
	Target   string `yaml:"target"`   // clipboard, stdout, file, chrome
	Output   string `yaml:"output"`   // File path when target is "file"
	Padding  string `yaml:"padding"`  // Wrapper padding when the theme has none
	Simulate bool   `yaml:"simulate"` // Print what the editor keeps after paste
}

// BrowserConfig controls the headless browser.
type BrowserConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// TimeoutDuration parses Browser.Timeout. An empty value yields DefaultTimeout.
func (b BrowserConfig) TimeoutDuration() (time.Duration, error) {
	if b.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: browser.timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: browser.timeout: must be positive, got %s", ErrInvalidValue, b.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and enumerated values. It normalizes
// export.target to lower case, an empty target meaning clipboard.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"theme.name", c.Theme.Name, MaxThemeNameLength},
		{"theme.css", c.Theme.CSS, MaxCSSLength},
		{"markdown.highlightStyle", c.Markdown.HighlightStyle, MaxStyleLength},
		{"export.output", c.Export.Output, MaxPathLength},
		{"export.padding", c.Export.Padding, MaxPaddingLength},
		{"browser.timeout", c.Browser.Timeout, MaxDurationLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	c.Export.Target = strings.ToLower(strings.TrimSpace(c.Export.Target))
	if c.Export.Target == "" {
		c.Export.Target = TargetClipboard
	}
	switch c.Export.Target {
	case TargetClipboard, TargetStdout, TargetChrome:
	case TargetFile:
		if c.Export.Output == "" {
			return fmt.Errorf("%w: export.output: required when export.target is %q", ErrInvalidValue, TargetFile)
		}
	default:
		return fmt.Errorf("%w: export.target: %q (must be clipboard, stdout, file, or chrome)", ErrInvalidValue, c.Export.Target)
	}

	if _, err := c.Browser.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// default theme, hard line breaks, export to the clipboard.
func DefaultConfig() *Config {
	return &Config{
		Markdown: MarkdownConfig{HardWraps: true},
		Export:   ExportConfig{Target: TargetClipboard},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2wechat/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
