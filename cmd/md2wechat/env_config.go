package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-md2wechat/internal/config"
)

// Environment variable names.
const (
	envConfig    = "MD2WECHAT_CONFIG"
	envTheme     = "MD2WECHAT_THEME"
	envTarget    = "MD2WECHAT_TARGET"
	envOutput    = "MD2WECHAT_OUTPUT"
	envTimeout   = "MD2WECHAT_TIMEOUT"
	envAssetPath = "MD2WECHAT_ASSET_PATH"
	envLogLevel  = "MD2WECHAT_LOG_LEVEL"
	envContainer = "MD2WECHAT_CONTAINER"
)

// envSettings holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envSettings struct {
	ConfigPath string // MD2WECHAT_CONFIG: config name or path
	Theme      string // MD2WECHAT_THEME: theme name, path, or CSS
	Target     string // MD2WECHAT_TARGET: clipboard, stdout, file, chrome
	Output     string // MD2WECHAT_OUTPUT: output file for the file target
	Timeout    string // MD2WECHAT_TIMEOUT: Go duration
	AssetPath  string // MD2WECHAT_ASSET_PATH: custom asset directory
	LogLevel   string // MD2WECHAT_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid MD2WECHAT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfig:    true,
	envTheme:     true,
	envTarget:    true,
	envOutput:    true,
	envTimeout:   true,
	envAssetPath: true,
	envLogLevel:  true,
	envContainer: true,
}

// loadEnvSettings reads the MD2WECHAT_* variables.
func loadEnvSettings() *envSettings {
	return &envSettings{
		ConfigPath: os.Getenv(envConfig),
		Theme:      os.Getenv(envTheme),
		Target:     os.Getenv(envTarget),
		Output:     os.Getenv(envOutput),
		Timeout:    os.Getenv(envTimeout),
		AssetPath:  os.Getenv(envAssetPath),
		LogLevel:   os.Getenv(envLogLevel),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized MD2WECHAT_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2WECHAT_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvSettings overrides cfg with every variable that is set.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by the merge helpers).
func applyEnvSettings(env *envSettings, cfg *config.Config) {
	if env.Theme != "" {
		cfg.Theme.Name = env.Theme
	}
	if env.Target != "" {
		cfg.Export.Target = env.Target
	}
	if env.Output != "" {
		cfg.Export.Output = env.Output
	}
	if env.Timeout != "" {
		cfg.Browser.Timeout = env.Timeout
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
