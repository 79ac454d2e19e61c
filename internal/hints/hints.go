// Package hints appends actionable advice to CLI error messages.
// Every hint reads "\n  hint: <text>".
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-md2wechat/internal/fileutil"
)

// IsInContainer reports whether the process runs in a Docker container.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// GOOS is overridable in tests.
var GOOS = runtime.GOOS

// ForBrowserConnect suggests the browser environment variables that are
// missing for the current environment.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}

	return formatHints(hints)
}

// ForTimeout suggests a longer timeout.
func ForTimeout() string {
	return format("for long articles or slow image hosts, raise --timeout")
}

// ForConfigNotFound suggests --config and the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), ".config/go-md2wechat") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory is shown when the output file cannot be created.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForThemeNotFound lists the available themes.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + " (see md2wechat themes)")
}

// ForClipboard names the clipboard utility the platform needs, and the
// stdout fallback.
func ForClipboard() string {
	switch GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return format("install xclip, xsel or wl-clipboard, or use --to stdout")
	default:
		return format("use --to stdout or --to file -o out.html")
	}
}

// ForCopyRejected is shown when the browser refused the copy command.
func ForCopyRejected() string {
	return format("retry with --to clipboard, which does not depend on the browser's copy permission")
}

// filepathSlash normalises Windows separators for matching.
func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
