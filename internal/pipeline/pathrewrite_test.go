package pipeline

// Notes:
// - Tests RewriteImagePaths through its public API, plus the two helpers
//   whose edge cases are easier to state directly.
// - Path traversal tests check the observable behavior (path left alone).

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func testSourceDir() string {
	if runtime.GOOS == "windows" {
		return `C:\docs`
	}
	return "/docs"
}

// ---------------------------------------------------------------------------
// TestRewriteImagePaths
// ---------------------------------------------------------------------------

func TestRewriteImagePaths(t *testing.T) {
	t.Parallel()

	sourceDir := testSourceDir()

	tests := []struct {
		name      string
		html      string
		sourceDir string
		want      string
	}{
		{"relative with dot slash", `<img src="./images/logo.png"/>`, sourceDir, `src="file://`},
		{"relative without dot slash", `<img src="images/logo.png"/>`, sourceDir, `src="file://`},
		{"absolute path unchanged", `<img src="/abs/logo.png"/>`, sourceDir, `src="/abs/logo.png"`},
		{"https unchanged", `<img src="https://example.com/logo.png"/>`, sourceDir, `src="https://example.com/logo.png"`},
		{"data URI unchanged", `<img src="data:image/png;base64,ABC123"/>`, sourceDir, `src="data:image/png;base64,ABC123"`},
		{"file URL unchanged", `<img src="file:///already/absolute.png"/>`, sourceDir, `src="file:///already/absolute.png"`},
		{"protocol-relative unchanged", `<img src="//cdn.example.com/logo.png"/>`, sourceDir, `src="//cdn.example.com/logo.png"`},
		{"empty sourceDir unchanged", `<img src="./logo.png"/>`, "", `src="./logo.png"`},
		{"relative link unchanged", `<a href="./other.md">Link</a>`, sourceDir, `href="./other.md"`},
		{"video unchanged", `<video src="./video.mp4"></video>`, sourceDir, `src="./video.mp4"`},
		{"nested image rewritten", `<div><p><img src="./nested.png"/></p></div>`, sourceDir, `src="file://`},
		{"empty src unchanged", `<img src=""/>`, sourceDir, `src=""`},
		{"no src unchanged", `<img alt="no src"/>`, sourceDir, `alt="no src"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteImagePaths(tt.html, tt.sourceDir)
			if err != nil {
				t.Fatalf("RewriteImagePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RewriteImagePaths() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestRewriteImagePaths_PathTraversal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"parent traversal blocked", `<img src="../../../etc/passwd">`, `src="../../../etc/passwd"`},
		{"traversal in middle blocked", `<img src="images/../../../etc/passwd">`, `src="images/../../../etc/passwd"`},
		{"subdirectory allowed", `<img src="./images/logo.png">`, `src="file://`},
		{"deep path allowed", `<img src="images/sub/deep/file.png">`, `src="file://`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteImagePaths(tt.html, testSourceDir())
			if err != nil {
				t.Fatalf("RewriteImagePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RewriteImagePaths() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestRewriteImagePaths_FragmentKept(t *testing.T) {
	t.Parallel()

	got, err := RewriteImagePaths(`<p>你好</p><img src="./logo.png" alt="Logo" width="100"><p>World</p>`, testSourceDir())
	if err != nil {
		t.Fatalf("RewriteImagePaths() error = %v", err)
	}

	if strings.Contains(got, "<html>") || strings.Contains(got, "<body>") {
		t.Errorf("fragment was wrapped: %q", got)
	}
	for _, want := range []string{"<p>你好</p>", "<p>World</p>", `alt="Logo"`, `width="100"`, `src="file://`} {
		if !strings.Contains(got, want) {
			t.Errorf("result %q should contain %q", got, want)
		}
	}
}

func TestRewriteImagePaths_URLEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"spaces", `<img src="./my images/logo.png">`, "my%20images"},
		{"hash", `<img src="./docs/file#1.png">`, "file%231.png"},
		{"unicode", `<img src="./图片/a.png">`, "%E5%9B%BE%E7%89%87"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteImagePaths(tt.html, testSourceDir())
			if err != nil {
				t.Fatalf("RewriteImagePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RewriteImagePaths() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsRelativePath, TestIsPathUnderDir - Helpers
// ---------------------------------------------------------------------------

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"./image.png", true},
		{"images/logo.png", true},
		{"../parent.png", true},
		{"file.png", true},
		{"", false},
		{"http://example.com/img.png", false},
		{"https://example.com/img.png", false},
		{"file:///abs/path.png", false},
		{"data:image/png;base64,ABC", false},
		{"//cdn.example.com/img.png", false},
		{"#anchor", false},
		{"/absolute/path.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := isRelativePath(tt.path); got != tt.want {
				t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsPathUnderDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		absPath string
		dir     string
		want    bool
	}{
		{"direct child", "/docs/image.png", "/docs", true},
		{"nested child", "/docs/images/logo.png", "/docs", true},
		{"parent directory", "/etc/passwd", "/docs", false},
		{"sibling directory", "/other/file.png", "/docs", false},
		{"dir with trailing slash", "/docs/image.png", "/docs/", true},
		{"similar prefix", "/docs-other/image.png", "/docs", false},
		{"dotdot-prefixed name", "/docs/..hidden/a.png", "/docs", true},
		{"exact match", "/docs", "/docs", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			absPath := filepath.FromSlash(tt.absPath)
			dir := filepath.FromSlash(tt.dir)
			if got := isPathUnderDir(absPath, dir); got != tt.want {
				t.Errorf("isPathUnderDir(%q, %q) = %v, want %v", absPath, dir, got, tt.want)
			}
		})
	}
}
