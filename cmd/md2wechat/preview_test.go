package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2wechat "github.com/alnah/go-md2wechat"
)

// ---------------------------------------------------------------------------
// TestRunPreview - Preview page output
// ---------------------------------------------------------------------------

func TestRunPreview_NextToInput(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "post.md", article)

	if err := runPreview(context.Background(), []string{input}, env.Environment); err != nil {
		t.Fatalf("runPreview() error = %v", err)
	}

	out := filepath.Join(dir, "post.html")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading preview: %v", err)
	}
	if !strings.Contains(string(data), "标题") {
		t.Errorf("preview = %q, want rendered article", data)
	}
	if !strings.Contains(env.stdout.String(), "Created "+out) {
		t.Errorf("stdout = %q, want confirmation", env.stdout.String())
	}
}

func TestRunPreview_Stdout(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.Stdin = strings.NewReader(article)

	if err := runPreview(context.Background(), []string{"-"}, env.Environment); err != nil {
		t.Fatalf("runPreview() error = %v", err)
	}
	if !strings.HasPrefix(env.stdout.String(), "<html>") {
		t.Errorf("stdout = %q, want the page", env.stdout.String())
	}
}

func TestRunPreview_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	input := writeFile(t, t.TempDir(), "empty.md", "")

	err := runPreview(context.Background(), []string{input}, env.Environment)
	if !errors.Is(err, md2wechat.ErrEmptyMarkdown) {
		t.Errorf("error = %v, want ErrEmptyMarkdown", err)
	}
}

func TestResolvePreviewOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag, input, want string
	}{
		{"", "post.md", "post.html"},
		{"", filepath.Join("drafts", "post.markdown"), filepath.Join("drafts", "post.html")},
		{"", "-", "-"},
		{"a.html", "-", "a.html"},
		{"-", "post.md", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.flag+"|"+tt.input, func(t *testing.T) {
			t.Parallel()

			if got := resolvePreviewOutput(tt.flag, tt.input); got != tt.want {
				t.Errorf("resolvePreviewOutput(%q, %q) = %q, want %q", tt.flag, tt.input, got, tt.want)
			}
		})
	}
}
