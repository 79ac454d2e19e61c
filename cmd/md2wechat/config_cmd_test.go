package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2wechat/internal/config"
	"github.com/alnah/go-md2wechat/internal/yamlutil"
)

// ---------------------------------------------------------------------------
// TestRunConfig - Effective configuration output
// ---------------------------------------------------------------------------

func TestRunConfig_RoundTrips(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	path := writeFile(t, t.TempDir(), "work.yaml", "theme:\n  name: claude\nmarkdown:\n  hardWraps: false\n")

	if err := runConfig([]string{"-c", path}, env.Environment); err != nil {
		t.Fatalf("runConfig() error = %v", err)
	}

	got := config.DefaultConfig()
	if err := yamlutil.UnmarshalStrict(env.stdout.Bytes(), got); err != nil {
		t.Fatalf("output is not a valid config: %v\n%s", err, env.stdout.String())
	}
	if got.Theme.Name != "claude" || got.Markdown.HardWraps {
		t.Errorf("config = %+v, want file values", got)
	}
	if got.Export.Target != config.TargetClipboard {
		t.Errorf("Export.Target = %q, want default kept", got.Export.Target)
	}
}

func TestRunConfig_Invalid(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	path := writeFile(t, t.TempDir(), "bad.yaml", "export:\n  target: fax\n")

	err := runConfig([]string{"-c", path}, env.Environment)
	if !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("error = %v, want ErrInvalidValue", err)
	}
	if strings.TrimSpace(env.stdout.String()) != "" {
		t.Errorf("nothing should be printed for an invalid config, got %q", env.stdout.String())
	}
}
