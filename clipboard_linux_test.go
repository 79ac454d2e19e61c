//go:build linux

package md2wechat

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func TestLinuxRichCopyArgs(t *testing.T) {
	t.Parallel()

	installed := func(tools ...string) lookPathFunc {
		return func(file string) (string, error) {
			if slices.Contains(tools, file) {
				return "/usr/bin/" + file, nil
			}
			return "", exec.ErrNotFound
		}
	}

	tests := []struct {
		name     string
		wayland  bool
		look     lookPathFunc
		wantName string
		wantArgs []string
		wantErr  error
	}{
		{"wayland", true, installed("wl-copy", "xclip"), "wl-copy", []string{"--type", "text/html"}, nil},
		{"x11", false, installed("wl-copy", "xclip"), "xclip", []string{"-selection", "clipboard", "-t", "text/html"}, nil},
		{"wayland without wl-copy", true, installed("xclip"), "xclip", []string{"-selection", "clipboard", "-t", "text/html"}, nil},
		{"xsel only", false, installed("xsel"), "", nil, errNoRichClipboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, args, err := linuxRichCopyArgs(tt.wayland, tt.look)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if name != tt.wantName || !slices.Equal(args, tt.wantArgs) {
				t.Errorf("command = %s %v, want %s %v", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}
