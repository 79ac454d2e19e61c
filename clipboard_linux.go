//go:build linux

package md2wechat

import (
	"context"
	"os"
	"os/exec"
)

// richCopyCommand returns wl-copy on Wayland, xclip otherwise. Both serve a
// single target per selection, so only the HTML flavour is offered; browsers
// and the WeChat editor request text/html.
func richCopyCommand(ctx context.Context, html, _ string) (*exec.Cmd, string, error) {
	name, args, err := linuxRichCopyArgs(os.Getenv("WAYLAND_DISPLAY") != "", exec.LookPath)
	if err != nil {
		return nil, "", err
	}
	return exec.CommandContext(ctx, name, args...), html, nil // #nosec G204 -- fixed utility names
}

// lookPathFunc matches exec.LookPath.
type lookPathFunc func(file string) (string, error)

func linuxRichCopyArgs(wayland bool, lookPath lookPathFunc) (string, []string, error) {
	if wayland {
		if _, err := lookPath("wl-copy"); err == nil {
			return "wl-copy", []string{"--type", "text/html"}, nil
		}
	}
	if _, err := lookPath("xclip"); err == nil {
		return "xclip", []string{"-selection", "clipboard", "-t", "text/html"}, nil
	}
	return "", nil, errNoRichClipboard
}
