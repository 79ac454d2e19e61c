//go:build !linux && !darwin && !windows

package md2wechat

import (
	"context"
	"os/exec"
)

func richCopyCommand(context.Context, string, string) (*exec.Cmd, string, error) {
	return nil, "", errNoRichClipboard
}
