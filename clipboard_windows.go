//go:build windows

package md2wechat

import (
	"context"
	"os/exec"
)

// setClipboardHTML reads UTF-8 markup from stdin and stores it as CF_HTML.
const setClipboardHTML = "[Console]::InputEncoding = [Text.Encoding]::UTF8; " +
	"Set-Clipboard -AsHtml -Value ([Console]::In.ReadToEnd())"

// richCopyCommand uses Windows PowerShell, whose Set-Clipboard -AsHtml
// writes the HTML format.
func richCopyCommand(ctx context.Context, html, _ string) (*exec.Cmd, string, error) {
	if _, err := exec.LookPath("powershell.exe"); err != nil {
		return nil, "", errNoRichClipboard
	}
	return exec.CommandContext(ctx, "powershell.exe", "-NoProfile", "-NonInteractive", "-Command", setClipboardHTML), html, nil
}
