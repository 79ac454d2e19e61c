//go:build darwin

package md2wechat

import (
	"context"
	"fmt"
	"os/exec"
)

// richCopyCommand sets the pasteboard to a record holding both the HTML
// and the UTF-8 text flavours. The script is read from stdin.
func richCopyCommand(ctx context.Context, html, text string) (*exec.Cmd, string, error) {
	if _, err := exec.LookPath("osascript"); err != nil {
		return nil, "", errNoRichClipboard
	}
	return exec.CommandContext(ctx, "osascript", "-"), pasteboardScript(html, text), nil
}

// pasteboardScript hex-encodes both flavours so no AppleScript quoting is
// needed.
func pasteboardScript(html, text string) string {
	return fmt.Sprintf("set the clipboard to {«class HTML»:«data HTML%X», «class utf8»:«data utf8%X»}\n",
		[]byte(html), []byte(text))
}
