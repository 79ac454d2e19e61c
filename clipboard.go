package md2wechat

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// errNoRichClipboard means no utility on this system can place an HTML
// flavour on the clipboard.
var errNoRichClipboard = errors.New("no HTML clipboard utility available")

// writeRichClipboard places html as the text/html flavour of the system
// clipboard, with text as the plain-text flavour where the platform
// utility can carry both.
func writeRichClipboard(ctx context.Context, html, text string) error {
	cmd, stdin, err := richCopyCommand(ctx, html, text)
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(stdin)

	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", cmd.Path, err, msg)
		}
		return fmt.Errorf("%s: %w", cmd.Path, err)
	}
	return nil
}
