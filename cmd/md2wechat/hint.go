package main

import (
	"context"
	"errors"
	"strings"

	md2wechat "github.com/alnah/go-md2wechat"
	"github.com/alnah/go-md2wechat/internal/config"
	"github.com/alnah/go-md2wechat/internal/hints"
)

// hintFor returns actionable advice for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2wechat.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, md2wechat.ErrStyleNotFound):
		names, _ := listThemes("")
		return hints.ForThemeNotFound(names)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, md2wechat.ErrCopyFailed):
		var te *targetError
		if errors.As(err, &te) && te.target == config.TargetChrome {
			return hints.ForCopyRejected()
		}
		return hints.ForClipboard()
	}
	return ""
}

// triedPaths extracts the searched locations from a config-not-found
// message ("...: tried a.yaml, a.yml, ...").
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
