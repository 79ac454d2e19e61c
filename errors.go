package md2wechat

import (
	"errors"

	"github.com/alnah/go-md2wechat/internal/assets"
	"github.com/alnah/go-md2wechat/internal/inliner"
	"github.com/alnah/go-md2wechat/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Copy errors.
	ErrCopyFailed   = errors.New("copy command failed")
	ErrCopyInFlight = errors.New("a copy is already in progress")
	ErrUnexpected   = errors.New("unexpected failure during export")

	// Style resolution errors share identity with the inliner.
	ErrStyleResolve = inliner.ErrStyleResolve

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrThemeNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Sink validation errors.
	ErrInvalidTarget = errors.New("invalid export target")
)
