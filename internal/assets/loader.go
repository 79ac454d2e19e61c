package assets

// Asset names with a fixed role.
const (
	// BaseTheme is the shared layout stylesheet loaded under every theme.
	BaseTheme = "base"

	// DefaultTheme is used when no theme is configured.
	DefaultTheme = "wechat"

	// PageTemplate renders the preview page.
	PageTemplate = "page"
)

// AssetLoader loads theme stylesheets and page templates.
type AssetLoader interface {
	// LoadTheme returns the CSS of a theme by name (without .css).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	LoadTheme(name string) (string, error)

	// LoadTemplate returns an HTML template by name (without .html).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// ListThemes returns the available theme names, sorted, BaseTheme excluded.
	ListThemes() ([]string, error)
}
