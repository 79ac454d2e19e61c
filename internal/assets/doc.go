// Package assets provides the theme stylesheets and the preview page
// template.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in themes compiled in with go:embed
//	    ├── FilesystemLoader  - themes and templates from a directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── themes/
//	│   └── {name}.css    # selectors scoped under .theme-{name}
//	└── templates/
//	    └── {name}.html   # html/template page (the exporter uses "page")
//
// The "base" stylesheet holds layout shared by all themes. It is loaded
// with every theme and is not listed as a theme itself.
//
// # Security
//
// Asset names are validated before use. FilesystemLoader resolves symlinks
// and refuses paths that leave basePath.
package assets
