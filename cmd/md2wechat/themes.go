package main

import (
	"fmt"
	"text/tabwriter"

	md2wechat "github.com/alnah/go-md2wechat"
	"github.com/alnah/go-md2wechat/internal/assets"
)

// runThemes lists the themes available to --theme: the embedded ones plus
// those under --asset-path (or assets.basePath). The default is starred.
func runThemes(args []string, env *Environment) error {
	fs := newFlagSet("themes")
	var common commonFlags
	var assetPath string
	addCommonFlags(fs, &common)
	fs.StringVar(&assetPath, "asset-path", "", "directory overriding embedded themes")
	if err := parse(fs, args); err != nil {
		return err
	}

	cfg, _, err := loadSettings(common.config)
	if err != nil {
		return err
	}
	if assetPath != "" {
		cfg.Assets.BasePath = assetPath
	}

	names, err := listThemes(cfg.Assets.BasePath)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range names {
		info := assets.Describe(name)
		marker := " "
		if name == assets.DefaultTheme {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\n", marker, info.ID, info.Name, info.Description)
	}
	return tw.Flush()
}

// listThemes returns theme names from the embedded assets merged with
// basePath, if any.
func listThemes(basePath string) ([]string, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", md2wechat.ErrInvalidAssetPath, err)
	}
	return resolver.ListThemes()
}
