package assets

// ThemeInfo describes a built-in theme for listings.
type ThemeInfo struct {
	ID          string
	Name        string
	Description string
}

// Catalog lists the built-in themes in display order.
var Catalog = []ThemeInfo{
	{ID: "wechat", Name: "微信绿", Description: "经典微信风格"},
	{ID: "elegant", Name: "优雅紫", Description: "优雅紫色主题"},
	{ID: "tech", Name: "科技蓝", Description: "科技感蓝色"},
	{ID: "minimal", Name: "简约灰", Description: "简约灰色风格"},
	{ID: "claude", Name: "Claude Sonnet", Description: "Anthropic 橙色主题"},
}

// Describe returns the catalog entry for id. Themes outside the catalog
// (custom ones) get an entry with only the ID set.
func Describe(id string) ThemeInfo {
	for _, t := range Catalog {
		if t.ID == id {
			return t
		}
	}
	return ThemeInfo{ID: id, Name: id}
}
