// Package target models what a paste destination keeps from pasted HTML.
//
// The WeChat editor drops <style> and <link> elements, class and id
// attributes, scripts and event handlers, and keeps inline style
// attributes. Running a fragment through the profile shows what survives
// a paste before anything reaches the clipboard.
package target

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// WeChat is the name of the WeChat official-account editor profile.
const WeChat = "wechat"

// ErrUnknownProfile indicates no sanitizer profile has the given name.
var ErrUnknownProfile = errors.New("unknown paste target profile")

// Sanitizer reduces HTML to what a paste target keeps.
type Sanitizer interface {
	Sanitize(s string) string
}

// Compile-time interface check.
var _ Sanitizer = (*bluemonday.Policy)(nil)

var profiles = map[string]func() *bluemonday.Policy{
	WeChat: WeChatPolicy,
}

// Profiles returns the known profile names, sorted.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Policy returns a fresh policy for the named profile.
func Policy(name string) (*bluemonday.Policy, error) {
	build, ok := profiles[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return build(), nil
}

// Sanitize runs markup through the named profile.
func Sanitize(name, markup string) (string, error) {
	p, err := Policy(name)
	if err != nil {
		return "", err
	}
	return p.Sanitize(markup), nil
}

// WeChatPolicy returns the WeChat editor profile.
func WeChatPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"section", "p", "span", "br", "hr",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "b", "em", "i", "u", "s", "del", "mark", "sup", "sub",
		"blockquote", "pre", "code",
		"ul", "ol", "li",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td",
		"figure", "figcaption",
	)

	// Inline styles are the whole point of the export; their values are
	// kept verbatim.
	p.AllowAttrs("style").Globally()
	p.AllowDataAttributes()

	p.AllowAttrs("colspan", "rowspan", "align").OnElements("th", "td")
	p.AllowAttrs("start").OnElements("ol")

	// Local links and local images do not survive a paste.
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowURLSchemes("http", "https")
	p.AllowDataURIImages()
	p.RequireParseableURLs(true)

	return p
}
