package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2wechat/internal/fileutil"
)

// RewriteImagePaths turns relative img[src] paths in an HTML fragment into
// file:// URLs under sourceDir, so the browser can load them from the
// temporary preview page. An empty sourceDir leaves the fragment unchanged.
//
// Links are left alone: the editor keeps only the text of local links.
// URLs, data URIs, anchors and absolute paths are never touched, nor is a
// path that would resolve outside sourceDir.
func RewriteImagePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("resolving source directory: %w", err)
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteImages(n, absDir)
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("rendering fragment: %w", err)
		}
	}
	return buf.String(), nil
}

func rewriteImages(n *html.Node, dir string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, a := range n.Attr {
			if a.Key != "src" || !isRelativePath(a.Val) {
				continue
			}
			abs := filepath.Join(dir, filepath.FromSlash(a.Val))
			if !isPathUnderDir(abs, dir) {
				continue
			}
			n.Attr[i].Val = fileutil.FileURL(abs)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteImages(c, dir)
	}
}

// isRelativePath reports whether path names a file relative to the
// Markdown source.
func isRelativePath(path string) bool {
	switch {
	case path == "",
		strings.HasPrefix(path, "#"),
		strings.HasPrefix(path, "//"),
		strings.HasPrefix(path, "data:"),
		strings.HasPrefix(path, "file://"),
		fileutil.IsURL(path),
		filepath.IsAbs(path),
		strings.HasPrefix(path, "/"):
		return false
	}
	return true
}

// isPathUnderDir reports whether absPath lies inside dir.
func isPathUnderDir(absPath, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(absPath))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
