package inliner

import (
	"testing"

	"github.com/alnah/go-md2wechat/internal/dom"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	clone := parseRoot(t, `<div class="markdown-preview"><h1>Title</h1><p>Body</p></div>`)
	root := PropertyMap{
		"background-color": "rgb(251, 249, 246)",
		"background-image": "none",
		"padding":          "24px 16px",
		"border-radius":    "8px",
		"font-family":      `"PingFang SC", sans-serif`,
		"font-size":        "16px",
		"line-height":      "28px",
		"color":            "rgb(51, 51, 51)",
	}

	outer := Wrap(clone, root, WrapOptions{})

	if !dom.IsElement(outer, "section") {
		t.Fatalf("outer = <%s>, want <section>", outer.Data)
	}
	if v, _ := dom.Attr(outer, ProvenanceAttr); v != DefaultProvenance {
		t.Errorf("%s = %q, want %q", ProvenanceAttr, v, DefaultProvenance)
	}
	if v, _ := dom.Attr(outer, dom.StyleAttr); v != outerStyle {
		t.Errorf("outer style = %q, want %q", v, outerStyle)
	}
	if n := dom.CountChildren(outer); n != 1 {
		t.Fatalf("outer has %d children, want 1", n)
	}

	inner := outer.FirstChild
	if !dom.IsElement(inner, "section") {
		t.Fatalf("inner = <%s>, want <section>", inner.Data)
	}

	wantStyle := map[string]string{
		"background-color": "rgb(251, 249, 246)",
		"padding":          "24px 16px",
		"border":           "1px solid rgb(251, 249, 246)",
		"border-radius":    "8px",
		"font-family":      `"PingFang SC", sans-serif`,
		"font-size":        "16px",
		"line-height":      "28px",
		"color":            "rgb(51, 51, 51)",
		"box-sizing":       "border-box",
	}
	for prop, want := range wantStyle {
		if got, _ := dom.StyleValue(inner, prop); got != want {
			t.Errorf("inner %s = %q, want %q", prop, got, want)
		}
	}
	if _, ok := dom.StyleValue(inner, "background-image"); ok {
		t.Error("background-image none should not be emitted")
	}

	if dom.FindElement(inner, "h1") == nil || dom.FindElement(inner, "p") == nil {
		t.Error("content should be moved into the inner section")
	}
	if dom.FindElement(inner, "div") != nil {
		t.Error("clone root should not be part of the wrapper")
	}
	if clone.FirstChild != nil {
		t.Error("clone should be left empty")
	}
}

func TestWrap_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		root        PropertyMap
		opts        WrapOptions
		wantPadding string
		wantBorder  string
		wantRadius  string
	}{
		{
			name:        "zero padding falls back",
			root:        PropertyMap{"padding": "0px", "background-color": "rgb(255, 255, 255)"},
			wantPadding: DefaultPadding,
			wantBorder:  "1px solid rgb(255, 255, 255)",
			wantRadius:  DefaultRadius,
		},
		{
			name:        "missing padding falls back",
			root:        PropertyMap{},
			wantPadding: DefaultPadding,
			wantBorder:  "1px solid transparent",
			wantRadius:  DefaultRadius,
		},
		{
			name:        "four zero sides fall back",
			root:        PropertyMap{"padding": "0px 0px 0px 0px"},
			wantPadding: DefaultPadding,
			wantBorder:  "1px solid transparent",
			wantRadius:  DefaultRadius,
		},
		{
			name: "padding composed from sides",
			root: PropertyMap{
				"padding-top": "10px", "padding-right": "12px",
				"padding-bottom": "10px", "padding-left": "12px",
			},
			wantPadding: "10px 12px 10px 12px",
			wantBorder:  "1px solid transparent",
			wantRadius:  DefaultRadius,
		},
		{
			name: "equal sides collapse",
			root: PropertyMap{
				"padding-top": "8px", "padding-right": "8px",
				"padding-bottom": "8px", "padding-left": "8px",
			},
			wantPadding: "8px",
			wantBorder:  "1px solid transparent",
			wantRadius:  DefaultRadius,
		},
		{
			name:        "custom default padding",
			root:        PropertyMap{},
			opts:        WrapOptions{Padding: "12px"},
			wantPadding: "12px",
			wantBorder:  "1px solid transparent",
			wantRadius:  DefaultRadius,
		},
		{
			name:        "zero radius kept",
			root:        PropertyMap{"border-radius": "0px"},
			wantPadding: DefaultPadding,
			wantBorder:  "1px solid transparent",
			wantRadius:  "0px",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outer := Wrap(dom.NewElement("div"), tt.root, tt.opts)
			inner := outer.FirstChild

			if got, _ := dom.StyleValue(inner, "padding"); got != tt.wantPadding {
				t.Errorf("padding = %q, want %q", got, tt.wantPadding)
			}
			if got, _ := dom.StyleValue(inner, "border"); got != tt.wantBorder {
				t.Errorf("border = %q, want %q", got, tt.wantBorder)
			}
			if got, _ := dom.StyleValue(inner, "border-radius"); got != tt.wantRadius {
				t.Errorf("border-radius = %q, want %q", got, tt.wantRadius)
			}
		})
	}
}

func TestWrap_BackgroundImage(t *testing.T) {
	t.Parallel()

	outer := Wrap(dom.NewElement("div"), PropertyMap{
		"background-image": `linear-gradient(rgb(255, 255, 255), rgb(240, 240, 240))`,
	}, WrapOptions{})

	got, _ := dom.StyleValue(outer.FirstChild, "background-image")
	if got != `linear-gradient(rgb(255, 255, 255), rgb(240, 240, 240))` {
		t.Errorf("background-image = %q", got)
	}
}

func TestWrap_Provenance(t *testing.T) {
	t.Parallel()

	outer := Wrap(dom.NewElement("div"), nil, WrapOptions{Provenance: "custom"})
	if v, _ := dom.Attr(outer, ProvenanceAttr); v != "custom" {
		t.Errorf("%s = %q, want custom", ProvenanceAttr, v)
	}
}
