//go:build integration

package md2wechat

// Notes:
// - Requires Chrome (downloaded by rod on first run, or ROD_BROWSER_BIN).
// - One Exporter is shared: each test opens its own pages.

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-md2wechat/internal/dom"
)

const testTimeout = 60 * time.Second

var testExporter *Exporter

func TestMain(m *testing.M) {
	e, err := NewExporter(WithTheme("claude"), WithTimeout(testTimeout))
	if err != nil {
		panic(err)
	}
	testExporter = e

	code := m.Run()
	_ = e.Close()
	os.Exit(code)
}

func TestIntegration_Export(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	res, err := testExporter.Export(ctx, Input{Markdown: "# 标题\n\n正文 **加粗**\n\n- 甲\n- 乙\n\n1. 一\n"})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	for _, want := range []string{
		`data-tool="md2wechat"`,
		"background-color:rgb(251, 249, 246)",
		"color:rgb(250, 100, 0)", // claude accent on h1 and bullets
		">‣</span>",
		"font-weight:700",
	} {
		if !strings.Contains(res.HTML, want) {
			t.Errorf("HTML should contain %q", want)
		}
	}
	if strings.Contains(res.HTML, "class=") {
		t.Error("exported HTML should not depend on classes")
	}

	ol := dom.FindElement(res.Fragment, "ol")
	if ol == nil {
		t.Fatal("ordered list missing")
	}
	if li := dom.FindElement(ol, "li"); li != nil && dom.FindElement(li, "span") != nil {
		t.Error("ordered list items should not get a marker span")
	}
}

func TestIntegration_CopyIntoChrome(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	var sink bytesSink
	doc, err := testExporter.OpenDocument(ctx, &sink)
	if err != nil {
		t.Fatalf("OpenDocument() error = %v", err)
	}
	defer doc.Close()

	if err := testExporter.Copy(ctx, Input{Markdown: "你好，微信"}, NewHostCommitter(doc)); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	got := sink.payloads()
	if len(got) != 1 {
		t.Fatalf("sink received %d payloads, want 1", len(got))
	}
	if !strings.Contains(got[0].HTML, "你好，微信") || !strings.Contains(got[0].HTML, `data-tool="md2wechat"`) {
		t.Errorf("payload HTML = %q", got[0].HTML)
	}

	// The host must be gone from the page after the commit.
	page := doc.(*ChromeDocument).Page
	res, err := page.Eval(`(attr) => document.querySelectorAll('[' + attr + ']').length`, HostAttr)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if n := res.Value.Int(); n != 0 {
		t.Errorf("%d host elements left in the page", n)
	}
}
