package pipeline

import (
	"context"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPreprocessor_PreprocessMarkdown
// ---------------------------------------------------------------------------

func TestPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	mark := func(s string) string { return MarkStartPlaceholder + s + MarkEndPlaceholder }

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unchanged", "# Title\n\nText", "# Title\n\nText"},
		{"CRLF", "a\r\nb", "a\nb"},
		{"lone CR", "a\rb", "a\nb"},
		{"BOM stripped", "\uFEFF# a", "# a"},
		{"blank lines collapsed", "a\n\n\n\nb", "a\n\nb"},
		{"highlight", "a ==重点== b", "a " + mark("重点") + " b"},
		{"two highlights", "==a== and ==b==", mark("a") + " and " + mark("b")},
		{"highlight across lines ignored", "==a\nb==", "==a\nb=="},
		{"empty highlight ignored", "====", "===="},
	}

	p := &Preprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessor_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := "a\r\n==b=="
	if got := (&Preprocessor{}).PreprocessMarkdown(ctx, in); got != in {
		t.Errorf("PreprocessMarkdown() with cancelled ctx = %q, want input unchanged", got)
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	in := "<p>a " + MarkStartPlaceholder + "b" + MarkEndPlaceholder + "</p>"
	if got, want := ConvertMarkPlaceholders(in), "<p>a <mark>b</mark></p>"; got != want {
		t.Errorf("ConvertMarkPlaceholders() = %q, want %q", got, want)
	}
}
