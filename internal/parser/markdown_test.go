package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsGetColons(t *testing.T) {
	input := "# City Guide\n\nA walking tour of the old town.\n\n## Where to eat:\n\nTry the harbour market stalls.\n"
	doc, err := (&MarkdownParser{}).Parse(strings.NewReader(input), "guide.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"City Guide:",
		"A walking tour of the old town.",
		"Where to eat:",
		"Try the harbour market stalls.",
	}
	if len(doc.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %+v", len(want), len(doc.Lines), doc.Lines)
	}
	for i, w := range want {
		if doc.Lines[i].Text != w {
			t.Errorf("line %d: got %q, want %q", i, doc.Lines[i].Text, w)
		}
	}
}

func TestMarkdownParser_InlineFormattingFlattened(t *testing.T) {
	input := "Some **bold** and *italic* text with a [link](https://example.com).\n"
	doc, err := (&MarkdownParser{}).Parse(strings.NewReader(input), "inline.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %+v", len(doc.Lines), doc.Lines)
	}
	text := doc.Lines[0].Text
	for _, word := range []string{"bold", "italic", "link"} {
		if !strings.Contains(text, word) {
			t.Errorf("expected %q in flattened text %q", word, text)
		}
	}
	if strings.Contains(text, "**") || strings.Contains(text, "https://") {
		t.Errorf("markup leaked into text: %q", text)
	}
}

func TestMarkdownParser_Empty(t *testing.T) {
	doc, err := (&MarkdownParser{}).Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Lines) != 0 {
		t.Errorf("expected no lines, got %+v", doc.Lines)
	}
}
