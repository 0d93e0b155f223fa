package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"doc.txt", "*parser.TextParser"},
		{"doc.md", "*parser.MarkdownParser"},
		{"doc.csv", "*parser.CSVParser"},
		{"doc.html", "*parser.HTMLParser"},
		{"doc.HTM", "*parser.HTMLParser"},
		{"doc.pdf", "*parser.PDFParser"},
		{"doc.docx", "*parser.DOCXParser"},
	}
	for _, tc := range cases {
		p, err := ForFile(tc.filename)
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error %v", tc.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", p); got != tc.want {
			t.Errorf("ForFile(%q) = %s, want %s", tc.filename, got, tc.want)
		}
	}

	if _, err := ForFile("doc.exe"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	supported := []string{"a.pdf", "b.TXT", "c.docx", "d.htm", "nested/dir/e.md"}
	for _, f := range supported {
		if !IsSupportedExtension(f) {
			t.Errorf("expected %q to be supported", f)
		}
	}
	unsupported := []string{"a.exe", "b", "c.tar.gz", ".pdfx"}
	for _, f := range unsupported {
		if IsSupportedExtension(f) {
			t.Errorf("expected %q to be unsupported", f)
		}
	}
}

func TestTextParser_LinesWithSyntheticGeometry(t *testing.T) {
	input := "first line\n\n  second line  \nthird line\n"
	doc, err := (&TextParser{}).Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Name != "notes.txt" {
		t.Errorf("expected document name %q, got %q", "notes.txt", doc.Name)
	}
	want := []string{"first line", "second line", "third line"}
	if len(doc.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(doc.Lines))
	}
	for i, w := range want {
		if doc.Lines[i].Text != w {
			t.Errorf("line %d: got %q, want %q", i, doc.Lines[i].Text, w)
		}
		if i > 0 && doc.Lines[i].Y <= doc.Lines[i-1].Y {
			t.Errorf("line %d: Y %v not increasing past %v", i, doc.Lines[i].Y, doc.Lines[i-1].Y)
		}
		if doc.Lines[i].Page != 0 {
			t.Errorf("line %d: expected page 0, got %d", i, doc.Lines[i].Page)
		}
	}
	if len(doc.Fragments) != 0 {
		t.Errorf("text backend must not fabricate fragments, got %d", len(doc.Fragments))
	}
}
