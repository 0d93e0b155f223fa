package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/doclens/internal/layout"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings are
// emitted with a trailing colon so the section-title heuristic picks
// them up; other blocks become body lines.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*layout.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &layout.Document{Name: filename}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title != "" && !strings.HasSuffix(title, ":") {
				title += ":"
			}
			appendLine(doc, 0, title)
		default:
			appendLine(doc, 0, extractText(n, src))
		}
	}
	return doc, nil
}

// extractText gets the text content of a goldmark AST node. Children
// take precedence over the node's raw source lines so text is not
// emitted twice.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if !n.HasChildren() {
		if n.Type() == ast.TypeBlock {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			if s := extractText(c, src); s != "" {
				buf.WriteString(s)
				buf.WriteByte(' ')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
