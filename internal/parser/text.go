package parser

import (
	"bufio"
	"io"

	"github.com/dgallion1/doclens/internal/layout"
)

// TextParser handles plain text files. Every non-blank input line
// becomes one layout line on a single logical page.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*layout.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &layout.Document{Name: filename}
	for scanner.Scan() {
		appendLine(doc, 0, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}
