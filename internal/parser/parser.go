package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/doclens/internal/layout"
)

// Parser converts raw document bytes into a layout.Document. Backends
// with positional data (PDF) fill Fragments so outline extraction can
// run; text-shaped backends fill Lines only, which still feeds section
// segmentation and ranking.
type Parser interface {
	Parse(r io.Reader, filename string) (*layout.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// lineStep is the synthetic vertical spacing used by backends that
// carry no real geometry. It only has to keep lines ordered.
const lineStep = 10.0

// appendLine adds a text line with synthetic geometry to doc.
func appendLine(doc *layout.Document, page int, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	doc.Lines = append(doc.Lines, layout.Line{
		Page: page,
		Y:    float64(len(doc.Lines)+1) * lineStep,
		Text: text,
	})
}
