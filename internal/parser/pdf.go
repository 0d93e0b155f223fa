package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/doclens/internal/layout"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries the Go library first, which
// yields positioned fragments with font data; if that fails it falls
// back to pdftotext, which yields plain lines only (sections still
// work, outline extraction degrades to empty).
type PDFParser struct {
	FallbackPdftotext bool
}

// wordGapFactor is the fraction of the font size beyond which a
// horizontal gap between glyph runs starts a new fragment.
const wordGapFactor = 0.3

func (p *PDFParser) Parse(r io.Reader, filename string) (*layout.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "doclens-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc, err := extractPDFLayout(tmpPath, filename)
	if err != nil && p.FallbackPdftotext {
		doc, err = extractPdftotext(tmpPath, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf layout: %w", err)
	}
	return doc, nil
}

// extractPDFLayout reads per-page glyph runs and merges them into
// span-like fragments: consecutive runs on a row with the same font
// and size join into one fragment, a wide horizontal gap or a style
// change starts the next one. Vertical positions are flipped to a
// top-origin axis so reading order is y ascending.
func extractPDFLayout(path, filename string) (*layout.Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc := &layout.Document{Name: filename}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		height := pageHeight(page)
		doc.Pages = append(doc.Pages, layout.Page{Number: i - 1, Height: height})

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			doc.Fragments = append(doc.Fragments, mergeRow(row.Content, i-1, height)...)
		}
	}

	agg := layout.Aggregate(doc.Fragments)
	doc.Lines = agg.Lines
	return doc, nil
}

// mergeRow joins a row's glyph runs into fragments.
func mergeRow(row []pdflib.Text, page int, pageHeight float64) []layout.Fragment {
	var frags []layout.Fragment
	var cur *layout.Fragment
	var curEnd float64
	var sb strings.Builder

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.TrimSpace(sb.String())
		if cur.Text != "" {
			frags = append(frags, *cur)
		}
		cur = nil
		sb.Reset()
	}

	for _, t := range row {
		if t.S == "" {
			continue
		}
		gap := t.X - curEnd
		if cur == nil || t.Font != cur.Font || t.FontSize != cur.Size || gap > t.FontSize*wordGapFactor*3 {
			flush()
			cur = &layout.Fragment{
				Page: page,
				Y:    pageHeight - t.Y,
				X:    t.X,
				Size: t.FontSize,
				Font: t.Font,
			}
		} else if gap > t.FontSize*wordGapFactor {
			sb.WriteString(" ")
		}
		sb.WriteString(t.S)
		curEnd = t.X + t.W
	}
	flush()
	return frags
}

// pageHeight reads the page height from the media box, walking up the
// page tree because the attribute is inheritable. Falls back to US
// Letter when absent.
func pageHeight(p pdflib.Page) float64 {
	v := p.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() {
			return mb.Index(3).Float64() - mb.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return 792
}

// extractPdftotext shells out to pdftotext and splits its output into
// per-page lines. No geometry survives this path.
func extractPdftotext(path, filename string) (*layout.Document, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	doc := &layout.Document{Name: filename}
	for pageNo, page := range strings.Split(string(out), "\f") {
		for _, line := range strings.Split(page, "\n") {
			appendLine(doc, pageNo, line)
		}
	}
	return doc, nil
}
