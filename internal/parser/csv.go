package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/doclens/internal/layout"
)

// CSVParser handles CSV files. The header row becomes a title-shaped
// line and each data row becomes one body line with header-prefixed
// cells.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*layout.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &layout.Document{Name: filename}
	if len(records) == 0 {
		return doc, nil
	}

	headers := records[0]
	appendLine(doc, 0, strings.Join(headers, ", ")+":")

	for _, row := range records[1:] {
		var text strings.Builder
		for j, cell := range row {
			if j > 0 {
				text.WriteString(", ")
			}
			if j < len(headers) {
				text.WriteString(headers[j] + ": " + cell)
			} else {
				text.WriteString(cell)
			}
		}
		appendLine(doc, 0, text.String())
	}
	return doc, nil
}
