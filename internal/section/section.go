// Package section partitions a document's line stream into titled
// content blocks using a casing/punctuation heuristic, independent of
// font geometry.
package section

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/doclens/internal/layout"
)

// MinBodyLength is the floor below which a section's accumulated body
// is considered noise and the section is discarded.
const MinBodyLength = 20

// Section is a titled content block with accumulated body text.
type Section struct {
	Document string // originating document identifier (filename)
	Title    string
	Page     int // 1-based page the section starts on
	Body     string
}

var nonWhitelistRe = regexp.MustCompile(`[^\w\s.,!?;:\-()]+`)
var whitespaceRe = regexp.MustCompile(`\s+`)

// Segment walks the document's lines in reading order and opens a new
// section at every title line. A line is a title when its text is
// entirely upper-case or ends with a colon; body lines before the
// first title are collected under an implicit "Introduction" section.
// Known limitation: short all-caps acronym lines inside body text also
// open sections; the MinBodyLength floor discards most of the
// resulting fragments.
func Segment(doc *layout.Document) []Section {
	lines := make([]layout.Line, len(doc.Lines))
	copy(lines, doc.Lines)
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Page != lines[j].Page {
			return lines[i].Page < lines[j].Page
		}
		return lines[i].Y < lines[j].Y
	})

	var sections []Section
	var current *Section
	var body strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(body.String())
		sections = append(sections, *current)
		current = nil
		body.Reset()
	}

	for _, line := range lines {
		text := line.Text
		if isTitleLine(text) {
			flush()
			current = &Section{
				Document: doc.Name,
				Title:    cleanText(text),
				Page:     line.Page + 1,
			}
			continue
		}
		if current == nil {
			current = &Section{
				Document: doc.Name,
				Title:    "Introduction",
				Page:     line.Page + 1,
			}
		}
		if body.Len() > 0 {
			body.WriteString(" ")
		}
		body.WriteString(cleanText(text))
	}
	flush()

	kept := sections[:0]
	for _, s := range sections {
		if len(s.Body) > MinBodyLength {
			kept = append(kept, s)
		}
	}
	return kept
}

// isTitleLine applies the section-title heuristic: the text is
// entirely upper-case (at least one cased letter, none lower-case) or
// ends with a colon.
func isTitleLine(text string) bool {
	if strings.HasSuffix(text, ":") {
		return true
	}
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// cleanText collapses whitespace and strips characters outside the
// word/punctuation whitelist.
func cleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = nonWhitelistRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
