// Package outline infers a hierarchical heading outline from the raw
// layout of a paginated document. Headings are never tagged in the
// source data; they are recognized from font-size clustering, page
// position, repetition, and numbering.
package outline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dgallion1/doclens/internal/fontlevel"
	"github.com/dgallion1/doclens/internal/layout"
)

// Heading is a line promoted to structural status. Text retains one
// trailing space, which acts as the separator when title headings are
// concatenated and is preserved in the output document.
type Heading struct {
	Page  int // 1-based
	Y     float64
	Depth int // 1 = most prominent
	Text  string
}

// Entry is one outline row in the output document.
type Entry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the outline document for one input file.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// maxTitleHeadings bounds how many top-depth page-1 headings are
// concatenated into the document title.
const maxTitleHeadings = 2

// Extract builds the title and outline for one document. Documents
// without positional fragments (or without any font sizes) degrade to
// an empty result rather than an error.
func Extract(doc *layout.Document) Result {
	empty := Result{Outline: []Entry{}}
	if len(doc.Fragments) == 0 {
		return empty
	}

	sizes := make([]float64, len(doc.Fragments))
	for i, f := range doc.Fragments {
		sizes[i] = f.Size
	}
	levels := fontlevel.Cluster(sizes)
	if levels.Count() == 0 {
		return empty
	}

	agg := layout.Aggregate(doc.Fragments)
	cl := classifier{doc: doc, agg: agg, levels: levels}

	var headings []Heading
	for _, line := range agg.Lines {
		depth, ok := cl.classify(line)
		if !ok {
			continue
		}
		headings = append(headings, Heading{
			Page:  line.Page + 1,
			Y:     line.Y,
			Depth: depth,
			Text:  line.Text + " ",
		})
	}

	// Canonical document reading order.
	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].Y < headings[j].Y
	})

	title, headings := extractTitle(headings)

	entries := make([]Entry, 0, len(headings))
	for _, h := range headings {
		entries = append(entries, Entry{
			Level: levelLabel(h.Depth),
			Text:  h.Text,
			Page:  h.Page,
		})
	}
	return Result{Title: title, Outline: entries}
}

// extractTitle concatenates up to two top-depth headings from page 1
// (in vertical order) into the document title and removes exactly
// those headings from the outline.
func extractTitle(headings []Heading) (string, []Heading) {
	var top []Heading
	for _, h := range headings {
		if h.Page == 1 && h.Depth == 1 {
			top = append(top, h)
		}
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Y < top[j].Y })
	if len(top) > maxTitleHeadings {
		top = top[:maxTitleHeadings]
	}
	if len(top) == 0 {
		return "", headings
	}

	var sb strings.Builder
	titleSet := make(map[string]struct{}, len(top))
	for _, h := range top {
		sb.WriteString(h.Text)
		titleSet[h.Text] = struct{}{}
	}

	kept := headings[:0]
	for _, h := range headings {
		if h.Page == 1 && h.Depth == 1 {
			if _, isTitle := titleSet[h.Text]; isTitle {
				continue
			}
		}
		kept = append(kept, h)
	}
	return strings.TrimSpace(sb.String()), kept
}

func levelLabel(depth int) string {
	return fmt.Sprintf("H%d", depth)
}
