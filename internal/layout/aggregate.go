package layout

import (
	"sort"
	"strings"
)

// Aggregation is the line view of a fragment stream plus an index of
// which pages each exact text string appears on. The index is what
// downstream filters use to spot running headers and footers.
type Aggregation struct {
	Lines []Line

	textPages map[string]map[int]struct{}
}

// Aggregate groups fragments into lines keyed by (page, rounded y).
// Fragments within a line are ordered by horizontal position and their
// trimmed text is joined with single spaces; fragments that are empty
// after trimming never participate. Lines come back in reading order
// (page ascending, then y ascending).
func Aggregate(frags []Fragment) *Aggregation {
	type key struct {
		page int
		y    float64
	}

	groups := make(map[key][]Fragment)
	textPages := make(map[string]map[int]struct{})

	for _, f := range frags {
		text := strings.TrimSpace(f.Text)
		if text == "" {
			continue
		}
		f.Text = text
		f.Y = RoundY(f.Y)

		k := key{page: f.Page, y: f.Y}
		groups[k] = append(groups[k], f)

		pages, ok := textPages[text]
		if !ok {
			pages = make(map[int]struct{})
			textPages[text] = pages
		}
		pages[f.Page] = struct{}{}
	}

	lines := make([]Line, 0, len(groups))
	for k, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].X < group[j].X
		})
		parts := make([]string, len(group))
		for i, f := range group {
			parts[i] = f.Text
		}
		lines = append(lines, Line{
			Page:      k.page,
			Y:         k.y,
			Text:      strings.Join(parts, " "),
			Fragments: group,
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Page != lines[j].Page {
			return lines[i].Page < lines[j].Page
		}
		return lines[i].Y < lines[j].Y
	})

	return &Aggregation{Lines: lines, textPages: textPages}
}

// PageSpread reports how many distinct pages the exact text occurs on.
// Text seen on more than two pages is treated as repeated boilerplate
// by the heading filter.
func (a *Aggregation) PageSpread(text string) int {
	return len(a.textPages[text])
}
