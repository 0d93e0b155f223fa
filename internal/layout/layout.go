package layout

import "math"

// Fragment is the smallest positioned text unit supplied by a parsing
// backend. Text is already trimmed and non-empty; Size is the font size
// in points; Font may encode style via substrings such as "Bold" or
// "Italic".
type Fragment struct {
	Page int     // 0-based page index
	Y    float64 // vertical position of the containing line, rounded to one decimal
	X    float64 // horizontal position, orders fragments within a line
	Text string
	Size float64
	Font string
}

// Page carries per-page geometry. Height 0 means the backend supplied
// no geometry for this page.
type Page struct {
	Number int // 0-based
	Height float64
}

// Line is an ordered group of fragments sharing (page, rounded y),
// concatenated left to right into a single text string.
type Line struct {
	Page      int
	Y         float64
	Text      string
	Fragments []Fragment
}

// Document is a parsed document ready for structure inference.
// Backends with positional data fill Fragments and derive Lines via
// Aggregate; plain-text backends fill Lines directly with synthetic
// geometry, which feeds section segmentation but not outline
// extraction.
type Document struct {
	Name      string
	Pages     []Page
	Fragments []Fragment
	Lines     []Line
}

// PageHeight returns the height of the given 0-based page, or 0 if the
// backend supplied no geometry for it.
func (d *Document) PageHeight(page int) float64 {
	for _, p := range d.Pages {
		if p.Number == page {
			return p.Height
		}
	}
	return 0
}

// RoundY rounds a vertical position to one decimal, the resolution at
// which fragments are considered to share a line.
func RoundY(y float64) float64 {
	return math.Round(y*10) / 10
}
