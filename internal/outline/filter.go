package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/doclens/internal/fontlevel"
	"github.com/dgallion1/doclens/internal/layout"
)

const (
	// marginBand excludes lines within this distance of the page top
	// or bottom; those are presumed running headers and footers.
	marginBand = 30.0

	// boilerplatePages is the page-spread threshold above which exact
	// repeated text is treated as a running header or footer.
	boilerplatePages = 2

	// maxLineFragments rejects lines aggregated from too many
	// fragments; those are usually table rows, not headings.
	maxLineFragments = 5
)

var (
	bareNumberRe = regexp.MustCompile(`^\d+\.?$`)
	numberedRe   = regexp.MustCompile(`^\d+\.?\d*`)
)

// classifier applies the heading rules to aggregated lines. The rule
// order matters: hard exclusions run before any font analysis, the
// small-but-stylized override runs before the body-text cut, and the
// numbering adjustment runs only after the base depth is fixed.
type classifier struct {
	doc    *layout.Document
	agg    *layout.Aggregation
	levels fontlevel.Levels
}

// classify reports whether the line is a heading and at which depth
// (1 = most prominent).
func (c *classifier) classify(line layout.Line) (int, bool) {
	if c.inMarginBand(line) {
		return 0, false
	}
	if c.isRepeatedBoilerplate(line) {
		return 0, false
	}
	if isBareNumber(line.Text) {
		return 0, false
	}
	if len(line.Fragments) > maxLineFragments {
		return 0, false
	}

	maxLevel, ok := c.lineLevel(line)
	if !ok {
		return 0, false
	}
	// Only the top two size tiers may become headings; everything
	// below is body text.
	if maxLevel < 2 {
		return 0, false
	}

	depth := c.levels.Count() - maxLevel
	depth = adjustNumbered(line.Text, depth)
	return depth, true
}

// inMarginBand reports whether the line sits in the top or bottom page
// margin. Pages without known geometry only get the top check.
func (c *classifier) inMarginBand(line layout.Line) bool {
	if line.Y < marginBand {
		return true
	}
	h := c.doc.PageHeight(line.Page)
	return h > 0 && line.Y > h-marginBand
}

func (c *classifier) isRepeatedBoilerplate(line layout.Line) bool {
	return c.agg.PageSpread(line.Text) > boilerplatePages
}

// lineLevel computes the maximum font level among the line's
// fragments. A line touching the smallest cluster is rejected unless
// every fragment is bold or italic, in which case it is kept but
// pinned to level 1: small stylized text is demoted, never promoted
// past the second tier.
func (c *classifier) lineLevel(line layout.Line) (int, bool) {
	maxLevel := 0
	hasSmallest := false
	for _, f := range line.Fragments {
		lvl := c.levels.Map(f.Size)
		if lvl == 0 {
			hasSmallest = true
		}
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}
	if hasSmallest {
		if !allStyled(line.Fragments) {
			return 0, false
		}
		maxLevel = 1
	}
	return maxLevel, true
}

func allStyled(frags []layout.Fragment) bool {
	for _, f := range frags {
		if !strings.Contains(f.Font, "Bold") && !strings.Contains(f.Font, "Italic") {
			return false
		}
	}
	return true
}

// isBareNumber matches isolated page numbers and list markers, with or
// without a trailing period.
func isBareNumber(text string) bool {
	return bareNumberRe.MatchString(text)
}

// adjustNumbered shifts a numbered line ("1." or "1.1" prefixes) one
// label toward H1 unless it already is the top depth, reproducing the
// upstream numbering heuristic unchanged.
func adjustNumbered(text string, depth int) int {
	if depth != 1 && numberedRe.MatchString(text) {
		return depth - 1
	}
	return depth
}
