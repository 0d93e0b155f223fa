// Package rank scores content sections against a persona/job query
// and distills the most relevant ones into short excerpts.
package rank

import (
	"sort"

	"github.com/dgallion1/doclens/internal/section"
)

// Defaults for how many sections are ranked and how many of those get
// an excerpt.
const (
	DefaultTopSections = 10
	DefaultTopExcerpts = 5
)

// Ranked is a section with its relevance score and importance rank
// (1 = most relevant).
type Ranked struct {
	section.Section
	Score float64
	Rank  int
}

// Rank scores the pooled sections against the query built from persona
// and job, then returns the topK sections in descending score order.
// The sort is stable: score ties keep the original pooled order, so
// callers must pool sections deterministically.
func Rank(sections []section.Section, persona, job string, scorer Scorer, topK int) []Ranked {
	if len(sections) == 0 {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopSections
	}

	texts := make([]string, len(sections))
	for i, s := range sections {
		texts[i] = s.Title + " " + s.Body
	}
	query := persona + " " + job
	scores := scorer.Score(texts, query)

	ranked := make([]Ranked, len(sections))
	for i, s := range sections {
		ranked[i] = Ranked{Section: s, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
