// Package fontlevel calibrates font sizes into a small ordered set of
// levels, per document. Absolute font sizes carry no meaning across
// documents, so the clustering is a pure function of one document's
// size multiset and is never reused.
package fontlevel

import (
	"math"
	"math/rand"
	"sort"
)

// MaxLevels caps the number of clusters. Real documents rarely use
// more than four visually distinct size tiers.
const MaxLevels = 4

// seed fixes the k-means initialization so repeated runs on the same
// document produce identical centers.
const seed = 42

const maxIterations = 100

// Levels is an ordered set of cluster centers. Level 0 is the smallest
// center, Count()-1 the largest.
type Levels struct {
	centers []float64
}

// Cluster runs 1-D k-means over the full size multiset with
// n = min(MaxLevels, distinct sizes) clusters. A document with no
// sizes yields zero levels, which downstream treats as a degenerate
// document with an empty outline.
func Cluster(sizes []float64) Levels {
	distinct := distinctSizes(sizes)
	n := MaxLevels
	if len(distinct) < n {
		n = len(distinct)
	}
	if n == 0 {
		return Levels{}
	}

	// Seeded initialization: draw initial centers from the distinct
	// sizes so no two start identical.
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(distinct))
	centers := make([]float64, n)
	for i := range centers {
		centers[i] = distinct[perm[i]]
	}

	// Lloyd iterations over the full multiset, duplicates included,
	// so dominant sizes pull their center like they do upstream.
	assign := make([]int, len(sizes))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, s := range sizes {
			c := nearest(s, centers)
			if assign[i] != c {
				assign[i] = c
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sums := make([]float64, n)
		counts := make([]int, n)
		for i, s := range sizes {
			sums[assign[i]] += s
			counts[assign[i]]++
		}
		for c := range centers {
			if counts[c] > 0 {
				centers[c] = sums[c] / float64(counts[c])
			}
		}
	}

	sort.Float64s(centers)
	return Levels{centers: centers}
}

// Count returns the number of levels.
func (l Levels) Count() int {
	return len(l.centers)
}

// Map returns the level whose center is nearest to size, breaking
// distance ties toward the lower level. Map is total: every size maps
// to exactly one level as long as Count() > 0.
func (l Levels) Map(size float64) int {
	return nearest(size, l.centers)
}

func nearest(size float64, centers []float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, c := range centers {
		d := math.Abs(size - c)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func distinctSizes(sizes []float64) []float64 {
	seen := make(map[float64]struct{}, len(sizes))
	var out []float64
	for _, s := range sizes {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Float64s(out)
	return out
}
