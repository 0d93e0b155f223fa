package rank

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Scorer assigns a relevance score to each text against a query.
// Higher is more relevant. The ranking pipeline treats scoring as an
// injected capability: any implementation providing term-overlap
// similarity satisfies the contract.
type Scorer interface {
	Score(texts []string, query string) []float64
}

// DefaultMaxFeatures caps the scoring vocabulary to the most frequent
// terms across all texts plus the query.
const DefaultMaxFeatures = 500

// TFCosine scores by cosine similarity between term-frequency vectors
// built from unigrams and bigrams, with English stop words removed and
// the vocabulary capped at MaxFeatures terms.
type TFCosine struct {
	MaxFeatures int // 0 means DefaultMaxFeatures
}

var wordRe = regexp.MustCompile(`\w+`)

// Score vectorizes texts and query over a shared vocabulary and
// returns one cosine similarity per text.
func (s TFCosine) Score(texts []string, query string) []float64 {
	maxFeatures := s.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	all := make([][]string, 0, len(texts)+1)
	for _, t := range texts {
		all = append(all, terms(t))
	}
	all = append(all, terms(query))

	vocab := buildVocabulary(all, maxFeatures)

	queryVec := vectorize(all[len(all)-1], vocab)
	scores := make([]float64, len(texts))
	for i := range texts {
		scores[i] = cosine(vectorize(all[i], vocab), queryVec)
	}
	return scores
}

// terms extracts stop-word-filtered unigrams and bigrams from text.
func terms(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	kept := words[:0]
	for _, w := range words {
		if !isStopword(w) {
			kept = append(kept, w)
		}
	}

	out := make([]string, 0, len(kept)*2)
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}

// buildVocabulary keeps the max most frequent terms across all term
// lists, breaking frequency ties alphabetically so the vocabulary is
// deterministic.
func buildVocabulary(all [][]string, max int) map[string]int {
	freq := make(map[string]int)
	for _, ts := range all {
		for _, t := range ts {
			freq[t]++
		}
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > max {
		terms = terms[:max]
	}

	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return vocab
}

func vectorize(ts []string, vocab map[string]int) []float64 {
	vec := make([]float64, len(vocab))
	for _, t := range ts {
		if idx, ok := vocab[t]; ok {
			vec[idx]++
		}
	}
	return vec
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
