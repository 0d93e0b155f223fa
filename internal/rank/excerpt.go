package rank

import "strings"

// maxExcerptSentences bounds how much of a section body an excerpt
// carries.
const maxExcerptSentences = 3

// Excerpt is a distilled view of a top-ranked section: the leading
// sentences of its body.
type Excerpt struct {
	Document string
	Text     string
	Page     int
}

// Excerpts produces one excerpt for each of the first topM ranked
// sections.
func Excerpts(ranked []Ranked, topM int) []Excerpt {
	if topM <= 0 {
		topM = DefaultTopExcerpts
	}
	if len(ranked) > topM {
		ranked = ranked[:topM]
	}

	out := make([]Excerpt, 0, len(ranked))
	for _, r := range ranked {
		sentences := splitSentences(r.Body)
		if len(sentences) > maxExcerptSentences {
			sentences = sentences[:maxExcerptSentences]
		}
		out = append(out, Excerpt{
			Document: r.Document,
			Text:     strings.Join(sentences, " "),
			Page:     r.Page,
		})
	}
	return out
}

// splitSentences does basic sentence splitting on ./!/? boundaries
// followed by a space.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
