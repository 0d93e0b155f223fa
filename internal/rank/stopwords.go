package rank

// englishStopwords lists common English words excluded from relevance
// scoring. Extend as needed.
var englishStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "shall": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "me": {}, "him": {}, "her": {},
	"us": {}, "them": {}, "my": {}, "your": {}, "his": {}, "its": {},
	"our": {}, "their": {}, "mine": {}, "yours": {}, "ours": {},
	"theirs": {}, "from": {}, "as": {}, "so": {}, "all": {}, "any": {},
	"can": {}, "may": {}, "might": {}, "must": {}, "not": {}, "no": {},
	"nor": {}, "if": {}, "then": {}, "else": {}, "than": {}, "too": {},
	"very": {}, "just": {}, "about": {}, "into": {}, "over": {},
	"under": {}, "again": {}, "further": {}, "once": {}, "here": {},
	"there": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "whose": {},
	"because": {}, "while": {}, "during": {}, "before": {},
	"after": {}, "above": {}, "below": {}, "between": {}, "both": {},
	"each": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "only": {}, "own": {}, "same": {},
	"also": {}, "up": {}, "down": {}, "out": {}, "off": {},
}

// isStopword reports whether word is excluded from scoring.
func isStopword(word string) bool {
	_, ok := englishStopwords[word]
	return ok
}
