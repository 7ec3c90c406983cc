// Package match scores a single dictionary entry against a normalized query.
// Scoring is deterministic and side-effect free; the ranker in pkg/search
// drives it over the whole catalog.
package match

import (
	"strings"

	"github.com/vhaldran/buzzserve/pkg/dictionary"
)

// Type classifies why an entry matched.
type Type string

const (
	TypeExact          Type = "exact"
	TypePhraseContains Type = "phraseContains"
	TypeQueryContains  Type = "queryContains"
	TypeKeyword        Type = "keyword"
	TypeFuzzy          Type = "fuzzy"
)

// Scoring constants. The keyword formula and the fuzzy gate mirror the
// shipped behavior exactly, including the keyword/fuzzy fall-through: any
// nonzero keyword score suppresses the fuzzy rule.
const (
	scoreExact          = 1.0
	scorePhraseContains = 0.95
	scoreQueryContains  = 0.90
	keywordBase         = 0.4
	keywordSpread       = 0.45
	keywordCeiling      = 0.85
	keywordFuzzyGate    = 0.6
	keywordFuzzyWeight  = 0.5
	fuzzyGate           = 0.3
	fuzzyWeight         = 0.6
)

// Result is one qualifying entry for one query, with entry fields copied so
// the caller never holds a reference into the shared catalog.
type Result struct {
	Phrase       string
	Translation  string
	Category     string
	Context      string
	Alternatives []string
	Secondary    []dictionary.Meaning
	Score        float64
	Type         Type
	MatchedTerms []string
}

// Score evaluates entry against the normalized query and its whitespace-split
// terms. Rules run in order and the first qualifying one wins; the fuzzy rule
// only applies when keyword matching contributed nothing. The second return
// is false when the entry does not qualify at all.
func Score(entry dictionary.Entry, query string, terms []string) (Result, bool) {
	phrase := strings.ToLower(entry.Phrase)

	if phrase == query {
		return newResult(entry, scoreExact, TypeExact, []string{query}), true
	}
	if strings.Contains(phrase, query) {
		return newResult(entry, scorePhraseContains, TypePhraseContains, []string{query}), true
	}
	if strings.Contains(query, phrase) {
		return newResult(entry, scoreQueryContains, TypeQueryContains, []string{phrase}), true
	}

	if score, matched := keywordScore(entry, terms); score > 0 {
		return newResult(entry, score, TypeKeyword, matched), true
	}

	if sim := Similarity(phrase, query); sim > fuzzyGate {
		return newResult(entry, sim*fuzzyWeight, TypeFuzzy, []string{query}), true
	}

	return Result{}, false
}

// keywordScore sums the best per-term keyword contribution and maps the sum
// into the keyword score band. A zero sum means no keyword qualified and the
// caller falls through to the fuzzy rule.
func keywordScore(entry dictionary.Entry, terms []string) (float64, []string) {
	if len(entry.Keywords) == 0 || len(terms) == 0 {
		return 0, nil
	}

	keywords := make([]string, 0, len(entry.Keywords))
	for _, k := range entry.Keywords {
		if k != "" {
			keywords = append(keywords, strings.ToLower(k))
		}
	}
	if len(keywords) == 0 {
		return 0, nil
	}

	sum := 0.0
	var matched []string
	for _, term := range terms {
		best := 0.0
		for _, kw := range keywords {
			if c := keywordContribution(kw, term); c > best {
				best = c
			}
		}
		if best > 0 {
			sum += best
			matched = append(matched, term)
		}
	}
	if sum == 0 {
		return 0, nil
	}

	denom := len(terms)
	if len(keywords) > denom {
		denom = len(keywords)
	}
	score := keywordBase + (sum/float64(denom))*keywordSpread
	if score > keywordCeiling {
		score = keywordCeiling
	}
	return score, matched
}

// keywordContribution rates one keyword against one query term, strongest
// relation first: equality, keyword contains term, term contains keyword,
// then gated fuzzy similarity at half weight.
func keywordContribution(keyword, term string) float64 {
	switch {
	case keyword == term:
		return 1.0
	case strings.Contains(keyword, term):
		return 0.8
	case strings.Contains(term, keyword):
		return 0.7
	}
	if sim := Similarity(keyword, term); sim > keywordFuzzyGate {
		return sim * keywordFuzzyWeight
	}
	return 0
}

func newResult(entry dictionary.Entry, score float64, t Type, matched []string) Result {
	return Result{
		Phrase:       entry.Phrase,
		Translation:  entry.Translation,
		Category:     entry.Category,
		Context:      entry.Context,
		Alternatives: entry.Alternatives,
		Secondary:    entry.Secondary,
		Score:        score,
		Type:         t,
		MatchedTerms: dedup(matched),
	}
}

func dedup(terms []string) []string {
	if len(terms) < 2 {
		return terms
	}
	seen := make(map[string]bool, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
