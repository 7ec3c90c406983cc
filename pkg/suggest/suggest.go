// Package suggest proposes alternate phrases when a search was weak or
// empty: near-miss terms for zero-result queries, and related phrases to
// show alongside a non-empty result set.
package suggest

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/vhaldran/buzzserve/internal/utils"
	"github.com/vhaldran/buzzserve/pkg/config"
	"github.com/vhaldran/buzzserve/pkg/dictionary"
	"github.com/vhaldran/buzzserve/pkg/match"
)

// Relevance weights for Similar, strongest relation first.
const (
	weightPrefix    = 3
	weightSubstring = 2
	weightKeyword   = 1
)

// Suggestion is one proposed phrase. Weight is only set by Similar.
type Suggestion struct {
	Phrase   string
	Category string
	Weight   int
}

// Generator derives suggestions from the catalog. The random source is
// injected so tests can pin the fill order.
type Generator struct {
	dict *dictionary.Dictionary
	cfg  config.SuggestConfig
	rng  *rand.Rand
}

// NewGenerator builds a Generator over the given catalog.
func NewGenerator(dict *dictionary.Dictionary, cfg config.SuggestConfig, rng *rand.Rand) *Generator {
	return &Generator{dict: dict, cfg: cfg, rng: rng}
}

// Rand exposes the injected random source, for callers that need uniform
// entry picks consistent with the suggestion fill.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// Similar proposes near-miss phrases for a query that produced no results.
// Prefix relations on keywords weigh heaviest, then substring relations on
// the phrase, then keyword containment within a small length difference.
func (g *Generator) Similar(rawQuery string) []Suggestion {
	query := strings.ToLower(utils.Sanitize(rawQuery))
	if query == "" {
		return nil
	}

	// The prefix index narrows the weight-3 pass; each hit is still
	// verified against keywords only, since a phrase prefix relation
	// belongs to the substring tier.
	prefixed := make(map[int]bool)
	for _, id := range g.dict.PrefixRelated(query) {
		if keywordPrefixRelated(g.dict.At(id), query) {
			prefixed[id] = true
		}
	}

	var out []Suggestion
	for i, entry := range g.dict.Entries() {
		w := 0
		phrase := strings.ToLower(entry.Phrase)
		switch {
		case prefixed[i]:
			w = weightPrefix
		case strings.Contains(phrase, query) || strings.Contains(query, phrase):
			w = weightSubstring
		case keywordContains(entry, query, g.cfg.KeywordLenSlack):
			w = weightKeyword
		}
		if w > 0 {
			out = append(out, Suggestion{Phrase: entry.Phrase, Category: entry.Category, Weight: w})
		}
	}

	sortByWeight(out)
	if len(out) > g.cfg.MaxSuggestions {
		out = out[:g.cfg.MaxSuggestions]
	}
	return out
}

// Related proposes phrases to show next to non-empty results: same-category
// entries first, then the configured popular list, then random fill. The
// query itself and anything already shown never appear.
func (g *Generator) Related(results []match.Result, rawQuery string) []Suggestion {
	query := strings.ToLower(utils.Sanitize(rawQuery))

	shown := make(map[string]bool, len(results)+1)
	shown[query] = true
	for _, r := range results {
		shown[strings.ToLower(r.Phrase)] = true
	}

	var out []Suggestion
	add := func(e dictionary.Entry) bool {
		key := strings.ToLower(e.Phrase)
		if shown[key] {
			return false
		}
		shown[key] = true
		out = append(out, Suggestion{Phrase: e.Phrase, Category: e.Category})
		return len(out) >= g.cfg.MaxSuggestions
	}

	// Same-category pass, capped per represented category.
	for _, category := range representedCategories(results) {
		taken := 0
		for _, entry := range g.dict.Entries() {
			if entry.Category != category || taken >= g.cfg.CategoryCap {
				continue
			}
			if shown[strings.ToLower(entry.Phrase)] {
				continue
			}
			taken++
			if add(entry) {
				return out
			}
		}
	}

	// Popular fill.
	for _, phrase := range g.cfg.Popular {
		if entry, ok := g.lookup(phrase); ok {
			if add(entry) {
				return out
			}
		}
	}

	// Random fill. Bounded attempts so a tiny catalog cannot loop forever.
	for attempts := 0; attempts < g.dict.Len()*4 && len(out) < g.cfg.MaxSuggestions; attempts++ {
		if add(g.dict.Random(g.rng)) {
			return out
		}
	}
	return out
}

func (g *Generator) lookup(phrase string) (dictionary.Entry, bool) {
	lower := strings.ToLower(phrase)
	for _, entry := range g.dict.Entries() {
		if strings.ToLower(entry.Phrase) == lower {
			return entry, true
		}
	}
	return dictionary.Entry{}, false
}

func keywordPrefixRelated(entry dictionary.Entry, query string) bool {
	for _, kw := range entry.Keywords {
		k := strings.ToLower(kw)
		if k == "" {
			continue
		}
		if strings.HasPrefix(k, query) || strings.HasPrefix(query, k) {
			return true
		}
	}
	return false
}

func keywordContains(entry dictionary.Entry, query string, slack int) bool {
	for _, kw := range entry.Keywords {
		k := strings.ToLower(kw)
		if strings.Contains(k, query) && utils.AbsDiff(len(k), len(query)) <= slack {
			return true
		}
	}
	return false
}

// representedCategories lists result categories in first-seen order.
func representedCategories(results []match.Result) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range results {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}

// sortByWeight orders by descending weight; catalog order breaks ties.
func sortByWeight(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Weight > s[j].Weight
	})
}
