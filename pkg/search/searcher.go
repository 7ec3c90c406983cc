// Package search is the core, orchestrating the matcher over the catalog:
// it normalizes and validates the raw query, scores candidate entries,
// ranks them with the tie-break policy and serves repeated queries from a
// bounded cache.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vhaldran/buzzserve/internal/utils"
	"github.com/vhaldran/buzzserve/pkg/config"
	"github.com/vhaldran/buzzserve/pkg/dictionary"
	"github.com/vhaldran/buzzserve/pkg/match"
)

// Status tells the caller which view to render: a browsing view for an empty
// query, a hint for an invalid one, or the result list.
type Status string

const (
	StatusEmpty   Status = "empty"
	StatusInvalid Status = "invalid"
	StatusOK      Status = "ok"
)

// InvalidReason is the specific validation failure, never a generic one.
type InvalidReason string

const (
	ReasonTooShort  InvalidReason = "tooShort"
	ReasonTooLong   InvalidReason = "tooLong"
	ReasonNoLetters InvalidReason = "noLetters"
)

// Response is the typed outcome of one Search call.
type Response struct {
	Status  Status
	Reason  InvalidReason
	Results []match.Result
}

// Searcher ranks dictionary entries against queries. It holds no per-call
// state beyond the bounded cache and is safe for concurrent use.
type Searcher struct {
	dict  *dictionary.Dictionary
	cfg   config.SearchConfig
	cache *resultCache
}

// NewSearcher builds a Searcher over the given catalog. All thresholds come
// from cfg; a CacheCapacity of zero disables caching entirely.
func NewSearcher(dict *dictionary.Dictionary, cfg config.SearchConfig) *Searcher {
	return &Searcher{
		dict:  dict,
		cfg:   cfg,
		cache: newResultCache(cfg.CacheCapacity),
	}
}

// Normalize applies input sanitization and lower-casing. Every string the
// engine scores has passed through here first.
func Normalize(raw string) string {
	return strings.ToLower(utils.Sanitize(raw))
}

// Search validates and ranks. The error return is reserved for unexpected
// faults; expected conditions (empty, too short, no matches) are statuses.
// A failed call leaves the cache untouched.
func (s *Searcher) Search(raw string) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{}
			err = fmt.Errorf("search: unexpected fault: %v", r)
		}
	}()

	query := Normalize(raw)
	if query == "" {
		return Response{Status: StatusEmpty}, nil
	}
	if reason, ok := s.validate(query); !ok {
		return Response{Status: StatusInvalid, Reason: reason}, nil
	}

	if results, ok := s.cache.get(query); ok {
		log.Debugf("Cache hit for query %q", query)
		return Response{Status: StatusOK, Results: results}, nil
	}

	results := s.rank(query)
	s.cache.put(query, results)
	return Response{Status: StatusOK, Results: results}, nil
}

func (s *Searcher) validate(query string) (InvalidReason, bool) {
	n := len([]rune(query))
	switch {
	case n < s.cfg.MinQueryLen:
		return ReasonTooShort, false
	case n > s.cfg.MaxQueryLen:
		return ReasonTooLong, false
	case !utils.HasLetter(query):
		return ReasonNoLetters, false
	}
	return "", true
}

// rank runs the matcher over pre-filtered candidates, keeps qualifying
// scores, sorts and truncates.
func (s *Searcher) rank(query string) []match.Result {
	terms := strings.Fields(query)
	queryRunes := runeSet(query)

	var results []match.Result
	for _, entry := range s.dict.Entries() {
		if !candidate(entry, queryRunes) {
			continue
		}
		result, ok := scoreEntry(entry, query, terms)
		if !ok || result.Score <= s.cfg.ScoreThreshold {
			continue
		}
		results = append(results, result)
	}

	s.sortResults(results)

	if len(results) > s.cfg.MaxResults {
		results = results[:s.cfg.MaxResults]
	}
	return results
}

// scoreEntry isolates per-entry faults: one malformed entry is skipped with
// a warning instead of aborting the whole scan.
func scoreEntry(entry dictionary.Entry, query string, terms []string) (result match.Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("Skipping entry %q: scoring fault: %v", entry.Phrase, r)
			result, ok = match.Result{}, false
		}
	}()
	return match.Score(entry, query, terms)
}

// sortResults orders by score descending, treating scores within TieEpsilon
// as tied; ties prefer exact, then phraseContains, then the shorter phrase.
func (s *Searcher) sortResults(results []match.Result) {
	eps := s.cfg.TieEpsilon
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if diff := a.Score - b.Score; diff > eps {
			return true
		} else if diff < -eps {
			return false
		}
		if exactA, exactB := a.Type == match.TypeExact, b.Type == match.TypeExact; exactA != exactB {
			return exactA
		}
		if subA, subB := a.Type == match.TypePhraseContains, b.Type == match.TypePhraseContains; subA != subB {
			return subA
		}
		return len(a.Phrase) < len(b.Phrase)
	})
}

// candidate is the pre-filter short-circuit: an entry stays in the running
// when its phrase or any keyword shares at least one rune with the query.
// Entries failing this can never clear any scoring rule's gate, so the
// filter cannot change the final result set.
func candidate(entry dictionary.Entry, queryRunes map[rune]bool) bool {
	for _, term := range entry.Terms() {
		for _, r := range term {
			if queryRunes[r] {
				return true
			}
		}
	}
	return false
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		if r != ' ' {
			set[r] = true
		}
	}
	return set
}
