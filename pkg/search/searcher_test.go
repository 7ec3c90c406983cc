package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhaldran/buzzserve/pkg/config"
	"github.com/vhaldran/buzzserve/pkg/dictionary"
	"github.com/vhaldran/buzzserve/pkg/match"
)

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()
	return NewSearcher(dictionary.Builtin(), config.DefaultConfig().Search)
}

func TestSearchEmptyQuery(t *testing.T) {
	s := newTestSearcher(t)

	for _, raw := range []string{"", "   ", "\t\n"} {
		resp, err := s.Search(raw)
		require.NoError(t, err)
		assert.Equal(t, StatusEmpty, resp.Status, "raw=%q", raw)
	}
}

func TestSearchValidation(t *testing.T) {
	s := newTestSearcher(t)

	testCases := []struct {
		raw    string
		reason InvalidReason
	}{
		{"a", ReasonTooShort},
		{strings.Repeat("a", 101), ReasonTooLong},
		{"123", ReasonNoLetters},
		{"?!?!", ReasonNoLetters},
	}

	for _, tc := range testCases {
		resp, err := s.Search(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, StatusInvalid, resp.Status, "raw=%q", tc.raw)
		assert.Equal(t, tc.reason, resp.Reason, "raw=%q", tc.raw)
	}
}

func TestSearchExactPhraseRanksFirst(t *testing.T) {
	dict := dictionary.Builtin()
	s := NewSearcher(dict, config.DefaultConfig().Search)

	for _, entry := range dict.Entries() {
		resp, err := s.Search(entry.Phrase)
		require.NoError(t, err)
		require.Equal(t, StatusOK, resp.Status)
		require.NotEmpty(t, resp.Results, "phrase=%q", entry.Phrase)

		top := resp.Results[0]
		assert.Equal(t, entry.Phrase, top.Phrase)
		assert.Equal(t, match.TypeExact, top.Type)
		assert.Equal(t, 1.0, top.Score)
	}
}

func TestSearchResultCap(t *testing.T) {
	s := newTestSearcher(t)

	// A broad query touching many entries must still be truncated.
	resp, err := s.Search("work together strategy")
	require.NoError(t, err)
	require.Equal(t, StatusOK, resp.Status)
	assert.LessOrEqual(t, len(resp.Results), 10)
}

func TestSearchKeywordScenario(t *testing.T) {
	s := newTestSearcher(t)

	resp, err := s.Search("teamwork")
	require.NoError(t, err)
	require.Equal(t, StatusOK, resp.Status)

	var found *match.Result
	for i := range resp.Results {
		if resp.Results[i].Phrase == "synergy" {
			found = &resp.Results[i]
			break
		}
	}
	require.NotNil(t, found, "synergy should match via its teamwork keyword")
	assert.Equal(t, match.TypeKeyword, found.Type)
	assert.Greater(t, found.Score, 0.1)
	assert.LessOrEqual(t, found.Score, 0.85)
}

func TestSearchIdempotent(t *testing.T) {
	cfg := config.DefaultConfig().Search

	for _, capacity := range []int{0, 100} {
		cfg.CacheCapacity = capacity
		s := NewSearcher(dictionary.Builtin(), cfg)

		first, err := s.Search("leverage")
		require.NoError(t, err)
		second, err := s.Search("leverage")
		require.NoError(t, err)
		assert.Equal(t, first, second, "capacity=%d", capacity)
	}
}

func TestSearchCacheMatchesFreshComputation(t *testing.T) {
	cfg := config.DefaultConfig().Search

	cfg.CacheCapacity = 0
	uncached := NewSearcher(dictionary.Builtin(), cfg)
	cfg.CacheCapacity = 100
	cached := NewSearcher(dictionary.Builtin(), cfg)

	for _, q := range []string{"synergy", "teamwork", "circle back", "pivto"} {
		fresh, err := uncached.Search(q)
		require.NoError(t, err)

		// Twice, so the second hit comes from the cache.
		_, err = cached.Search(q)
		require.NoError(t, err)
		hit, err := cached.Search(q)
		require.NoError(t, err)

		assert.Equal(t, fresh, hit, "query=%q", q)
	}
}

func TestSearchSanitization(t *testing.T) {
	s := newTestSearcher(t)

	// Markup runes are stripped before scoring, so the quoted query is
	// indistinguishable from the bare one.
	quoted, err := s.Search("'synergy'")
	require.NoError(t, err)
	bare, err := s.Search("synergy")
	require.NoError(t, err)
	assert.Equal(t, bare, quoted)

	dirty, err := s.Search(`<script>alert(1)</script>synergy`)
	require.NoError(t, err)
	clean, err := s.Search("scriptalert(1)/scriptsynergy")
	require.NoError(t, err)
	assert.Equal(t, clean, dirty)

	// No markup rune may survive into highlighting terms.
	for _, r := range dirty.Results {
		for _, term := range r.MatchedTerms {
			assert.NotContains(t, term, "<")
			assert.NotContains(t, term, ">")
		}
	}
}

func TestSearchNoResults(t *testing.T) {
	dict, err := dictionary.New([]dictionary.Entry{
		{Phrase: "synergy", Translation: "working together"},
	})
	require.NoError(t, err)
	s := NewSearcher(dict, config.DefaultConfig().Search)

	resp, err := s.Search("zzxxqq")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Results)
}

func TestSearchTieBreakShorterPhraseFirst(t *testing.T) {
	dict, err := dictionary.New([]dictionary.Entry{
		{Phrase: "alignment workshop", Translation: "a long meeting"},
		{Phrase: "alignment", Translation: "agreement"},
	})
	require.NoError(t, err)
	s := NewSearcher(dict, config.DefaultConfig().Search)

	// Both entries contain "alignm", scoring 0.95 each; the shorter
	// phrase must come first.
	resp, err := s.Search("alignm")
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "alignment", resp.Results[0].Phrase)
}

func TestSearchScoresDescending(t *testing.T) {
	s := newTestSearcher(t)

	resp, err := s.Search("leverage")
	require.NoError(t, err)
	eps := config.DefaultConfig().Search.TieEpsilon
	for i := 1; i < len(resp.Results); i++ {
		assert.LessOrEqual(t, resp.Results[i].Score, resp.Results[i-1].Score+eps)
	}
}
