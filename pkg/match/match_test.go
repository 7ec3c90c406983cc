package match

import (
	"strings"
	"testing"

	"github.com/vhaldran/buzzserve/pkg/dictionary"
)

// A phrase with keyword aliases, exercising every keyword tier.
var synergyEntry = dictionary.Entry{
	Phrase:      "synergy",
	Translation: "working together produces more than working apart",
	Keywords:    []string{"synergy", "together", "collaboration", "teamwork"},
	Category:    "collaboration",
}

// kaizenEntry has no keywords, so only the phrase rules and the fuzzy
// fallback can fire.
var kaizenEntry = dictionary.Entry{
	Phrase:      "kaizen",
	Translation: "continuous improvement",
}

func score(t *testing.T, e dictionary.Entry, query string) Result {
	t.Helper()
	r, ok := Score(e, query, strings.Fields(query))
	if !ok {
		t.Fatalf("Score(%q, %q) did not match", e.Phrase, query)
	}
	return r
}

func TestScoreRuleOrder(t *testing.T) {
	testCases := []struct {
		entry        dictionary.Entry
		query        string
		expectedType Type
		minScore     float64
		maxScore     float64
		description  string
	}{
		{synergyEntry, "synergy", TypeExact, 1.0, 1.0, "exact phrase"},
		{synergyEntry, "ynerg", TypePhraseContains, 0.95, 0.95, "phrase contains query"},
		{synergyEntry, "synergy now", TypeQueryContains, 0.90, 0.90, "query contains phrase"},
		{synergyEntry, "synergyy", TypeQueryContains, 0.90, 0.90, "trailing typo still contains the phrase"},
		{synergyEntry, "teamwork", TypeKeyword, 0.5125, 0.5125, "exact keyword, 0.4 + (1/4)*0.45"},
		{synergyEntry, "sinergy", TypeKeyword, 0.4, 0.85, "near-miss keyword via gated similarity"},
		{kaizenEntry, "kaisen", TypeFuzzy, 0.6, 0.6, "fuzzy fallback, capped similarity times 0.6"},
	}

	for _, tc := range testCases {
		r := score(t, tc.entry, tc.query)
		if r.Type != tc.expectedType {
			t.Errorf("%s: Score(%q) type = %s, want %s", tc.description, tc.query, r.Type, tc.expectedType)
		}
		if r.Score < tc.minScore || r.Score > tc.maxScore {
			t.Errorf("%s: Score(%q) = %f, want in [%f, %f]",
				tc.description, tc.query, r.Score, tc.minScore, tc.maxScore)
		}
	}
}

func TestScoreCopiesEntryFields(t *testing.T) {
	r := score(t, synergyEntry, "synergy")
	if r.Phrase != "synergy" || r.Translation != synergyEntry.Translation || r.Category != "collaboration" {
		t.Errorf("result did not carry entry fields: %+v", r)
	}
	if len(r.MatchedTerms) != 1 || r.MatchedTerms[0] != "synergy" {
		t.Errorf("exact match terms = %v, want [synergy]", r.MatchedTerms)
	}
}

func TestKeywordSumAcrossTerms(t *testing.T) {
	// Two exact keyword hits: sum 2.0, denominator max(2, 4) = 4.
	r := score(t, synergyEntry, "teamwork collaboration")
	if r.Type != TypeKeyword {
		t.Fatalf("type = %s, want keyword", r.Type)
	}
	want := 0.4 + (2.0/4.0)*0.45
	if r.Score != want {
		t.Errorf("Score = %f, want %f", r.Score, want)
	}
	if len(r.MatchedTerms) != 2 {
		t.Errorf("matched terms = %v, want both query terms", r.MatchedTerms)
	}
}

func TestKeywordCeiling(t *testing.T) {
	entry := dictionary.Entry{
		Phrase:      "consensus",
		Translation: "agreement",
		Keywords:    []string{"aligned"},
	}
	// One term, one keyword: "aligned" contains "align", so the raw
	// score is 0.4 + 0.8*0.45 = 0.76, inside the 0.85 ceiling.
	r := score(t, entry, "align")
	if r.Type != TypeKeyword {
		t.Fatalf("type = %s, want keyword", r.Type)
	}
	if want := 0.4 + 0.8*0.45; r.Score != want {
		t.Errorf("Score = %f, want %f", r.Score, want)
	}
}

func TestKeywordZeroFallsThroughToFuzzy(t *testing.T) {
	// No keyword relates to the query, but the phrase is one edit away:
	// the fuzzy rule must take over only in that case.
	entry := dictionary.Entry{
		Phrase:      "pivot",
		Translation: "change direction",
		Keywords:    []string{"strategy"},
	}
	r := score(t, entry, "pivto")
	if r.Type != TypeFuzzy {
		t.Errorf("type = %s, want fuzzy when no keyword contributes", r.Type)
	}
}

func TestKeywordNonzeroSuppressesFuzzy(t *testing.T) {
	// A weak keyword score still wins over a potentially stronger fuzzy
	// score. This cliff is shipped behavior and must not be smoothed.
	r := score(t, synergyEntry, "togethr")
	if r.Type != TypeKeyword {
		t.Errorf("type = %s, want keyword to suppress fuzzy", r.Type)
	}
}

func TestNoMatch(t *testing.T) {
	if _, ok := Score(kaizenEntry, "zzxxqq", []string{"zzxxqq"}); ok {
		t.Error("disjoint query should not match")
	}
}

func TestMatchedTermsDeduplicated(t *testing.T) {
	r := score(t, synergyEntry, "teamwork teamwork")
	if len(r.MatchedTerms) != 1 {
		t.Errorf("matched terms = %v, want deduplicated", r.MatchedTerms)
	}
}
