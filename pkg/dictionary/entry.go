// Package dictionary holds the phrase catalog: an immutable, in-memory set of
// phrase to plain-language entries loaded once at startup, plus a prefix index
// over phrases and keywords used by the suggestion layer.
package dictionary

import "strings"

// Meaning is one alternate interpretation of a phrase.
type Meaning struct {
	Translation string `toml:"translation"`
	Context     string `toml:"context,omitempty"`
}

// Entry is a single phrase record. Entries are read-only after load.
type Entry struct {
	Phrase       string    `toml:"phrase"`
	Translation  string    `toml:"translation"`
	Keywords     []string  `toml:"keywords,omitempty"`
	Category     string    `toml:"category,omitempty"`
	Alternatives []string  `toml:"alternatives,omitempty"`
	Context      string    `toml:"context,omitempty"`
	Secondary    []Meaning `toml:"secondary,omitempty"`
}

// Valid reports whether the entry carries the two required fields.
func (e Entry) Valid() bool {
	return strings.TrimSpace(e.Phrase) != "" && strings.TrimSpace(e.Translation) != ""
}

// Terms returns the searchable surface of the entry: the lower-cased phrase
// followed by its lower-cased keywords.
func (e Entry) Terms() []string {
	terms := make([]string, 0, len(e.Keywords)+1)
	terms = append(terms, strings.ToLower(e.Phrase))
	for _, k := range e.Keywords {
		if k != "" {
			terms = append(terms, strings.ToLower(k))
		}
	}
	return terms
}
