package dictionary

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/vhaldran/buzzserve/internal/utils"
)

var (
	// ErrNoEntries means the supplied source held no usable entries at all.
	ErrNoEntries = errors.New("dictionary: no entries supplied")
	// ErrTooManyInvalid means more than half the supplied entries were
	// malformed, which points at a broken source rather than a few typos.
	ErrTooManyInvalid = errors.New("dictionary: too many invalid entries")
)

// Dictionary is the immutable phrase catalog shared by the matcher, ranker
// and suggestion layers. It is safe for concurrent readers without locking.
type Dictionary struct {
	entries []Entry
	index   *patricia.Trie
}

// tomlFile mirrors the on-disk layout: a flat list of [[entry]] tables.
type tomlFile struct {
	Entries []Entry `toml:"entry"`
}

// New validates raw entries, drops malformed ones and builds the catalog.
// It refuses to build when the source is empty or when dropped entries
// exceed half of the supplied set.
func New(raw []Entry) (*Dictionary, error) {
	if len(raw) == 0 {
		return nil, ErrNoEntries
	}

	entries := make([]Entry, 0, len(raw))
	dropped := 0
	for _, e := range raw {
		if !e.Valid() {
			dropped++
			log.Debugf("Dropping invalid entry: phrase=%q", e.Phrase)
			continue
		}
		entries = append(entries, e)
	}

	if dropped*2 > len(raw) {
		return nil, fmt.Errorf("%w: %d of %d dropped", ErrTooManyInvalid, dropped, len(raw))
	}
	if dropped > 0 {
		log.Warnf("Dropped %d of %d dictionary entries during validation", dropped, len(raw))
	}

	d := &Dictionary{entries: entries, index: patricia.NewTrie()}
	for i, e := range entries {
		for _, term := range e.Terms() {
			d.indexTerm(term, i)
		}
	}
	return d, nil
}

// LoadFile reads a TOML dictionary file and builds the catalog from it.
func LoadFile(path string) (*Dictionary, error) {
	var file tomlFile
	if err := utils.LoadTOMLFile(path, &file); err != nil {
		return nil, fmt.Errorf("dictionary: loading %s: %w", path, err)
	}
	return New(file.Entries)
}

func (d *Dictionary) indexTerm(term string, entryIdx int) {
	key := patricia.Prefix(term)
	if item := d.index.Get(key); item != nil {
		ids := item.([]int)
		for _, id := range ids {
			if id == entryIdx {
				return
			}
		}
		d.index.Set(key, append(ids, entryIdx))
		return
	}
	d.index.Insert(key, []int{entryIdx})
}

// Entries returns the validated entry list in load order.
// Callers must treat the slice as read-only.
func (d *Dictionary) Entries() []Entry {
	return d.entries
}

// Len returns the number of valid entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// At returns the entry at index i.
func (d *Dictionary) At(i int) Entry {
	return d.entries[i]
}

// Random returns a uniformly chosen entry using the supplied source.
func (d *Dictionary) Random(rng *rand.Rand) Entry {
	return d.entries[rng.Intn(len(d.entries))]
}

// PrefixRelated returns indices of entries whose phrase or any keyword starts
// with q, or is itself a leading prefix of q. Both directions come from the
// patricia index, deduplicated in visit order.
func (d *Dictionary) PrefixRelated(q string) []int {
	if q == "" {
		return nil
	}
	seen := make(map[int]bool)
	var ids []int
	collect := func(_ patricia.Prefix, item patricia.Item) error {
		for _, id := range item.([]int) {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		return nil
	}

	if err := d.index.VisitSubtree(patricia.Prefix(q), collect); err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
	}
	if err := d.index.VisitPrefixes(patricia.Prefix(q), collect); err != nil {
		log.Errorf("Error visiting index prefixes: %v", err)
	}
	return ids
}
