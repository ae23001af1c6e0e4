// Package dictionary holds the read-only word corpus: an ordered list of
// entries, a word index that keeps homonyms apart, and a patricia trie over
// case-folded words for prefix walks.
package dictionary

import (
	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is a single record of the corpus source.
type Entry struct {
	Word        string   `json:"word" msgpack:"word"`
	Definitions []string `json:"definitions" msgpack:"definitions"`
}

// Corpus is immutable once built. Words are enumerated in first-load order,
// never in map order.
type Corpus struct {
	entries []Entry
	index   map[string][]int
	words   []string
	trie    *patricia.Trie
}

// New builds a Corpus from entries. Repeated words accumulate as separate
// definition groups.
func New(entries []Entry) *Corpus {
	c := &Corpus{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string][]int, len(entries)),
		words:   make([]string, 0, len(entries)),
		trie:    patricia.NewTrie(),
	}
	for _, e := range entries {
		c.add(e)
	}
	return c
}

func (c *Corpus) add(e Entry) {
	pos := len(c.entries)
	c.entries = append(c.entries, e)

	if _, seen := c.index[e.Word]; !seen {
		c.words = append(c.words, e.Word)
		c.insertFolded(e.Word)
	}
	c.index[e.Word] = append(c.index[e.Word], pos)
}

// insertFolded files word under its case-folded key. Several original
// spellings ("Áss", "áss") share one trie node.
func (c *Corpus) insertFolded(word string) {
	key := patricia.Prefix(utils.FoldCase(word))
	if item := c.trie.Get(key); item != nil {
		c.trie.Set(key, append(item.([]string), word))
		return
	}
	c.trie.Insert(key, []string{word})
}

// Lookup returns the definitions of word, concatenated across homonyms in
// load order. The match is case-sensitive.
func (c *Corpus) Lookup(word string) ([]string, bool) {
	positions, ok := c.index[word]
	if !ok {
		return nil, false
	}
	var defs []string
	for _, p := range positions {
		defs = append(defs, c.entries[p].Definitions...)
	}
	return defs, true
}

// Groups returns each homonym's definition list separately.
func (c *Corpus) Groups(word string) [][]string {
	positions := c.index[word]
	groups := make([][]string, 0, len(positions))
	for _, p := range positions {
		groups = append(groups, c.entries[p].Definitions)
	}
	return groups
}

// Contains reports whether word is a corpus key.
func (c *Corpus) Contains(word string) bool {
	_, ok := c.index[word]
	return ok
}

// Len returns the number of distinct words.
func (c *Corpus) Len() int {
	return len(c.words)
}

// Entries returns the number of source records, homonyms included.
func (c *Corpus) Entries() int {
	return len(c.entries)
}

// Words returns the distinct words in first-load order.
// The returned slice must not be modified.
func (c *Corpus) Words() []string {
	return c.words
}

// WordAt returns the i-th distinct word in first-load order.
func (c *Corpus) WordAt(i int) string {
	return c.words[i]
}

// VisitPrefix calls fn for every word that starts with prefix, ignoring
// case. Visit order follows the trie, callers sort.
func (c *Corpus) VisitPrefix(prefix string, fn func(word string)) error {
	return c.trie.VisitSubtree(patricia.Prefix(utils.FoldCase(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		for _, w := range item.([]string) {
			fn(w)
		}
		return nil
	})
}
