/*
Package suggest is the ranking engine: exact lookups, prefix and pattern
suggestions, edit-distance suggestions and the capitalized-variant hint.

Every function is pure over an immutable corpus. Results are always fully
ordered: prefix candidates by extra length, fuzzy candidates by distance, and
ties by the word itself so output never depends on map or trie order.

	engine := suggest.NewEngine(corpus)
	words := engine.SuggestByPrefix("haf", suggest.Options{Limit: 5})
	near := engine.FuzzySuggest("hestt", 2, suggest.Options{All: true})

Pagination is shared by both modes. All returns every ranked match and
ignores Limit and Offset; otherwise Offset skips that many ranked matches and
Limit caps the page.
*/
package suggest

// Suggester is what front ends (CLI, IPC server) need from the engine.
type Suggester interface {
	// Lookup returns the definitions of an exact, case-sensitive match
	Lookup(word string) ([]string, bool)

	// SuggestByPrefix ranks corpus words starting with word, ignoring case
	SuggestByPrefix(word string, opts Options) []string

	// SuggestByPattern ranks corpus words matching a caller-supplied regexp
	SuggestByPattern(pattern string, opts Options) ([]string, error)

	// FuzzySuggest ranks corpus words within level edits of word
	FuzzySuggest(word string, level int, opts Options) []string

	// CapitalizedVariant returns the upper-cased key when it exists separately
	CapitalizedVariant(word string) (string, bool)
}
