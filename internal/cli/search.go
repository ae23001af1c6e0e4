// Package cli wires the ranking engine and the history store to terminal
// output, for one-shot commands and the interactive prompt.
package cli

import (
	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/bastiangx/wordbook/pkg/history"
	"github.com/bastiangx/wordbook/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Searcher runs one search mode per call and records the query in history.
type Searcher struct {
	engine      suggest.Suggester
	history     *history.Store // nil disables recording
	printer     *Printer
	minQueryLen int
}

// NewSearcher creates a searcher. Word queries shorter than minQueryLen
// characters never show suggestions.
func NewSearcher(engine suggest.Suggester, hist *history.Store, printer *Printer, minQueryLen int) *Searcher {
	return &Searcher{
		engine:      engine,
		history:     hist,
		printer:     printer,
		minQueryLen: minQueryLen,
	}
}

// Word looks up word exactly. On a hit it prints the definitions and the
// capitalized-variant hint; on a miss it prints prefix suggestions.
func (s *Searcher) Word(word string, opts suggest.Options) error {
	if err := s.record(word); err != nil {
		return err
	}

	if defs, ok := s.engine.Lookup(word); ok {
		s.printer.Definitions(word, defs)
		if upper, ok := s.engine.CapitalizedVariant(word); ok {
			s.printer.Variant(upper)
		}
		return nil
	}

	if utils.RuneLen(word) < s.minQueryLen {
		log.Debugf("Query %q is below the %d character minimum for suggestions", word, s.minQueryLen)
		s.printer.Suggestions(nil)
		return nil
	}
	s.printer.Suggestions(s.engine.SuggestByPrefix(word, opts))
	return nil
}

// Pattern prints words matching a regular expression. The pattern is
// recorded in history wrapped in double quotes.
func (s *Searcher) Pattern(pattern string, opts suggest.Options) error {
	if err := s.record(`"` + pattern + `"`); err != nil {
		return err
	}
	words, err := s.engine.SuggestByPattern(pattern, opts)
	if err != nil {
		return err
	}
	s.printer.Suggestions(words)
	return nil
}

// Fuzzy prints words within level edits of word.
func (s *Searcher) Fuzzy(word string, level int, opts suggest.Options) error {
	if err := s.record(word); err != nil {
		return err
	}
	s.printer.Suggestions(s.engine.FuzzySuggest(word, level, opts))
	return nil
}

func (s *Searcher) record(term string) error {
	if s.history == nil {
		return nil
	}
	return s.history.Add(term)
}
