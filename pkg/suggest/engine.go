package suggest

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/bastiangx/wordbook/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"
)

// ErrInvalidPattern is returned when a search pattern does not compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Options controls which slice of the ranked matches is returned.
type Options struct {
	Limit  int
	Offset int
	All    bool
}

// Candidate is a ranked match. Rank is the extra length over the query in
// prefix mode and the edit distance in fuzzy mode.
type Candidate struct {
	Word string
	Rank int
}

// Engine ranks corpus words against a query.
type Engine struct {
	corpus *dictionary.Corpus
}

// NewEngine creates an engine over an already loaded corpus.
func NewEngine(corpus *dictionary.Corpus) *Engine {
	return &Engine{corpus: corpus}
}

// Lookup returns every definition filed under word, homonyms concatenated.
func (e *Engine) Lookup(word string) ([]string, bool) {
	return e.corpus.Lookup(word)
}

// SuggestByPrefix returns words whose lower-cased form starts with the
// lower-cased query, closest in length first.
func (e *Engine) SuggestByPrefix(word string, opts Options) []string {
	queryLen := utils.RuneLen(word)

	var candidates []Candidate
	err := e.corpus.VisitPrefix(word, func(w string) {
		candidates = append(candidates, Candidate{
			Word: w,
			Rank: extraChars(w, queryLen),
		})
	})
	if err != nil {
		log.Errorf("Error visiting corpus trie: %v", err)
		return nil
	}

	sortCandidates(candidates)
	return Paginate(candidates, opts)
}

// SuggestByPattern matches pattern verbatim against every word. Without a
// query word the rank is the candidate's own length.
func (e *Engine) SuggestByPattern(pattern string, opts Options) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	var candidates []Candidate
	for _, w := range e.corpus.Words() {
		if re.MatchString(w) {
			candidates = append(candidates, Candidate{Word: w, Rank: extraChars(w, 0)})
		}
	}

	sortCandidates(candidates)
	return Paginate(candidates, opts), nil
}

// FuzzySuggest returns words within level Levenshtein edits of word.
func (e *Engine) FuzzySuggest(word string, level int, opts Options) []string {
	if level < 0 {
		level = 0
	}

	var candidates []Candidate
	for _, w := range e.corpus.Words() {
		// Length gap is a lower bound on the distance.
		if abs(utils.RuneLen(w)-utils.RuneLen(word)) > level {
			continue
		}
		if dist := edlib.LevenshteinDistance(word, w); dist <= level {
			candidates = append(candidates, Candidate{Word: w, Rank: dist})
		}
	}

	sortCandidates(candidates)
	return Paginate(candidates, opts)
}

// CapitalizedVariant reports the fully upper-cased form of an all-lowercase
// word when the corpus files it as a separate key.
func (e *Engine) CapitalizedVariant(word string) (string, bool) {
	if !utils.IsAllLower(word) {
		return "", false
	}
	upper := strings.ToUpper(word)
	if upper == word || !e.corpus.Contains(upper) {
		return "", false
	}
	return upper, true
}

// Paginate applies opts to ranked candidates.
func Paginate(candidates []Candidate, opts Options) []string {
	if !opts.All {
		offset := max(opts.Offset, 0)
		if offset >= len(candidates) || opts.Limit <= 0 {
			return []string{}
		}
		end := min(offset+opts.Limit, len(candidates))
		candidates = candidates[offset:end]
	}

	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.Word
	}
	return words
}

// sortCandidates orders by rank, then by word.
func sortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Rank != candidates[j].Rank {
			return candidates[i].Rank < candidates[j].Rank
		}
		return candidates[i].Word < candidates[j].Word
	})
}

// extraChars is len(candidate) - queryLen in runes, clamped at 0.
func extraChars(candidate string, queryLen int) int {
	return max(utils.RuneLen(candidate)-queryLen, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
