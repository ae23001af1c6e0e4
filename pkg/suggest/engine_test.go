package suggest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bastiangx/wordbook/pkg/dictionary"
	"github.com/hbollon/go-edlib"
)

func newEngine(words ...string) *Engine {
	entries := make([]dictionary.Entry, len(words))
	for i, w := range words {
		entries[i] = dictionary.Entry{Word: w, Definitions: []string{"def of " + w}}
	}
	return NewEngine(dictionary.New(entries))
}

func TestFuzzySuggestExample(t *testing.T) {
	e := newEngine("cat", "bat", "bad", "cart")

	got := e.FuzzySuggest("cat", 1, Options{All: true})
	if strings.Join(got, ",") != "bat,cat" {
		t.Errorf("expected [bat cat], got %v", got)
	}
}

func TestFuzzySuggestOrdering(t *testing.T) {
	e := newEngine("hestr", "hest", "gestr", "haf", "hestar", "vestr")

	got := e.FuzzySuggest("hestr", 2, Options{All: true})
	want := []string{"hestr", "gestr", "hest", "hestar", "vestr"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Every result stays within the edit budget, sorted by (distance, word).
	prev, prevWord := -1, ""
	for _, w := range got {
		d := edlib.LevenshteinDistance("hestr", w)
		if d > 2 {
			t.Errorf("%s has distance %d > 2", w, d)
		}
		if d < prev || (d == prev && w < prevWord) {
			t.Errorf("results out of order at %s", w)
		}
		prev, prevWord = d, w
	}
}

func TestFuzzySuggestLevelZero(t *testing.T) {
	e := newEngine("cat", "bat")
	if got := e.FuzzySuggest("cat", 0, Options{All: true}); len(got) != 1 || got[0] != "cat" {
		t.Errorf("level 0 should only return the exact word, got %v", got)
	}
	if got := e.FuzzySuggest("cat", -3, Options{All: true}); len(got) != 1 {
		t.Errorf("negative level behaves like 0, got %v", got)
	}
}

func TestSuggestByPrefix(t *testing.T) {
	e := newEngine("hafa", "haf", "Hafnia", "hafr", "hestr", "áss", "Áss")

	testCases := []struct {
		query       string
		expected    []string
		description string
	}{
		{"haf", []string{"haf", "hafa", "hafr", "Hafnia"}, "case-insensitive, ties broken by word"},
		{"HAF", []string{"haf", "hafa", "hafr", "Hafnia"}, "uppercase query"},
		{"áss", []string{"Áss", "áss"}, "non-ASCII fold"},
		{"x", []string{}, "no match"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := e.SuggestByPrefix(tc.query, Options{All: true})
			if strings.Join(got, ",") != strings.Join(tc.expected, ",") {
				t.Errorf("SuggestByPrefix(%q) = %v, want %v", tc.query, got, tc.expected)
			}
			for _, w := range got {
				if !strings.HasPrefix(strings.ToLower(w), strings.ToLower(tc.query)) {
					t.Errorf("%s does not start with %s", w, tc.query)
				}
			}
		})
	}
}

func TestSuggestByPrefixMetacharacters(t *testing.T) {
	e := newEngine("a.b", "axb", "a.bc")
	got := e.SuggestByPrefix("a.b", Options{All: true})
	if strings.Join(got, ",") != "a.b,a.bc" {
		t.Errorf("query must be matched literally, got %v", got)
	}
}

func TestSuggestByPattern(t *testing.T) {
	e := newEngine("hafa", "haf", "Hafnia", "hestr", "gestr")

	got, err := e.SuggestByPattern("^h.*r$", Options{All: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(got, ",") != "hestr" {
		t.Errorf("expected [hestr], got %v", got)
	}

	// Patterns are case-sensitive as written.
	got, _ = e.SuggestByPattern("^haf", Options{All: true})
	if strings.Join(got, ",") != "haf,hafa" {
		t.Errorf("expected [haf hafa], got %v", got)
	}
	got, _ = e.SuggestByPattern("(?i)^haf", Options{All: true})
	if len(got) != 3 {
		t.Errorf("expected inline flag to fold case, got %v", got)
	}
}

func TestSuggestByPatternInvalid(t *testing.T) {
	e := newEngine("haf")
	_, err := e.SuggestByPattern("([", Options{Limit: 5})
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestPagination(t *testing.T) {
	e := newEngine("ha", "hab", "hac", "hadd", "haeee")

	testCases := []struct {
		opts        Options
		expected    string
		description string
	}{
		{Options{Limit: 2}, "ha,hab", "first page"},
		{Options{Limit: 2, Offset: 2}, "hac,hadd", "second page"},
		{Options{Limit: 2, Offset: 4}, "haeee", "short last page"},
		{Options{Limit: 2, Offset: 9}, "", "offset past end"},
		{Options{Limit: 0}, "", "zero limit"},
		{Options{Limit: 1, Offset: -1}, "ha", "negative offset clamps"},
		{Options{Limit: 1, Offset: 3, All: true}, "ha,hab,hac,hadd,haeee", "all ignores limit and offset"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := e.SuggestByPrefix("ha", tc.opts)
			if strings.Join(got, ",") != tc.expected {
				t.Errorf("got %v, want %s", got, tc.expected)
			}
		})
	}
}

func TestEmptyCorpusYieldsNothing(t *testing.T) {
	e := newEngine()
	if got := e.SuggestByPrefix("a", Options{All: true}); len(got) != 0 {
		t.Errorf("expected no prefix suggestions, got %v", got)
	}
	if got := e.FuzzySuggest("a", 3, Options{All: true}); len(got) != 0 {
		t.Errorf("expected no fuzzy suggestions, got %v", got)
	}
	got, err := e.SuggestByPattern(".*", Options{All: true})
	if err != nil || len(got) != 0 {
		t.Errorf("expected no pattern suggestions, got %v, %v", got, err)
	}
}

func TestCapitalizedVariant(t *testing.T) {
	e := newEngine("áss", "ÁSS", "haf", "Vín", "VÍN", "orð")

	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"áss", "ÁSS", true},
		{"haf", "", false},
		{"Vín", "", false},
		{"ÁSS", "", false},
		{"or2", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := e.CapitalizedVariant(tc.input)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("CapitalizedVariant(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	e := newEngine("haf")
	defs, ok := e.Lookup("haf")
	if !ok || len(defs) != 1 || defs[0] != "def of haf" {
		t.Errorf("unexpected lookup result %v, %v", defs, ok)
	}
	if _, ok := e.Lookup("Haf"); ok {
		t.Errorf("lookup must be case-sensitive")
	}
}

func BenchmarkFuzzySuggest(b *testing.B) {
	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	e := newEngine(words...)
	inputs := []string{"wrd123", "word1", "wordd2", "woord3", "wird4"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.FuzzySuggest(inputs[i%len(inputs)], 2, Options{Limit: 10})
	}
}

func BenchmarkSuggestByPrefix(b *testing.B) {
	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	e := newEngine(words...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.SuggestByPrefix("word1", Options{Limit: 10})
	}
}

func TestSuggestByPrefixFoldsSigma(t *testing.T) {
	e := newEngine("ςx", "σy", "tau")

	for _, query := range []string{"Σ", "σ", "ς"} {
		got := e.SuggestByPrefix(query, Options{All: true})
		if strings.Join(got, ",") != "ςx,σy" {
			t.Errorf("SuggestByPrefix(%q) = %v, want [ςx σy]", query, got)
		}
	}
}
