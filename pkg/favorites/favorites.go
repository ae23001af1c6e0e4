// Package favorites stores a user's favorited words, one per line, in the
// order they were added. Only corpus words can be favorited.
package favorites

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/bastiangx/wordbook/pkg/dictionary"
	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
)

var (
	ErrAlreadyFavorited = errors.New("already in favorites")
	ErrNotFavorited     = errors.New("not in favorites")
	ErrNotInCorpus      = errors.New("not in the dictionary")
)

// Store is the favorites file at path, validated against corpus.
type Store struct {
	path   string
	corpus *dictionary.Corpus
}

// New returns a store backed by path.
func New(path string, corpus *dictionary.Corpus) *Store {
	return &Store{path: path, corpus: corpus}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Add favorites word. Duplicates and words missing from the corpus are
// rejected without touching the file.
func (s *Store) Add(word string) error {
	return utils.WithLock(s.path, func() error {
		words, err := utils.ReadLines(s.path)
		if err != nil {
			return err
		}
		if mapset.NewThreadUnsafeSet(words...).Contains(word) {
			return fmt.Errorf("'%s' is %w", word, ErrAlreadyFavorited)
		}
		if !s.corpus.Contains(word) {
			return fmt.Errorf("'%s' is %w", word, ErrNotInCorpus)
		}

		log.Debugf("Adding %q to favorites", word)
		return utils.WriteLines(s.path, append(words, word))
	})
}

// Remove drops word from the favorites.
func (s *Store) Remove(word string) error {
	return utils.WithLock(s.path, func() error {
		words, err := utils.ReadLines(s.path)
		if err != nil {
			return err
		}
		idx := slices.Index(words, word)
		if idx < 0 {
			return fmt.Errorf("'%s' is %w", word, ErrNotFavorited)
		}

		log.Debugf("Removing %q from favorites", word)
		return utils.WriteLines(s.path, slices.Delete(words, idx, idx+1))
	})
}

// List returns the favorites in insertion order.
func (s *Store) List() ([]string, error) {
	return utils.ReadLines(s.path)
}

// Contains reports whether word is favorited.
func (s *Store) Contains(word string) (bool, error) {
	words, err := utils.ReadLines(s.path)
	if err != nil {
		return false, err
	}
	return slices.Contains(words, word), nil
}
