// Package history keeps a bounded, de-duplicated log of searched terms in a
// newline-delimited file, oldest first.
package history

import (
	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultLimit is the number of terms kept before the oldest are evicted.
const DefaultLimit = 70

// Store is the history file at path. The whole file is read on every call
// and rewritten on every mutation.
type Store struct {
	path  string
	limit int
}

// New returns a store backed by path. A non-positive limit means DefaultLimit.
func New(path string, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{path: path, limit: limit}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Add appends term unless it is already recorded, then drops the oldest
// entries beyond the limit. Adding a known term is a no-op and does not
// touch the file.
func (s *Store) Add(term string) error {
	if !utils.IsValidTerm(term) {
		log.Debugf("Skipping history for unstorable term %q", term)
		return nil
	}
	return utils.WithLock(s.path, func() error {
		terms, err := utils.ReadLines(s.path)
		if err != nil {
			return err
		}
		if mapset.NewThreadUnsafeSet(terms...).Contains(term) {
			return nil
		}

		terms = append(terms, term)
		if over := len(terms) - s.limit; over > 0 {
			terms = terms[over:]
		}
		log.Debugf("History now holds %d terms", len(terms))
		return utils.WriteLines(s.path, terms)
	})
}

// Entries returns the recorded terms, oldest first. Missing history is empty.
func (s *Store) Entries() ([]string, error) {
	return utils.ReadLines(s.path)
}

// Clear deletes the history file and reports whether one existed.
func (s *Store) Clear() (bool, error) {
	var removed bool
	err := utils.WithLock(s.path, func() error {
		var err error
		removed, err = utils.RemoveFile(s.path)
		return err
	})
	return removed, err
}
