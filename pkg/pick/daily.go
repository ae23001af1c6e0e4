// Package pick selects single words from the corpus: a word of the day that
// is cached per calendar day, and a uniformly random word.
package pick

import (
	"errors"
	"fmt"
	"time"

	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/bastiangx/wordbook/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// DateLayout is the ISO calendar date stored on the first line of the record.
const DateLayout = "2006-01-02"

// ErrEmptyCorpus is returned when there is no word to pick.
var ErrEmptyCorpus = errors.New("corpus is empty")

// Daily caches one (date, word) record in a two-line file.
type Daily struct {
	path   string
	corpus *dictionary.Corpus
}

// NewDaily returns a word-of-the-day cache backed by path.
func NewDaily(path string, corpus *dictionary.Corpus) *Daily {
	return &Daily{path: path, corpus: corpus}
}

// Path returns the backing file.
func (d *Daily) Path() string {
	return d.path
}

// Get returns the word for today's calendar day. A stored record for the same
// date is returned as is; any other record is replaced.
func (d *Daily) Get(today time.Time) (string, error) {
	date := today.Format(DateLayout)

	var word string
	err := utils.WithLock(d.path, func() error {
		lines, err := utils.ReadLines(d.path)
		if err != nil {
			return err
		}
		if len(lines) >= 2 && lines[0] == date && lines[1] != "" {
			log.Debugf("Word of the day cache hit for %s", date)
			word = lines[1]
			return nil
		}

		word, err = d.compute(today)
		if err != nil {
			return err
		}
		log.Debugf("Word of the day for %s is %q", date, word)
		return utils.WriteLines(d.path, []string{date, word})
	})
	if err != nil {
		return "", err
	}
	return word, nil
}

// compute maps the day of the year onto the corpus' load order.
func (d *Daily) compute(today time.Time) (string, error) {
	n := d.corpus.Len()
	if n == 0 {
		return "", fmt.Errorf("word of the day: %w", ErrEmptyCorpus)
	}
	return d.corpus.WordAt(today.YearDay() % n), nil
}
