package pick

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bastiangx/wordbook/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus(words ...string) *dictionary.Corpus {
	entries := make([]dictionary.Entry, len(words))
	for i, w := range words {
		entries[i] = dictionary.Entry{Word: w, Definitions: []string{w}}
	}
	return dictionary.New(entries)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 30, 0, 0, time.Local)
}

func TestDailyIndexFollowsDayOfYear(t *testing.T) {
	corpus := testCorpus("haf", "orð", "saga")
	dir := t.TempDir()

	testCases := []struct {
		date     time.Time
		expected string
	}{
		{day(2026, time.January, 1), "orð"},   // day 1
		{day(2026, time.January, 2), "saga"},  // day 2
		{day(2026, time.January, 3), "haf"},   // day 3
		{day(2026, time.February, 1), "saga"}, // day 32
	}
	for _, tc := range testCases {
		t.Run(tc.date.Format(DateLayout), func(t *testing.T) {
			d := NewDaily(filepath.Join(dir, tc.date.Format(DateLayout)+".txt"), corpus)
			word, err := d.Get(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, word)
		})
	}
}

func TestDailySameDayIsCached(t *testing.T) {
	corpus := testCorpus("haf", "orð", "saga")
	d := NewDaily(filepath.Join(t.TempDir(), "word_of_the_day.txt"), corpus)

	first, err := d.Get(day(2026, time.October, 19))
	require.NoError(t, err)
	second, err := d.Get(day(2026, time.October, 19).Add(10 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	raw, err := os.ReadFile(d.Path())
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19\n"+first+"\n", string(raw))
}

func TestDailyCacheHitSkipsRecompute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_of_the_day.txt")
	require.NoError(t, os.WriteFile(path, []byte("2026-10-19\nvetr\n"), 0o644))

	d := NewDaily(path, testCorpus("haf", "orð"))
	word, err := d.Get(day(2026, time.October, 19))
	require.NoError(t, err)
	assert.Equal(t, "vetr", word)
}

func TestDailyNewDayReplacesRecord(t *testing.T) {
	corpus := testCorpus("haf", "orð", "saga")
	d := NewDaily(filepath.Join(t.TempDir(), "word_of_the_day.txt"), corpus)

	_, err := d.Get(day(2026, time.January, 1))
	require.NoError(t, err)
	word, err := d.Get(day(2026, time.January, 2))
	require.NoError(t, err)
	assert.Equal(t, "saga", word)

	raw, err := os.ReadFile(d.Path())
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02\nsaga\n", string(raw))
}

func TestDailyCorruptRecordIsRecomputed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_of_the_day.txt")
	require.NoError(t, os.WriteFile(path, []byte("2026-01-01\n"), 0o644))

	d := NewDaily(path, testCorpus("haf", "orð"))
	word, err := d.Get(day(2026, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, "orð", word)
}

func TestDailyEmptyCorpus(t *testing.T) {
	d := NewDaily(filepath.Join(t.TempDir(), "word_of_the_day.txt"), testCorpus())
	_, err := d.Get(day(2026, time.January, 1))
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, statErr := os.Stat(d.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestRandom(t *testing.T) {
	corpus := testCorpus("haf", "orð", "saga")

	seen := map[string]bool{}
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		word, ok := Random(corpus, rng)
		require.True(t, ok)
		require.True(t, corpus.Contains(word))
		seen[word] = true
	}
	assert.Len(t, seen, 3, "every word should eventually be picked")

	word, ok := Random(corpus, nil)
	assert.True(t, ok)
	assert.True(t, corpus.Contains(word))
}

func TestRandomEmptyCorpus(t *testing.T) {
	_, ok := Random(testCorpus(), nil)
	assert.False(t, ok)
}
