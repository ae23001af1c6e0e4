package pick

import (
	"math/rand/v2"

	"github.com/bastiangx/wordbook/pkg/dictionary"
)

// Random returns a uniformly chosen corpus word. A nil rng uses the
// runtime-seeded global source. ok is false only for an empty corpus.
func Random(corpus *dictionary.Corpus, rng *rand.Rand) (word string, ok bool) {
	n := corpus.Len()
	if n == 0 {
		return "", false
	}
	var i int
	if rng == nil {
		i = rand.IntN(n)
	} else {
		i = rng.IntN(n)
	}
	return corpus.WordAt(i), true
}
