package testing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// wordCharacters are the characters that can appear anywhere in random text
// and still decode to exactly themselves.
var wordCharacters = []rune("abcdefghijklmnopqrstuvwxyzěščřžďýáíéóú")

// separators can appear between words. A period is written as two commas, so
// ",," would decode as "." and is never generated.
var separators = []string{" ", " ", " ", ", ", ". ", "\n"}

// RandomText creates text of roughly `totalWords` words that survives a
// round trip through the codec unchanged, once trailing whitespace is
// trimmed. It is deterministic for a given seed.
func RandomText(t *testing.T, seed int64, totalWords int) string {
	require.Greater(t, totalWords, 0, "must generate at least one word")

	rng := rand.New(rand.NewSource(seed))
	text := make([]rune, 0, totalWords*6)

	for i := 0; i < totalWords; i++ {
		if i > 0 {
			text = append(text, []rune(separators[rng.Intn(len(separators))])...)
		}
		wordLength := 1 + rng.Intn(9)
		for j := 0; j < wordLength; j++ {
			text = append(text, wordCharacters[rng.Intn(len(wordCharacters))])
		}
	}
	return string(text)
}
