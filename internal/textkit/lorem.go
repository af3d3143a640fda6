package textkit

import (
	"fmt"
	"math/rand"
	"strings"
)

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
	"et", "dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi",
	"aliquip", "ex", "ea", "commodo", "consequat", "duis", "aute", "irure",
	"in", "reprehenderit", "voluptate", "velit", "esse", "cillum", "fugiat",
	"nulla", "pariatur", "excepteur", "sint", "occaecat", "cupidatat",
	"non", "proident", "sunt", "culpa", "qui", "officia", "deserunt",
	"mollit", "anim", "id", "est", "laborum",
}

const maxLoremParagraphs = 100

// Lorem generates n paragraphs of placeholder text. The same seed always
// produces the same text, so generated fixtures stay stable.
func Lorem(n int, seed int64) (string, error) {
	if n < 1 || n > maxLoremParagraphs {
		return "", fmt.Errorf("paragraph count %d outside [1,%d]", n, maxLoremParagraphs)
	}

	rng := rand.New(rand.NewSource(seed))
	paragraphs := make([]string, n)
	for p := range paragraphs {
		sentences := make([]string, 3+rng.Intn(4))
		for s := range sentences {
			count := 6 + rng.Intn(10)
			ws := make([]string, count)
			for i := range ws {
				ws[i] = loremWords[rng.Intn(len(loremWords))]
			}
			sentence := strings.Join(ws, " ")
			sentences[s] = strings.ToUpper(sentence[:1]) + sentence[1:] + "."
		}
		paragraphs[p] = strings.Join(sentences, " ")
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
