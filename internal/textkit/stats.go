package textkit

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// TextStats summarizes a text the way a character counter widget would.
type TextStats struct {
	Bytes        int
	Runes        int
	Graphemes    int // user-perceived characters
	Words        int
	Lines        int
	DisplayWidth int // terminal cells of the widest line
}

// Stats computes counts over the text. Words follow Unicode segmentation
// (UAX #29), so CJK text and emoji sequences count sensibly; a word is a
// segment containing at least one letter or digit.
func Stats(text string) TextStats {
	s := TextStats{
		Bytes: len(text),
		Runes: len([]rune(text)),
		Lines: strings.Count(text, "\n") + 1,
	}
	if text == "" {
		s.Lines = 0
		return s
	}

	g := graphemes.FromString(text)
	for g.Next() {
		if g.Value() != "\n" {
			s.Graphemes++
		}
	}

	w := words.FromString(text)
	for w.Next() {
		if strings.ContainsFunc(w.Value(), isWordRune) {
			s.Words++
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if width := runewidth.StringWidth(line); width > s.DisplayWidth {
			s.DisplayWidth = width
		}
	}
	return s
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
