// Package chromahl provides syntax highlighting of diff line content.
package chromahl

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/nathantilsley/toolbox/internal/diff/domain"
)

// Adapter implements ports.HighlightPort using chroma lexers. Lines are
// tokenized independently, which loses multi-line constructs (block
// comments, raw strings) but keeps highlighting per-DiffLine and cheap.
type Adapter struct {
	style *chroma.Style
}

// New creates a highlighting adapter using the named chroma style,
// falling back to the default style when the name is unknown.
func New(styleName string) *Adapter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Adapter{style: style}
}

// Tokenize splits one source line into colored tokens. Returns ok=false
// when no lexer matches the language tag.
func (a *Adapter) Tokenize(language, line string) ([]domain.Token, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, false
	}

	it, err := lexer.Tokenise(nil, line)
	if err != nil {
		return nil, false
	}

	var tokens []domain.Token
	for tok := it(); tok != chroma.EOF; tok = it() {
		if tok.Value == "" {
			continue
		}
		entry := a.style.Get(tok.Type)
		t := domain.Token{Text: tok.Value, Bold: entry.Bold == chroma.Yes}
		if entry.Colour.IsSet() {
			t.Color = entry.Colour.String()
		}
		tokens = append(tokens, t)
	}
	return tokens, true
}

// LanguageFromPath guesses the language tag from a file name, accepting
// the "a/" and "b/" prefixes that patch paths commonly carry.
func (a *Adapter) LanguageFromPath(path string) string {
	path = strings.TrimPrefix(strings.TrimPrefix(path, "a/"), "b/")
	lexer := lexers.Match(path)
	if lexer == nil {
		return ""
	}
	return strings.ToLower(lexer.Config().Name)
}
