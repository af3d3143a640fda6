package chromahl

import (
	"strings"
	"testing"
)

func TestAdapter_Tokenize(t *testing.T) {
	adapter := New("github")

	tokens, ok := adapter.Tokenize("go", `func main() { println("hi") }`)
	if !ok {
		t.Fatal("Tokenize() ok = false for go source")
	}
	if len(tokens) < 2 {
		t.Fatalf("got %d tokens, want several", len(tokens))
	}

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	// Some lexers append a trailing newline to unterminated input.
	got := strings.TrimSuffix(b.String(), "\n")
	if got != `func main() { println("hi") }` {
		t.Errorf("tokens join to %q, want the input line", got)
	}
}

func TestAdapter_Tokenize_UnknownLanguage(t *testing.T) {
	adapter := New("github")

	if _, ok := adapter.Tokenize("no-such-language", "content"); ok {
		t.Error("Tokenize() ok = true for unknown language, want false")
	}
}

func TestAdapter_LanguageFromPath(t *testing.T) {
	adapter := New("github")

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"a/main.go", "go"},
		{"b/script.py", "python"},
		{"notes.unknownext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := adapter.LanguageFromPath(tt.path); got != tt.want {
				t.Errorf("LanguageFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNew_UnknownStyleFallsBack(t *testing.T) {
	adapter := New("no-such-style")
	if adapter.style == nil {
		t.Fatal("adapter has nil style")
	}
}
