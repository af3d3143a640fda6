package domain

// PRRef identifies a pull request whose changed files are to be compared.
type PRRef struct {
	Owner   string
	Repo    string
	Number  int
	BaseRef string
	HeadRef string
}

// FilePair holds one file's contents on both sides of a comparison, for
// example the base and head versions from a pull request.
type FilePair struct {
	Path string
	Old  string
	New  string
}

// Span is an intraline segment of a changed line, produced by refinement.
// Kind is Added, Removed, or Unchanged; the engine itself never fills
// spans, they are attached after the line-level alignment.
type Span struct {
	Kind Kind
	Text string
}

// Token is one syntax-colored segment of a source line.
type Token struct {
	Text  string
	Color string // hex color like "#ff0000", empty for default
	Bold  bool
}
