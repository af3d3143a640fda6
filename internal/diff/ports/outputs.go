package ports

import (
	"context"

	"github.com/nathantilsley/toolbox/internal/diff/domain"
)

// PatchPort abstracts rendering a git-style unified patch with hunk
// headers, used for interop export. It is deliberately separate from the
// engine's own hunk-less rendering.
type PatchPort interface {
	RenderPatch(name string, original, modified string) (string, error)
}

// RefinePort abstracts intraline refinement of a changed line pair,
// splitting each side into added/removed/unchanged segments.
type RefinePort interface {
	Refine(oldLine, newLine string) (oldSpans, newSpans []domain.Span)
}

// HighlightPort abstracts syntax highlighting of diff line content.
type HighlightPort interface {
	// Tokenize splits one source line into colored tokens for the given
	// language tag. ok is false when the language is not recognized.
	Tokenize(language, line string) (tokens []domain.Token, ok bool)

	// LanguageFromPath guesses a language tag from a file path, returning
	// "" when nothing matches.
	LanguageFromPath(path string) string
}

// SourcePort abstracts fetching texts to compare from a remote host.
type SourcePort interface {
	// FetchFile returns one file's contents at a ref. A missing file is
	// reported as empty content, not an error, so that comparisons
	// against added or deleted files work.
	FetchFile(ctx context.Context, owner, repo, path, ref string) (string, error)

	// PullRequestFiles returns the changed files of a pull request with
	// both base and head contents.
	PullRequestFiles(ctx context.Context, pr domain.PRRef) ([]domain.FilePair, error)
}
