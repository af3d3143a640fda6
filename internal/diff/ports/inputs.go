package ports

import (
	"context"

	"github.com/nathantilsley/toolbox/internal/diff/domain"
)

// CompareInput describes one comparison of two inline texts.
type CompareInput struct {
	Name     string // display label, e.g. a file path
	Language string // language tag for highlighting; empty disables it
	Original string
	Modified string

	Refine    bool // attach intraline spans to changed lines
	WithPatch bool // also produce a git-style patch with hunk headers
}

// CompareUseCase is the driving port for the diff tool.
type CompareUseCase interface {
	// Compare aligns two texts and returns the full comparison result.
	Compare(ctx context.Context, in CompareInput) (domain.Comparison, error)

	// ComparePullRequest fetches a pull request's changed files and
	// compares each base/head pair.
	ComparePullRequest(ctx context.Context, pr domain.PRRef) ([]domain.Comparison, error)

	// CompareRefs fetches one file at two refs and compares the versions.
	CompareRefs(ctx context.Context, owner, repo, path, oldRef, newRef string) (domain.Comparison, error)
}
