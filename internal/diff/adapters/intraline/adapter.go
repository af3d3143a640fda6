// Package intraline refines changed line pairs into character-level spans.
package intraline

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nathantilsley/toolbox/internal/diff/domain"
)

// Adapter implements ports.RefinePort using diffmatchpatch with semantic
// cleanup, so spans break on word-ish boundaries instead of single runes.
type Adapter struct{}

// New creates a new intraline refinement adapter.
func New() *Adapter {
	return &Adapter{}
}

// Refine splits a changed line pair into per-side spans. The old side
// carries Removed and Unchanged spans, the new side Added and Unchanged.
func (a *Adapter) Refine(oldLine, newLine string) (oldSpans, newSpans []domain.Span) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldLine, newLine, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldSpans = append(oldSpans, domain.Span{Kind: domain.Unchanged, Text: d.Text})
			newSpans = append(newSpans, domain.Span{Kind: domain.Unchanged, Text: d.Text})
		case diffmatchpatch.DiffDelete:
			oldSpans = append(oldSpans, domain.Span{Kind: domain.Removed, Text: d.Text})
		case diffmatchpatch.DiffInsert:
			newSpans = append(newSpans, domain.Span{Kind: domain.Added, Text: d.Text})
		}
	}
	return oldSpans, newSpans
}
