// Package patchdiff renders git-style unified patches with hunk headers.
package patchdiff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Adapter implements ports.PatchPort using go-difflib. The engine's own
// rendering never emits @@ hunk headers; this adapter exists for export
// to tools that expect a standard patch.
type Adapter struct {
	context int
}

// New creates a new patch rendering adapter with 3 lines of hunk context.
func New() *Adapter {
	return &Adapter{context: 3}
}

// RenderPatch produces a unified patch between the two texts, labeling
// the sides a/<name> and b/<name>.
func (a *Adapter) RenderPatch(name string, original, modified string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  a.context,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("rendering patch: %w", err)
	}
	return strings.TrimSpace(text), nil
}
