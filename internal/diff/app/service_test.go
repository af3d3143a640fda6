package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/nathantilsley/toolbox/internal/diff/domain"
	"github.com/nathantilsley/toolbox/internal/diff/ports"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type fakePatch struct {
	out string
	err error
}

func (f *fakePatch) RenderPatch(string, string, string) (string, error) {
	return f.out, f.err
}

type fakeRefiner struct {
	calls int
}

func (f *fakeRefiner) Refine(oldLine, newLine string) ([]domain.Span, []domain.Span) {
	f.calls++
	return []domain.Span{{Kind: domain.Removed, Text: oldLine}},
		[]domain.Span{{Kind: domain.Added, Text: newLine}}
}

type fakeHighlighter struct {
	known map[string]bool
}

func (f *fakeHighlighter) Tokenize(language, line string) ([]domain.Token, bool) {
	if !f.known[language] {
		return nil, false
	}
	return []domain.Token{{Text: line}}, true
}

func (f *fakeHighlighter) LanguageFromPath(path string) string {
	if strings.HasSuffix(path, ".go") {
		return "go"
	}
	return ""
}

type fakeSource struct {
	files map[string]string // "path@ref" -> content
	pairs []domain.FilePair
	err   error
}

func (f *fakeSource) FetchFile(_ context.Context, _, _, path, ref string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.files[path+"@"+ref], nil
}

func (f *fakeSource) PullRequestFiles(context.Context, domain.PRRef) ([]domain.FilePair, error) {
	return f.pairs, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(source ports.SourcePort, maxLines int) *Service {
	return NewService(
		&fakePatch{out: "--- a/x\n+++ b/x"},
		&fakeRefiner{},
		&fakeHighlighter{known: map[string]bool{"go": true}},
		source,
		testLogger(),
		maxLines,
	)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestService_Compare(t *testing.T) {
	svc := newTestService(nil, 0)

	cmp, err := svc.Compare(context.Background(), ports.CompareInput{
		Name:      "main.go",
		Language:  "go",
		Original:  "a\nb",
		Modified:  "a\nx\nb",
		WithPatch: true,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if cmp.Stats.Added != 1 || cmp.Stats.Removed != 0 || cmp.Stats.Unchanged != 2 {
		t.Errorf("stats = %+v, want 1 added, 0 removed, 2 unchanged", cmp.Stats)
	}
	if cmp.Unified != "  a\n+ x\n  b" {
		t.Errorf("unified = %q", cmp.Unified)
	}
	if cmp.Patch == "" {
		t.Error("patch not populated despite WithPatch")
	}
	if len(cmp.Highlight) != len(cmp.Lines) {
		t.Errorf("highlight rows = %d, want %d", len(cmp.Highlight), len(cmp.Lines))
	}
}

func TestService_Compare_UnknownLanguage(t *testing.T) {
	svc := newTestService(nil, 0)

	cmp, err := svc.Compare(context.Background(), ports.CompareInput{
		Language: "klingon",
		Original: "a",
		Modified: "b",
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if cmp.Highlight != nil {
		t.Errorf("highlight = %v, want nil for unknown language", cmp.Highlight)
	}
}

func TestService_Compare_Refine(t *testing.T) {
	refiner := &fakeRefiner{}
	svc := NewService(nil, refiner, nil, nil, testLogger(), 0)

	cmp, err := svc.Compare(context.Background(), ports.CompareInput{
		Original: "keep\nold line\nkeep2",
		Modified: "keep\nnew line\nkeep2",
		Refine:   true,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if refiner.calls != 1 {
		t.Errorf("refiner called %d times, want 1", refiner.calls)
	}

	spanned := 0
	for _, l := range cmp.Lines {
		if l.Spans != nil {
			spanned++
			if l.Kind == domain.Unchanged {
				t.Errorf("unchanged line %q carries spans", l.Content)
			}
		}
	}
	if spanned != 2 {
		t.Errorf("%d lines carry spans, want 2 (the changed pair)", spanned)
	}
}

func TestService_Compare_LineLimit(t *testing.T) {
	svc := newTestService(nil, 3)

	_, err := svc.Compare(context.Background(), ports.CompareInput{
		Original: "1\n2\n3\n4",
		Modified: "1",
	})
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Compare() error = %v, want ErrTooLarge", err)
	}

	// At the limit is fine.
	if _, err := svc.Compare(context.Background(), ports.CompareInput{
		Original: "1\n2\n3",
		Modified: "1",
	}); err != nil {
		t.Errorf("Compare() at limit error = %v", err)
	}
}

func TestService_Compare_PatchFailureIsNonFatal(t *testing.T) {
	svc := NewService(&fakePatch{err: errors.New("boom")}, nil, nil, nil, testLogger(), 0)

	cmp, err := svc.Compare(context.Background(), ports.CompareInput{
		Original:  "a",
		Modified:  "b",
		WithPatch: true,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if cmp.Patch != "" {
		t.Errorf("patch = %q, want empty after renderer failure", cmp.Patch)
	}
	if len(cmp.Lines) == 0 {
		t.Error("alignment missing after renderer failure")
	}
}

func TestService_ComparePullRequest(t *testing.T) {
	source := &fakeSource{pairs: []domain.FilePair{
		{Path: "main.go", Old: "a", New: "b"},
		{Path: "README.md", Old: "x", New: "x"},
	}}
	svc := newTestService(source, 0)

	pr := domain.PRRef{Owner: "org", Repo: "repo", Number: 7, BaseRef: "main", HeadRef: "feature"}
	results, err := svc.ComparePullRequest(context.Background(), pr)
	if err != nil {
		t.Fatalf("ComparePullRequest() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Name != "main.go" || results[0].Language != "go" {
		t.Errorf("result 0 = %s/%s, want main.go/go", results[0].Name, results[0].Language)
	}
	if results[0].OldRef != "main" || results[0].NewRef != "feature" {
		t.Errorf("result 0 refs = %s..%s, want main..feature", results[0].OldRef, results[0].NewRef)
	}
	if results[1].Stats.Changed() {
		t.Errorf("identical file reported changes: %+v", results[1].Stats)
	}
}

func TestService_ComparePullRequest_NoSource(t *testing.T) {
	svc := newTestService(nil, 0)

	if _, err := svc.ComparePullRequest(context.Background(), domain.PRRef{}); !errors.Is(err, ErrNoSource) {
		t.Errorf("error = %v, want ErrNoSource", err)
	}
	if _, err := svc.CompareRefs(context.Background(), "o", "r", "p", "a", "b"); !errors.Is(err, ErrNoSource) {
		t.Errorf("error = %v, want ErrNoSource", err)
	}
}

func TestService_CompareRefs(t *testing.T) {
	source := &fakeSource{files: map[string]string{
		"main.go@v1": "package main\n\nfunc a() {}",
		"main.go@v2": "package main\n\nfunc b() {}",
	}}
	svc := newTestService(source, 0)

	cmp, err := svc.CompareRefs(context.Background(), "org", "repo", "main.go", "v1", "v2")
	if err != nil {
		t.Fatalf("CompareRefs() error = %v", err)
	}

	if !cmp.Stats.Changed() {
		t.Error("differing refs reported no changes")
	}
	if cmp.OldRef != "v1" || cmp.NewRef != "v2" {
		t.Errorf("refs = %s..%s, want v1..v2", cmp.OldRef, cmp.NewRef)
	}
	if got := domain.Reconstruct(cmp.Lines, domain.Removed); got != "package main\n\nfunc a() {}" {
		t.Errorf("reconstructed original = %q", got)
	}
}

func TestService_CompareRefs_SourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("api down")}
	svc := newTestService(source, 0)

	if _, err := svc.CompareRefs(context.Background(), "o", "r", "p", "a", "b"); err == nil {
		t.Error("CompareRefs() error = nil, want fetch error")
	}
}
