// Package app orchestrates the diff tool's use cases over its ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nathantilsley/toolbox/internal/diff/domain"
	"github.com/nathantilsley/toolbox/internal/diff/ports"
)

// ErrTooLarge is returned when an input text exceeds the configured line
// limit. The engine itself is total; the limit only guards the service
// boundary against the quadratic table.
var ErrTooLarge = errors.New("input exceeds line limit")

// ErrNoSource is returned by the GitHub-backed use cases when no source
// port was configured.
var ErrNoSource = errors.New("no source configured")

// Service implements ports.CompareUseCase: align two texts with the
// domain engine, then decorate the result through the driven ports.
type Service struct {
	patch       ports.PatchPort
	refiner     ports.RefinePort
	highlighter ports.HighlightPort
	source      ports.SourcePort // nil when GitHub access is not configured
	logger      *slog.Logger
	maxLines    int // 0 disables the guard
}

// NewService creates a Service wired with all driven ports. source may be
// nil; the GitHub-backed use cases then return ErrNoSource.
func NewService(
	patch ports.PatchPort,
	refiner ports.RefinePort,
	highlighter ports.HighlightPort,
	source ports.SourcePort,
	logger *slog.Logger,
	maxLines int,
) *Service {
	return &Service{
		patch:       patch,
		refiner:     refiner,
		highlighter: highlighter,
		source:      source,
		logger:      logger,
		maxLines:    maxLines,
	}
}

// Compare aligns two texts and returns the full comparison result.
func (s *Service) Compare(_ context.Context, in ports.CompareInput) (domain.Comparison, error) {
	if s.maxLines > 0 {
		if n := lineCount(in.Original); n > s.maxLines {
			return domain.Comparison{}, fmt.Errorf("original has %d lines (limit %d): %w", n, s.maxLines, ErrTooLarge)
		}
		if n := lineCount(in.Modified); n > s.maxLines {
			return domain.Comparison{}, fmt.Errorf("modified has %d lines (limit %d): %w", n, s.maxLines, ErrTooLarge)
		}
	}

	lines := domain.Compute(in.Original, in.Modified)
	cmp := domain.Comparison{
		Name:     in.Name,
		Language: in.Language,
		Lines:    lines,
		Stats:    domain.CountByKind(lines),
		Unified:  domain.RenderAligned(lines),
	}

	if in.WithPatch && s.patch != nil {
		patch, err := s.patch.RenderPatch(patchName(in.Name), in.Original, in.Modified)
		if err != nil {
			// The alignment is still valid without the export format.
			s.logger.Warn("patch rendering failed", "name", in.Name, "error", err)
		} else {
			cmp.Patch = patch
		}
	}

	if in.Refine && s.refiner != nil {
		s.refine(cmp.Lines)
	}

	if in.Language != "" && s.highlighter != nil {
		cmp.Highlight = s.highlight(in.Language, cmp.Lines)
	}

	s.logger.Debug("compared texts",
		"name", in.Name,
		"added", cmp.Stats.Added,
		"removed", cmp.Stats.Removed,
		"unchanged", cmp.Stats.Unchanged,
	)
	return cmp, nil
}

// ComparePullRequest fetches the PR's changed files and compares each
// base/head pair. Languages are guessed per file path.
func (s *Service) ComparePullRequest(ctx context.Context, pr domain.PRRef) ([]domain.Comparison, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}

	pairs, err := s.source.PullRequestFiles(ctx, pr)
	if err != nil {
		return nil, fmt.Errorf("fetching pull request files: %w", err)
	}

	s.logger.Info("comparing pull request files",
		"owner", pr.Owner, "repo", pr.Repo, "pr", pr.Number, "files", len(pairs))

	results := make([]domain.Comparison, 0, len(pairs))
	for _, pair := range pairs {
		cmp, err := s.Compare(ctx, ports.CompareInput{
			Name:      pair.Path,
			Language:  s.guessLanguage(pair.Path),
			Original:  pair.Old,
			Modified:  pair.New,
			Refine:    true,
			WithPatch: true,
		})
		if err != nil {
			s.logger.Warn("skipping file", "path", pair.Path, "error", err)
			continue
		}
		cmp.OldRef = pr.BaseRef
		cmp.NewRef = pr.HeadRef
		results = append(results, cmp)
	}
	return results, nil
}

// CompareRefs fetches one file at two refs and compares the versions.
func (s *Service) CompareRefs(ctx context.Context, owner, repo, path, oldRef, newRef string) (domain.Comparison, error) {
	if s.source == nil {
		return domain.Comparison{}, ErrNoSource
	}

	original, err := s.source.FetchFile(ctx, owner, repo, path, oldRef)
	if err != nil {
		return domain.Comparison{}, fmt.Errorf("fetching %s@%s: %w", path, oldRef, err)
	}
	modified, err := s.source.FetchFile(ctx, owner, repo, path, newRef)
	if err != nil {
		return domain.Comparison{}, fmt.Errorf("fetching %s@%s: %w", path, newRef, err)
	}

	cmp, err := s.Compare(ctx, ports.CompareInput{
		Name:      path,
		Language:  s.guessLanguage(path),
		Original:  original,
		Modified:  modified,
		Refine:    true,
		WithPatch: true,
	})
	if err != nil {
		return domain.Comparison{}, err
	}
	cmp.OldRef = oldRef
	cmp.NewRef = newRef
	return cmp, nil
}

// refine pairs removed/added runs positionally and attaches intraline
// spans to both members of each pair. Unpaired lines keep nil spans.
func (s *Service) refine(lines []domain.DiffLine) {
	var removed, added []int

	flush := func() {
		n := len(removed)
		if len(added) < n {
			n = len(added)
		}
		for i := 0; i < n; i++ {
			oldSpans, newSpans := s.refiner.Refine(lines[removed[i]].Content, lines[added[i]].Content)
			lines[removed[i]].Spans = oldSpans
			lines[added[i]].Spans = newSpans
		}
		removed, added = nil, nil
	}

	for i := range lines {
		switch lines[i].Kind {
		case domain.Removed:
			removed = append(removed, i)
		case domain.Added:
			added = append(added, i)
		default:
			flush()
		}
	}
	flush()
}

// highlight tokenizes every line's content. Unknown languages yield nil.
func (s *Service) highlight(language string, lines []domain.DiffLine) [][]domain.Token {
	out := make([][]domain.Token, len(lines))
	for i := range lines {
		tokens, ok := s.highlighter.Tokenize(language, lines[i].Content)
		if !ok {
			return nil
		}
		out[i] = tokens
	}
	return out
}

// guessLanguage maps a file path to a language tag via the highlighter.
func (s *Service) guessLanguage(path string) string {
	if s.highlighter == nil {
		return ""
	}
	return s.highlighter.LanguageFromPath(path)
}

func lineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

func patchName(name string) string {
	if name == "" {
		return "text"
	}
	return name
}
