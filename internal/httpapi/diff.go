package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nathantilsley/toolbox/api"
	"github.com/nathantilsley/toolbox/internal/diff/app"
	"github.com/nathantilsley/toolbox/internal/diff/domain"
	"github.com/nathantilsley/toolbox/internal/diff/ports"
)

func (h *Handler) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req api.DiffRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	cmp, err := h.diff.Compare(r.Context(), ports.CompareInput{
		Name:      req.Name,
		Language:  req.Language,
		Original:  req.Original,
		Modified:  req.Modified,
		Refine:    req.Refine,
		WithPatch: req.Patch,
	})
	if err != nil {
		if errors.Is(err, app.ErrTooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		h.logger.Error("diff failed", "name", req.Name, "error", err)
		h.writeError(w, http.StatusInternalServerError, "diff failed")
		return
	}

	h.writeJSON(w, http.StatusOK, toDiffResponse(cmp))
}

func (h *Handler) handleDiffGitHub(w http.ResponseWriter, r *http.Request) {
	var req api.GitHubDiffRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.Owner == "" || req.Repo == "" {
		h.writeError(w, http.StatusBadRequest, "owner and repo are required")
		return
	}

	var (
		results []domain.Comparison
		err     error
	)
	switch {
	case req.PullRequest > 0:
		results, err = h.diff.ComparePullRequest(r.Context(), domain.PRRef{
			Owner:  req.Owner,
			Repo:   req.Repo,
			Number: req.PullRequest,
		})
	case req.Path != "" && req.OldRef != "" && req.NewRef != "":
		var cmp domain.Comparison
		cmp, err = h.diff.CompareRefs(r.Context(), req.Owner, req.Repo, req.Path, req.OldRef, req.NewRef)
		results = []domain.Comparison{cmp}
	default:
		h.writeError(w, http.StatusBadRequest, "need either pullRequest or path with oldRef and newRef")
		return
	}

	if err != nil {
		if errors.Is(err, app.ErrNoSource) {
			h.writeError(w, http.StatusServiceUnavailable, "github access not configured")
			return
		}
		h.logger.Error("github diff failed", "owner", req.Owner, "repo", req.Repo, "error", err)
		h.writeError(w, http.StatusBadGateway, "github diff failed")
		return
	}

	resp := api.GitHubDiffResponse{Files: make([]api.DiffResponse, 0, len(results))}
	for _, cmp := range results {
		resp.Files = append(resp.Files, toDiffResponse(cmp))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func toDiffResponse(cmp domain.Comparison) api.DiffResponse {
	resp := api.DiffResponse{
		Name:     cmp.Name,
		Language: cmp.Language,
		OldRef:   cmp.OldRef,
		NewRef:   cmp.NewRef,
		Lines:    make([]api.DiffLine, len(cmp.Lines)),
		Stats: api.DiffStats{
			Added:     cmp.Stats.Added,
			Removed:   cmp.Stats.Removed,
			Unchanged: cmp.Stats.Unchanged,
		},
		Unified: cmp.Unified,
		Patch:   cmp.Patch,
	}

	for i, line := range cmp.Lines {
		out := api.DiffLine{
			Kind:    kindName(line.Kind),
			Content: line.Content,
			OldLine: line.OldLine,
			NewLine: line.NewLine,
		}
		for _, s := range line.Spans {
			out.Spans = append(out.Spans, api.Span{Kind: kindName(s.Kind), Text: s.Text})
		}
		resp.Lines[i] = out
	}

	if cmp.Highlight != nil {
		resp.Highlight = make([][]api.Token, len(cmp.Highlight))
		for i, row := range cmp.Highlight {
			tokens := make([]api.Token, len(row))
			for j, t := range row {
				tokens[j] = api.Token{Text: t.Text, Color: t.Color, Bold: t.Bold}
			}
			resp.Highlight[i] = tokens
		}
	}
	return resp
}

func kindName(k domain.Kind) string {
	return strings.ToLower(k.String())
}
