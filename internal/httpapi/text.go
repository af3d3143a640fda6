package httpapi

import (
	"net/http"

	"github.com/nathantilsley/toolbox/api"
	"github.com/nathantilsley/toolbox/internal/textkit"
)

func (h *Handler) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	var req api.MarkdownRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	html, err := textkit.RenderMarkdown(req.Source)
	if err != nil {
		h.logger.Error("markdown rendering failed", "error", err)
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, api.MarkdownResponse{HTML: html})
}

func (h *Handler) handleTextStats(w http.ResponseWriter, r *http.Request) {
	var req api.TextStatsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	stats := textkit.Stats(req.Text)
	h.writeJSON(w, http.StatusOK, api.TextStatsResponse{
		Bytes:        stats.Bytes,
		Runes:        stats.Runes,
		Graphemes:    stats.Graphemes,
		Words:        stats.Words,
		Lines:        stats.Lines,
		DisplayWidth: stats.DisplayWidth,
	})
}

func (h *Handler) handleJSONToYAML(w http.ResponseWriter, r *http.Request) {
	h.convertEndpoint(w, r, textkit.JSONToYAML)
}

func (h *Handler) handleYAMLToJSON(w http.ResponseWriter, r *http.Request) {
	h.convertEndpoint(w, r, textkit.YAMLToJSON)
}

func (h *Handler) convertEndpoint(w http.ResponseWriter, r *http.Request, convert func(string) (string, error)) {
	var req api.ConvertRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	out, err := convert(req.Input)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, api.ConvertResponse{Output: out})
}
