// Package httpapi exposes the toolbox over a JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nathantilsley/toolbox/api"
	"github.com/nathantilsley/toolbox/internal/diff/ports"
)

// Image filters are CPU-bound; cap how many run at once.
const maxConcurrentImages = 4

// Handler serves every toolbox endpoint.
type Handler struct {
	diff         ports.CompareUseCase
	logger       *slog.Logger
	maxBodyBytes int64
	maxPixels    int
	imageSem     chan struct{}
}

// New creates a Handler. maxBodyBytes bounds every request body;
// maxPixels bounds decoded image dimensions.
func New(diff ports.CompareUseCase, logger *slog.Logger, maxBodyBytes int64, maxPixels int) *Handler {
	return &Handler{
		diff:         diff,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
		maxPixels:    maxPixels,
		imageSem:     make(chan struct{}, maxConcurrentImages),
	}
}

// Routes returns the mux with all endpoints registered.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/diff", h.handleDiff)
	mux.HandleFunc("POST /v1/diff/github", h.handleDiffGitHub)

	mux.HandleFunc("POST /v1/image/blur", h.handleBlur)
	mux.HandleFunc("POST /v1/image/dither", h.handleDither)
	mux.HandleFunc("POST /v1/image/edges", h.handleEdges)
	mux.HandleFunc("POST /v1/image/palette", h.handlePalette)
	mux.HandleFunc("POST /v1/image/removebg", h.handleRemoveBG)

	mux.HandleFunc("POST /v1/qr", h.handleQR)
	mux.HandleFunc("POST /v1/barcode", h.handleBarcode)

	mux.HandleFunc("POST /v1/markdown", h.handleMarkdown)
	mux.HandleFunc("POST /v1/text/stats", h.handleTextStats)
	mux.HandleFunc("POST /v1/convert/json-yaml", h.handleJSONToYAML)
	mux.HandleFunc("POST /v1/convert/yaml-json", h.handleYAMLToJSON)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	return mux
}

// decodeJSON reads a bounded JSON body into dst, replying 400 on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err))
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("writing response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, api.ErrorResponse{Error: msg})
}
