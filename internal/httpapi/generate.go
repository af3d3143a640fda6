package httpapi

import (
	"errors"
	"net/http"

	"github.com/nathantilsley/toolbox/api"
	"github.com/nathantilsley/toolbox/internal/qrgen"
)

func (h *Handler) handleQR(w http.ResponseWriter, r *http.Request) {
	var req api.QRRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.Size == 0 {
		req.Size = 256
	}

	png, err := qrgen.QR(req.Content, req.Size, qrgen.RecoveryLevel(req.Level))
	if err != nil {
		h.generateError(w, err)
		return
	}
	h.writePNG(w, png)
}

func (h *Handler) handleBarcode(w http.ResponseWriter, r *http.Request) {
	var req api.BarcodeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.Width == 0 {
		req.Width = 300
	}
	if req.Height == 0 {
		req.Height = 80
	}

	png, err := qrgen.Barcode(req.Content, qrgen.BarcodeFormat(req.Format), req.Width, req.Height)
	if err != nil {
		h.generateError(w, err)
		return
	}
	h.writePNG(w, png)
}

func (h *Handler) writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		h.logger.Error("writing png response", "error", err)
	}
}

func (h *Handler) generateError(w http.ResponseWriter, err error) {
	if errors.Is(err, qrgen.ErrBadInput) {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("code generation failed", "error", err)
	h.writeError(w, http.StatusUnprocessableEntity, err.Error())
}
