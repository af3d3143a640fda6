package httpapi

import (
	"errors"
	"fmt"
	"image"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/nathantilsley/toolbox/api"
	"github.com/nathantilsley/toolbox/internal/imagefx"
)

func (h *Handler) handleBlur(w http.ResponseWriter, r *http.Request) {
	h.imageEndpoint(w, r, func(img image.Image) (image.Image, error) {
		sigma, err := formFloat(r, "sigma", 2)
		if err != nil {
			return nil, err
		}
		return imagefx.GaussianBlur(img, sigma)
	})
}

func (h *Handler) handleDither(w http.ResponseWriter, r *http.Request) {
	h.imageEndpoint(w, r, func(img image.Image) (image.Image, error) {
		mode := imagefx.DitherMode(r.FormValue("mode"))
		if mode == "" {
			mode = imagefx.FloydSteinberg
		}
		return imagefx.Dither(img, mode)
	})
}

func (h *Handler) handleEdges(w http.ResponseWriter, r *http.Request) {
	h.imageEndpoint(w, r, func(img image.Image) (image.Image, error) {
		threshold, err := formInt(r, "threshold", 128)
		if err != nil {
			return nil, err
		}
		if threshold < 0 || threshold > 255 {
			return nil, fmt.Errorf("threshold %d outside [0,255]: %w", threshold, imagefx.ErrBadParam)
		}
		return imagefx.SobelEdges(img, uint8(threshold))
	})
}

func (h *Handler) handleRemoveBG(w http.ResponseWriter, r *http.Request) {
	h.imageEndpoint(w, r, func(img image.Image) (image.Image, error) {
		threshold, err := formFloat(r, "threshold", 60)
		if err != nil {
			return nil, err
		}
		feather, err := formFloat(r, "feather", 20)
		if err != nil {
			return nil, err
		}
		return imagefx.RemoveBackground(img, threshold, feather)
	})
}

// handlePalette is the one image endpoint with a JSON result.
func (h *Handler) handlePalette(w http.ResponseWriter, r *http.Request) {
	if !h.acquireImageSlot(w, r) {
		return
	}
	defer h.releaseImageSlot()

	img, file, ok := h.decodeUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	k, err := formInt(r, "k", 6)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	colors, err := imagefx.ExtractPalette(img, k)
	if err != nil {
		h.imageError(w, err)
		return
	}

	resp := api.PaletteResponse{Colors: make([]string, len(colors))}
	for i, c := range colors {
		resp.Colors[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// imageEndpoint runs an image→image transform and streams the result as PNG.
func (h *Handler) imageEndpoint(w http.ResponseWriter, r *http.Request, transform func(image.Image) (image.Image, error)) {
	if !h.acquireImageSlot(w, r) {
		return
	}
	defer h.releaseImageSlot()

	img, file, ok := h.decodeUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	out, err := transform(img)
	if err != nil {
		h.imageError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := imagefx.EncodePNG(w, out); err != nil {
		h.logger.Error("writing image response", "error", err)
	}
}

// decodeUpload parses the multipart form and decodes its "image" part.
// The caller must close the returned file when ok is true.
func (h *Handler) decodeUpload(w http.ResponseWriter, r *http.Request) (image.Image, multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := r.ParseMultipartForm(h.maxBodyBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %s", err))
		return nil, nil, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, `missing "image" form file`)
		return nil, nil, false
	}

	img, format, err := imagefx.Decode(file, h.maxPixels)
	if err != nil {
		file.Close()
		h.imageError(w, err)
		return nil, nil, false
	}
	h.logger.Debug("decoded upload", "format", format, "bounds", img.Bounds().String())
	return img, file, true
}

func (h *Handler) acquireImageSlot(w http.ResponseWriter, r *http.Request) bool {
	select {
	case h.imageSem <- struct{}{}:
		return true
	case <-r.Context().Done():
		h.writeError(w, http.StatusServiceUnavailable, "request canceled while waiting for an image worker")
		return false
	}
}

func (h *Handler) releaseImageSlot() {
	<-h.imageSem
}

// imageError maps imagefx errors to status codes.
func (h *Handler) imageError(w http.ResponseWriter, err error) {
	if errors.Is(err, imagefx.ErrBadParam) || errors.Is(err, imagefx.ErrEmptyImage) {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	status := http.StatusUnprocessableEntity // decode failures land here
	h.writeError(w, status, err.Error())
}

func formFloat(r *http.Request, key string, def float64) (float64, error) {
	v := r.FormValue(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, imagefx.ErrBadParam)
	}
	return f, nil
}

func formInt(r *http.Request, key string, def int) (int, error) {
	v := r.FormValue(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, imagefx.ErrBadParam)
	}
	return n, nil
}
