// Package imagefx implements the pixel-level image transforms offered by
// the toolbox: blur, dithering, edge detection, palette extraction, and
// background removal. Every transform is a pure function: it converts its
// input to NRGBA, allocates a fresh output buffer, and never mutates the
// source.
package imagefx

import (
	"errors"
	"image"
	"image/draw"
)

// ErrEmptyImage is returned when a transform receives a nil image or one
// with no pixels.
var ErrEmptyImage = errors.New("empty image")

// ErrBadParam is returned for out-of-range transform parameters.
var ErrBadParam = errors.New("bad parameter")

// toNRGBA copies any image into a freshly allocated NRGBA buffer with its
// origin at (0,0).
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func checkInput(img image.Image) error {
	if img == nil {
		return ErrEmptyImage
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ErrEmptyImage
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// luminance is the Rec. 601 weighted gray value of an NRGBA pixel.
func luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}
