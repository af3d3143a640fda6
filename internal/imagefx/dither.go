package imagefx

import (
	"fmt"
	"image"
)

// DitherMode selects the error-diffusion weight table.
type DitherMode string

const (
	FloydSteinberg DitherMode = "floyd-steinberg"
	Atkinson       DitherMode = "atkinson"
)

// diffusion is one neighbor offset with the fraction of quantization
// error it receives.
type diffusion struct {
	dx, dy int
	weight float64
}

var floydSteinbergTable = []diffusion{
	{1, 0, 7.0 / 16},
	{-1, 1, 3.0 / 16},
	{0, 1, 5.0 / 16},
	{1, 1, 1.0 / 16},
}

// Atkinson diffuses only 6/8 of the error, washing out highlights the
// way the classic Mac dither did.
var atkinsonTable = []diffusion{
	{1, 0, 1.0 / 8},
	{2, 0, 1.0 / 8},
	{-1, 1, 1.0 / 8},
	{0, 1, 1.0 / 8},
	{1, 1, 1.0 / 8},
	{0, 2, 1.0 / 8},
}

// Dither converts the image to black-and-white using a single
// left-to-right, top-to-bottom error-diffusion pass. Each pixel's gray
// value is quantized to 0 or 255 and the quantization error distributed
// to not-yet-visited neighbors per the mode's weight table. Alpha is
// preserved.
func Dither(img image.Image, mode DitherMode) (*image.NRGBA, error) {
	if err := checkInput(img); err != nil {
		return nil, err
	}

	var table []diffusion
	switch mode {
	case FloydSteinberg:
		table = floydSteinbergTable
	case Atkinson:
		table = atkinsonTable
	default:
		return nil, fmt.Errorf("dither mode %q: %w", mode, ErrBadParam)
	}

	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	// Working gray buffer; the diffusion pushes values out of [0,255],
	// so it holds floats until quantization.
	gray := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			gray[y*w+x] = luminance(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := gray[y*w+x]
			var quantized float64
			if old >= 128 {
				quantized = 255
			}
			err := old - quantized

			for _, d := range table {
				nx, ny := x+d.dx, y+d.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				gray[ny*w+nx] += err * d.weight
			}

			v := uint8(quantized)
			o := dst.PixOffset(x, y)
			dst.Pix[o] = v
			dst.Pix[o+1] = v
			dst.Pix[o+2] = v
			dst.Pix[o+3] = src.Pix[src.PixOffset(x, y)+3]
		}
	}
	return dst, nil
}
