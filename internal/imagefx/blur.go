package imagefx

import (
	"image"
	"math"
)

// GaussianBlur convolves the image with a normalized 2D Gaussian kernel
// of size 2·radius+1 where radius = floor(3σ), sampling edge-clamped
// neighbors. Alpha is blurred along with the color channels.
//
// The direct 2D convolution costs O(w·h·kernel²); fine for the small
// images the toolbox handles, and kept deliberately simple over the
// separable two-pass variant.
func GaussianBlur(img image.Image, sigma float64) (*image.NRGBA, error) {
	if err := checkInput(img); err != nil {
		return nil, err
	}
	if sigma <= 0 {
		return nil, ErrBadParam
	}

	src := toNRGBA(img)
	radius := int(math.Floor(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	kernel := gaussianKernel(radius, sigma)

	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for ky := -radius; ky <= radius; ky++ {
				sy := clampInt(y+ky, 0, h-1)
				for kx := -radius; kx <= radius; kx++ {
					sx := clampInt(x+kx, 0, w-1)
					weight := kernel[(ky+radius)*(2*radius+1)+(kx+radius)]
					i := src.PixOffset(sx, sy)
					r += weight * float64(src.Pix[i])
					g += weight * float64(src.Pix[i+1])
					b += weight * float64(src.Pix[i+2])
					a += weight * float64(src.Pix[i+3])
				}
			}
			o := dst.PixOffset(x, y)
			dst.Pix[o] = clampU8(r)
			dst.Pix[o+1] = clampU8(g)
			dst.Pix[o+2] = clampU8(b)
			dst.Pix[o+3] = clampU8(a)
		}
	}
	return dst, nil
}

// gaussianKernel builds a normalized (2r+1)² kernel for the given sigma.
func gaussianKernel(radius int, sigma float64) []float64 {
	size := 2*radius + 1
	kernel := make([]float64, size*size)
	twoSigmaSq := 2 * sigma * sigma

	var sum float64
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			w := math.Exp(-float64(x*x+y*y) / twoSigmaSq)
			kernel[(y+radius)*size+(x+radius)] = w
			sum += w
		}
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
