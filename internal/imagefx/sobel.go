package imagefx

import (
	"image"
	"math"
)

var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// SobelEdges runs the fixed 3×3 Sobel gradient convolution over the
// grayscale image and thresholds the gradient magnitude to a binary
// black/white output. Edge pixels sample their clamped neighbors.
func SobelEdges(img image.Image, threshold uint8) (*image.NRGBA, error) {
	if err := checkInput(img); err != nil {
		return nil, err
	}

	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

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
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				sy := clampInt(y+ky, 0, h-1)
				for kx := -1; kx <= 1; kx++ {
					sx := clampInt(x+kx, 0, w-1)
					v := gray[sy*w+sx]
					gx += sobelX[ky+1][kx+1] * v
					gy += sobelY[ky+1][kx+1] * v
				}
			}

			var v uint8
			if math.Sqrt(gx*gx+gy*gy) > float64(threshold) {
				v = 255
			}
			o := dst.PixOffset(x, y)
			dst.Pix[o] = v
			dst.Pix[o+1] = v
			dst.Pix[o+2] = v
			dst.Pix[o+3] = 255
		}
	}
	return dst, nil
}
