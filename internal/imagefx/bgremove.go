package imagefx

import (
	"image"
	"math"
)

// RemoveBackground estimates the background color from the image's border
// pixels, then clears the alpha of pixels within threshold color distance
// of it. Pixels falling in the feather band just past the threshold get a
// linear partial alpha so the cutout edge stays soft. Distances are
// Euclidean in RGB (0..441 range).
func RemoveBackground(img image.Image, threshold, feather float64) (*image.NRGBA, error) {
	if err := checkInput(img); err != nil {
		return nil, err
	}
	if threshold < 0 || feather < 0 {
		return nil, ErrBadParam
	}

	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	bg := borderAverage(src)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(dst.Pix, src.Pix)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			dr := float64(src.Pix[i]) - bg[0]
			dg := float64(src.Pix[i+1]) - bg[1]
			db := float64(src.Pix[i+2]) - bg[2]
			dist := math.Sqrt(dr*dr + dg*dg + db*db)

			switch {
			case dist <= threshold:
				dst.Pix[i+3] = 0
			case feather > 0 && dist < threshold+feather:
				frac := (dist - threshold) / feather
				dst.Pix[i+3] = clampU8(frac * float64(src.Pix[i+3]))
			}
		}
	}
	return dst, nil
}

// borderAverage is the mean RGB of the image's outermost pixel ring.
func borderAverage(src *image.NRGBA) [3]float64 {
	w, h := src.Rect.Dx(), src.Rect.Dy()

	var sum [3]float64
	var n float64
	add := func(x, y int) {
		i := src.PixOffset(x, y)
		sum[0] += float64(src.Pix[i])
		sum[1] += float64(src.Pix[i+1])
		sum[2] += float64(src.Pix[i+2])
		n++
	}

	for x := 0; x < w; x++ {
		add(x, 0)
		if h > 1 {
			add(x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		add(0, y)
		if w > 1 {
			add(w-1, y)
		}
	}

	return [3]float64{sum[0] / n, sum[1] / n, sum[2] / n}
}
