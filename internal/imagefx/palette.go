package imagefx

import (
	"image"
	"image/color"
	"sort"
)

const (
	maxKMeansIterations = 20
	maxPaletteSamples   = 4096
)

// ExtractPalette clusters the image's colors into k groups with Lloyd's
// algorithm (at most 20 iterations, early exit when no centroid moves)
// and returns the centroid colors ordered by cluster population, largest
// first. Distance is Euclidean in RGB; fully transparent pixels are
// ignored. When the image holds fewer than k distinct colors, fewer than
// k entries are returned.
func ExtractPalette(img image.Image, k int) ([]color.NRGBA, error) {
	if err := checkInput(img); err != nil {
		return nil, err
	}
	if k < 1 || k > 64 {
		return nil, ErrBadParam
	}

	samples := samplePixels(toNRGBA(img))
	if len(samples) == 0 {
		return nil, ErrEmptyImage
	}

	centroids := initialCentroids(samples, k)
	k = len(centroids) // distinct colors may undercut the request

	assignment := make([]int, len(samples))
	for iter := 0; iter < maxKMeansIterations; iter++ {
		for i, s := range samples {
			assignment[i] = nearestCentroid(s, centroids)
		}

		moved := false
		for c := range centroids {
			var sumR, sumG, sumB, n float64
			for i, s := range samples {
				if assignment[i] != c {
					continue
				}
				sumR += float64(s[0])
				sumG += float64(s[1])
				sumB += float64(s[2])
				n++
			}
			if n == 0 {
				continue // empty cluster keeps its centroid
			}
			next := [3]float64{sumR / n, sumG / n, sumB / n}
			if next != centroids[c] {
				centroids[c] = next
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	// Final assignment for population counts.
	counts := make([]int, k)
	for _, s := range samples {
		counts[nearestCentroid(s, centroids)]++
	}

	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return counts[order[a]] > counts[order[b]] })

	palette := make([]color.NRGBA, 0, k)
	for _, c := range order {
		if counts[c] == 0 {
			continue
		}
		palette = append(palette, color.NRGBA{
			R: clampU8(centroids[c][0]),
			G: clampU8(centroids[c][1]),
			B: clampU8(centroids[c][2]),
			A: 255,
		})
	}
	return palette, nil
}

// samplePixels collects up to maxPaletteSamples opaque-ish pixels using a
// uniform stride, so huge images do not slow clustering down.
func samplePixels(src *image.NRGBA) [][3]float64 {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	total := w * h

	stride := 1
	for total/(stride*stride) > maxPaletteSamples {
		stride++
	}

	var samples [][3]float64
	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			i := src.PixOffset(x, y)
			if src.Pix[i+3] == 0 {
				continue
			}
			samples = append(samples, [3]float64{
				float64(src.Pix[i]),
				float64(src.Pix[i+1]),
				float64(src.Pix[i+2]),
			})
		}
	}
	return samples
}

// initialCentroids seeds clustering with up to k distinct sample colors,
// spread evenly across the sample sequence.
func initialCentroids(samples [][3]float64, k int) [][3]float64 {
	seen := make(map[[3]float64]struct{})
	var distinct [][3]float64
	for _, s := range samples {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		distinct = append(distinct, s)
		if len(distinct) == k*8 {
			break // plenty of seed material
		}
	}

	if len(distinct) <= k {
		return distinct
	}

	centroids := make([][3]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = distinct[i*len(distinct)/k]
	}
	return centroids
}

func nearestCentroid(s [3]float64, centroids [][3]float64) int {
	best, bestDist := 0, -1.0
	for c, cent := range centroids {
		dr := s[0] - cent[0]
		dg := s[1] - cent[1]
		db := s[2] - cent[2]
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
