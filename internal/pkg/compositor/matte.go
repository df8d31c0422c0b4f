package compositor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

const (
	// порог близости к цвету фона
	matteDistance = 30.0
	// порог чувствительности детектора границ
	edgeThreshold = 30.0
	// ширина корзины при оценке доминирующего цвета
	bucketSize = 10
)

// ExtractMatte separates a logo from its roughly uniform backdrop: the
// dominant border color is estimated, background-colored pixels are made
// transparent and detected edges are kept opaque so thin outlines close to
// the background color survive. The input raster is never modified.
//
// This is a heuristic, not segmentation: logos with background-colored
// foreground regions or busy backdrops will over- or under-matte.
func ExtractMatte(logo *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(logo)
	w := out.Bounds().Dx()
	h := out.Bounds().Dy()
	if w == 0 || h == 0 {
		return out
	}

	bgR, bgG, bgB := estimateBackground(out)
	edges := detectEdges(out)

	feather := matteDistance * 1.5
	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < w; x++ {
			if edges[y*w+x] {
				continue
			}
			i := x * 4
			dr := float64(row[i]) - bgR
			dg := float64(row[i+1]) - bgG
			db := float64(row[i+2]) - bgB
			dist := math.Sqrt(dr*dr + dg*dg + db*db)
			switch {
			case dist < matteDistance:
				row[i+3] = 0
			case dist < feather:
				row[i+3] = clampByte(math.Round(dist / matteDistance * 255))
			}
		}
	}
	return out
}

// estimateBackground picks the dominant color of the border band. The band
// is 10% of the width and 10% of the height, measured independently, so
// extreme non-square logos still sample a real border strip. Colors are
// grouped into coarse buckets to tolerate noise; the winning bucket's mean
// is the estimate.
func estimateBackground(img *image.NRGBA) (float64, float64, float64) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	bandX := w / 10
	if bandX < 1 {
		bandX = 1
	}
	bandY := h / 10
	if bandY < 1 {
		bandY = 1
	}

	type bucket struct {
		count            int
		sumR, sumG, sumB int
	}
	buckets := make(map[[3]int]*bucket)

	sample := func(x, y int) {
		i := y*img.Stride + x*4
		r := int(img.Pix[i])
		g := int(img.Pix[i+1])
		b := int(img.Pix[i+2])
		key := [3]int{r / bucketSize, g / bucketSize, b / bucketSize}
		bk := buckets[key]
		if bk == nil {
			bk = &bucket{}
			buckets[key] = bk
		}
		bk.count++
		bk.sumR += r
		bk.sumG += g
		bk.sumB += b
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < bandX || x >= w-bandX || y < bandY || y >= h-bandY {
				sample(x, y)
			}
		}
	}

	var best *bucket
	for _, bk := range buckets {
		if best == nil || bk.count > best.count {
			best = bk
		}
	}
	if best == nil || best.count == 0 {
		return 255, 255, 255
	}
	n := float64(best.count)
	return float64(best.sumR) / n, float64(best.sumG) / n, float64(best.sumB) / n
}

// detectEdges marks interior pixels whose Sobel gradient magnitude of the
// average-RGB grayscale exceeds the sensitivity threshold. Border pixels
// are never edges.
func detectEdges(img *image.NRGBA) []bool {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	edges := make([]bool, w*h)

	gray := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			gray[y*w+x] = (float64(row[i]) + float64(row[i+1]) + float64(row[i+2])) / 3
		}
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := -gray[(y-1)*w+x-1] + gray[(y-1)*w+x+1] +
				-2*gray[y*w+x-1] + 2*gray[y*w+x+1] +
				-gray[(y+1)*w+x-1] + gray[(y+1)*w+x+1]
			gy := -gray[(y-1)*w+x-1] - 2*gray[(y-1)*w+x] - gray[(y-1)*w+x+1] +
				gray[(y+1)*w+x-1] + 2*gray[(y+1)*w+x] + gray[(y+1)*w+x+1]
			if math.Sqrt(gx*gx+gy*gy) > edgeThreshold {
				edges[y*w+x] = true
			}
		}
	}
	return edges
}
