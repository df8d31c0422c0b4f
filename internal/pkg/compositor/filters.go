package compositor

import (
	"image"
	"math"
	"math/rand"
)

// Pixel-space filters. Each one mutates the canvas it is given in place and
// touches the whole buffer: clip or mask a region first if a filter should
// only affect part of the canvas.

// EnhanceContrastSaturation pushes every channel 10% away from mid-gray and
// then 10% away from the pixel's own average luminance.
func EnhanceContrastSaturation(img *image.NRGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			r := (float64(row[i])-128)*1.1 + 128
			g := (float64(row[i+1])-128)*1.1 + 128
			b := (float64(row[i+2])-128)*1.1 + 128

			avg := (r + g + b) / 3
			r = avg + (r-avg)*1.1
			g = avg + (g-avg)*1.1
			b = avg + (b-avg)*1.1

			row[i] = clampByte(r)
			row[i+1] = clampByte(g)
			row[i+2] = clampByte(b)
		}
	}
}

// ApplyDuotone remaps per-pixel lightness onto a dark-to-light blue ramp.
func ApplyDuotone(img *image.NRGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			l := (float64(row[i]) + float64(row[i+1]) + float64(row[i+2])) / 3
			row[i] = clampByte(l * 0.4)
			row[i+1] = clampByte(l * 0.7)
			row[i+2] = clampByte(l * 1.2)
		}
	}
}

// ApplySepia applies the standard sepia matrix.
func ApplySepia(img *image.NRGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			r := float64(row[i])
			g := float64(row[i+1])
			b := float64(row[i+2])
			row[i] = clampByte(0.393*r + 0.769*g + 0.189*b)
			row[i+1] = clampByte(0.349*r + 0.686*g + 0.168*b)
			row[i+2] = clampByte(0.272*r + 0.534*g + 0.131*b)
		}
	}
}

// ApplyThreshold binarizes the canvas: pure black or pure white by
// perceptual luminance.
func ApplyThreshold(img *image.NRGBA) {
	const cut = 140.0
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			luma := 0.299*float64(row[i]) + 0.587*float64(row[i+1]) + 0.114*float64(row[i+2])
			var v uint8
			if luma > cut {
				v = 255
			}
			row[i], row[i+1], row[i+2] = v, v, v
		}
	}
}

// ApplyVignette darkens the canvas radially: nothing inside 30% of the
// radius, fading to 30%-opacity black at 70% and beyond.
func ApplyVignette(img *image.NRGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	cx := float64(w) / 2
	cy := float64(h) / 2
	radius := math.Min(float64(w), float64(h)) / 2
	inner := radius * 0.3
	outer := radius * 0.7

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= inner {
				continue
			}
			t := (d - inner) / (outer - inner)
			if t > 1 {
				t = 1
			}
			alpha := clampByte(t * 0.3 * 255)
			i := x * 4
			r, g, b, a := BlendNormal(0, 0, 0, alpha, row[i], row[i+1], row[i+2], row[i+3])
			row[i], row[i+1], row[i+2], row[i+3] = r, g, b, a
		}
	}
}

// NoiseTexture builds a translucent gray-noise underlay used by the vintage
// recipe. Deliberately non-deterministic.
func NoiseTexture(width, height int) *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := tex.Pix[y*tex.Stride:]
		for x := 0; x < width; x++ {
			i := x * 4
			v := uint8(rand.Intn(21))
			row[i], row[i+1], row[i+2] = v, v, v
			row[i+3] = 30
		}
	}
	return tex
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
