package compositor

import "image"

// Point is a 2D coordinate in canvas space.
type Point struct {
	X float64
	Y float64
}

// MaskFunc reports whether the canvas pixel (x, y) belongs to the clip
// region. A nil mask means "everything".
type MaskFunc func(x, y int) bool

// InCircle returns a predicate for a filled circle.
func InCircle(cx, cy, r float64) MaskFunc {
	r2 := r * r
	return func(x, y int) bool {
		dx := float64(x) + 0.5 - cx
		dy := float64(y) + 0.5 - cy
		return dx*dx+dy*dy <= r2
	}
}

// InRing returns a predicate for an annulus between inner and outer radius.
func InRing(cx, cy, inner, outer float64) MaskFunc {
	in2 := inner * inner
	out2 := outer * outer
	return func(x, y int) bool {
		dx := float64(x) + 0.5 - cx
		dy := float64(y) + 0.5 - cy
		d2 := dx*dx + dy*dy
		return d2 >= in2 && d2 <= out2
	}
}

// InPolygon returns a predicate for a simple polygon, ray casting along +X.
func InPolygon(pts []Point) MaskFunc {
	return func(x, y int) bool {
		px := float64(x) + 0.5
		py := float64(y) + 0.5
		inside := false
		n := len(pts)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			yi, yj := pts[i].Y, pts[j].Y
			if (yi > py) != (yj > py) {
				cross := (pts[j].X-pts[i].X)*(py-yi)/(yj-yi) + pts[i].X
				if px < cross {
					inside = !inside
				}
			}
		}
		return inside
	}
}

// fillMask paints a solid color over every masked pixel using the given
// blend function. Out-of-bounds regions of the mask are simply never
// visited.
func fillMask(dst *image.NRGBA, mask MaskFunc, cr, cg, cb, ca uint8, blend BlendFunc) {
	if blend == nil {
		blend = BlendNormal
	}
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask != nil && !mask(x, y) {
				continue
			}
			i := (x - b.Min.X) * 4
			r, g, bl, a := blend(cr, cg, cb, ca, row[i], row[i+1], row[i+2], row[i+3])
			row[i], row[i+1], row[i+2], row[i+3] = r, g, bl, a
		}
	}
}
