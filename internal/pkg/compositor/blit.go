package compositor

import (
	"image"

	"github.com/disintegration/imaging"
)

// CoverResize scales src to exactly width x height without distorting its
// aspect ratio: the crop rectangle matching the destination aspect is cut
// from the source and stretched to fill the whole destination. offsetX and
// offsetY in [0,1] choose which part of the source survives the crop
// (0.5, 0.5 keeps the center, 0, 0 keeps the top-left).
func CoverResize(src image.Image, width, height int, offsetX, offsetY float64) (*image.NRGBA, error) {
	sb := src.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, ErrInvalidSource
	}
	if width <= 0 || height <= 0 {
		return nil, ErrRenderTarget
	}

	offsetX = clampUnit(offsetX)
	offsetY = clampUnit(offsetY)

	// Обрезаем источник до пропорций приёмника, потом масштабируем
	srcAspect := float64(srcW) / float64(srcH)
	dstAspect := float64(width) / float64(height)

	cropW, cropH := srcW, srcH
	if srcAspect > dstAspect {
		cropW = int(float64(srcH)*dstAspect + 0.5)
	} else if srcAspect < dstAspect {
		cropH = int(float64(srcW)/dstAspect + 0.5)
	}
	if cropW < 1 {
		cropW = 1
	}
	if cropH < 1 {
		cropH = 1
	}
	if cropW > srcW {
		cropW = srcW
	}
	if cropH > srcH {
		cropH = srcH
	}

	cropX := int(float64(srcW-cropW)*offsetX + 0.5)
	cropY := int(float64(srcH-cropH)*offsetY + 0.5)

	rect := image.Rect(sb.Min.X+cropX, sb.Min.Y+cropY, sb.Min.X+cropX+cropW, sb.Min.Y+cropY+cropH)
	cropped := imaging.Crop(src, rect)
	return imaging.Resize(cropped, width, height, imaging.Lanczos), nil
}

// DrawCover blits src into the (x, y, w, h) region of dst with cover
// semantics. The region is clipped to the canvas; the canvas itself never
// grows. A non-nil mask restricts drawing to the clip region, blend
// defaults to source-over.
func DrawCover(dst *image.NRGBA, src image.Image, x, y, w, h int, offsetX, offsetY float64, mask MaskFunc, blend BlendFunc) error {
	tile, err := CoverResize(src, w, h, offsetX, offsetY)
	if err != nil {
		return err
	}
	drawTile(dst, tile, x, y, mask, blend)
	return nil
}

// drawTile composites a prepared tile onto the canvas pixel by pixel,
// honoring the tile's own alpha, the clip mask and the blend mode.
func drawTile(dst *image.NRGBA, tile *image.NRGBA, x, y int, mask MaskFunc, blend BlendFunc) {
	if blend == nil {
		blend = BlendNormal
	}
	db := dst.Bounds()
	tb := tile.Bounds()
	for ty := 0; ty < tb.Dy(); ty++ {
		cy := y + ty
		if cy < db.Min.Y || cy >= db.Max.Y {
			continue
		}
		srcRow := tile.Pix[ty*tile.Stride:]
		dstRow := dst.Pix[(cy-db.Min.Y)*dst.Stride:]
		for tx := 0; tx < tb.Dx(); tx++ {
			cx := x + tx
			if cx < db.Min.X || cx >= db.Max.X {
				continue
			}
			if mask != nil && !mask(cx, cy) {
				continue
			}
			si := tx * 4
			di := (cx - db.Min.X) * 4
			r, g, b, a := blend(
				srcRow[si], srcRow[si+1], srcRow[si+2], srcRow[si+3],
				dstRow[di], dstRow[di+1], dstRow[di+2], dstRow[di+3],
			)
			dstRow[di], dstRow[di+1], dstRow[di+2], dstRow[di+3] = r, g, b, a
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
