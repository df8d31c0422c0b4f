package compositor

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ds124wfegd/WB_L3/6/internal/entity"
)

// ProfileSize is the fixed edge of every profile-picture variant.
const ProfileSize = 500

var (
	colorNavy   = color.NRGBA{R: 28, G: 48, B: 80, A: 255}
	colorAccent = color.NRGBA{R: 230, G: 57, B: 70, A: 255}
	colorIndigo = color.NRGBA{R: 63, G: 81, B: 181, A: 255}
	colorTeal   = color.NRGBA{R: 0, G: 150, B: 136, A: 255}
	colorCream  = color.NRGBA{R: 244, G: 236, B: 220, A: 255}
	colorBrown  = color.NRGBA{R: 120, G: 88, B: 50, A: 255}
	colorLight  = color.NRGBA{R: 242, G: 245, B: 248, A: 255}
	colorWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack  = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// ComposeVariant renders one profile-picture style. The photo and the
// matte-extracted logo are read-only; every call draws on its own canvas.
func ComposeVariant(v entity.Variant, photo, logo *image.NRGBA) (*image.NRGBA, error) {
	switch v {
	case entity.VariantProfessional:
		return composeProfessional(photo, logo)
	case entity.VariantArtistic:
		return composeArtistic(photo, logo)
	case entity.VariantMinimal:
		return composeMinimal(photo, logo)
	case entity.VariantBold:
		return composeBold(photo, logo)
	case entity.VariantGradient:
		return composeGradient(photo, logo)
	case entity.VariantDuotone:
		return composeDuotone(photo, logo)
	case entity.VariantVintage:
		return composeVintage(photo, logo)
	case entity.VariantMonochrome:
		return composeMonochrome(photo, logo)
	default:
		return nil, fmt.Errorf("unknown variant %q", v)
	}
}

// composeProfessional: круг по центру, тонкое кольцо, логотип в углу
func composeProfessional(photo, logo *image.NRGBA) (*image.NRGBA, error) {
	canvas, err := newCanvas(ProfileSize, ProfileSize, colorLight)
	if err != nil {
		return nil, err
	}

	tile, err := CoverResize(photo, 420, 420, 0.5, 0.5)
	if err != nil {
		return nil, err
	}
	// фильтр до маски, чтобы не задеть фон
	EnhanceContrastSaturation(tile)
	drawTile(canvas, tile, 40, 40, InCircle(250, 250, 200), nil)

	fillMask(canvas, InRing(250, 250, 200, 207), colorNavy.R, colorNavy.G, colorNavy.B, 255, nil)

	if err := DrawCover(canvas, logo, 372, 372, 104, 104, 0.5, 0.5, nil, nil); err != nil {
		return nil, err
	}
	return canvas, nil
}

// composeArtistic: диагональный разрез фото/градиент, логотип через screen
func composeArtistic(photo, logo *image.NRGBA) (*image.NRGBA, error) {
	canvas, err := newCanvas(ProfileSize, ProfileSize, colorWhite)
	if err != nil {
		return nil, err
	}
	fillVerticalGradient(canvas, colorIndigo, colorAccent)

	upperLeft := InPolygon([]Point{{0, 0}, {500, 0}, {0, 500}})
	if err := DrawCover(canvas, photo, 0, 0, ProfileSize, ProfileSize, 0.5, 0.5, upperLeft, nil); err != nil {
		return nil, err
	}

	if err := DrawCover(canvas, logo, 316, 316, 150, 150, 0.5, 0.5, nil, BlendScreen); err != nil {
		return nil, err
	}
	ApplyVignette(canvas)
	return canvas, nil
}

// composeMinimal: маленький круг, тонкая рамка, логотип сверху справа
func composeMinimal(photo, logo *image.NRGBA) (*image.NRGBA, error) {
	canvas, err := newCanvas(ProfileSize, ProfileSize, colorWhite)
	if err != nil {
		return nil, err
	}
	drawFrame(canvas, 16, 2, color.NRGBA{R: 205, G: 210, B: 215, A: 255})

	tile, err := CoverResize(photo, 300, 300, 0.5, 0.5)
	if err != nil {
		return nil, err
	}
	drawTile(canvas, tile, 100, 90, InCircle(250, 240, 150), nil)

	if err := DrawCover(canvas, logo, 406, 26, 68, 68, 0.5, 0.5, nil, nil); err != nil {
		return nil, err
	}
	return canvas, nil
}

// composeBold: фото во весь холст, усиленный контраст, толстая рамка
func composeBold(photo, logo *image.NRGBA) (*image.NRGBA, error) {
	canvas, err := newCanvas(ProfileSize, ProfileSize, colorBlack)
	if err != nil {
		return nil, err
	}
	if err := DrawCover(canvas, photo, 0, 0, ProfileSize, ProfileSize, 0.5, 0.5, nil, nil); err != nil {
		return nil, err
	}
	EnhanceContrastSaturation(canvas)
	drawFrame(canvas, 0, 18, colorAccent)

	if err := DrawCover(canvas, logo, 34, 352, 130, 114, 0.5, 0.5, nil, BlendScreen); err != nil {
		return nil, err
	}
	return canvas, nil
}

// composeGradient: градиентный фон, круг, логотип через lighten
func composeGradient(photo, logo *image.NRGBA) (*image.NRGBA, error) {
	canvas, err := newCanvas(ProfileSize, ProfileSize, colorIndigo)
	if err != nil {
		return nil, err
	}
	fillVerticalGradient(canvas, colorIndigo, colorTeal)

	tile, err := CoverResize(photo, 370, 370, 0.5, 0.5)
	if err != nil {
		return nil, err
	}
	drawTile(canvas, tile, 65, 65, InCircle(250, 250, 185), nil)

	if err := DrawCover(canvas, logo, 376, 376, 100, 100, 0.5, 0.5, nil, BlendLighten); err != nil {
		return nil, err
	}
	return canvas, nil
}

// composeDuotone: двухцветный ремап всего холста, логотип через overlay
func composeDuotone(photo, logo *image.NRGBA) (*image.NRGBA, error) {
	canvas, err := newCanvas(ProfileSize, ProfileSize, colorBlack)
	if err != nil {
		return nil, err
	}
	if err := DrawCover(canvas, photo, 0, 0, ProfileSize, ProfileSize, 0.5, 0.5, nil, nil); err != nil {
		return nil, err
	}
	ApplyDuotone(canvas)

	if err := DrawCover(canvas, logo, 356, 356, 120, 120, 0.5, 0.5, nil, BlendOverlay); err != nil {
		return nil, err
	}
	drawFrame(canvas, 0, 6, colorWhite)
	return canvas, nil
}

// composeVintage: шумовая подложка, сепия в круге, двойная рамка, виньетка
func composeVintage(photo, logo *image.NRGBA) (*image.NRGBA, error) {
	canvas, err := newCanvas(ProfileSize, ProfileSize, colorCream)
	if err != nil {
		return nil, err
	}
	drawTile(canvas, NoiseTexture(ProfileSize, ProfileSize), 0, 0, nil, nil)

	tile, err := CoverResize(photo, 360, 360, 0.5, 0.5)
	if err != nil {
		return nil, err
	}
	ApplySepia(tile)
	drawTile(canvas, tile, 70, 55, InCircle(250, 235, 180), nil)

	drawFrame(canvas, 12, 2, colorBrown)
	drawFrame(canvas, 20, 2, colorBrown)

	if err := DrawCover(canvas, logo, 390, 392, 88, 88, 0.5, 0.5, nil, nil); err != nil {
		return nil, err
	}
	ApplyVignette(canvas)
	return canvas, nil
}

// composeMonochrome: жёсткая бинаризация, логотип через difference
func composeMonochrome(photo, logo *image.NRGBA) (*image.NRGBA, error) {
	canvas, err := newCanvas(ProfileSize, ProfileSize, colorWhite)
	if err != nil {
		return nil, err
	}
	if err := DrawCover(canvas, photo, 0, 0, ProfileSize, ProfileSize, 0.5, 0.5, nil, nil); err != nil {
		return nil, err
	}
	ApplyThreshold(canvas)

	if err := DrawCover(canvas, logo, 352, 38, 130, 110, 0.5, 0.5, nil, BlendDifference); err != nil {
		return nil, err
	}
	drawFrame(canvas, 0, 10, colorBlack)
	return canvas, nil
}

// fillVerticalGradient lerps between two colors down the canvas.
func fillVerticalGradient(dst *image.NRGBA, top, bottom color.NRGBA) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		r := clampByte(float64(top.R) + (float64(bottom.R)-float64(top.R))*t)
		g := clampByte(float64(top.G) + (float64(bottom.G)-float64(top.G))*t)
		b := clampByte(float64(top.B) + (float64(bottom.B)-float64(top.B))*t)
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = r, g, b, 255
		}
	}
}

// fillHorizontalGradient lerps between two colors across the canvas.
func fillHorizontalGradient(dst *image.NRGBA, left, right color.NRGBA) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	for x := 0; x < w; x++ {
		t := 0.0
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		r := clampByte(float64(left.R) + (float64(right.R)-float64(left.R))*t)
		g := clampByte(float64(left.G) + (float64(right.G)-float64(left.G))*t)
		b := clampByte(float64(left.B) + (float64(right.B)-float64(left.B))*t)
		for y := 0; y < h; y++ {
			i := y*dst.Stride + x*4
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = r, g, b, 255
		}
	}
}

// fillRect paints an axis-aligned rectangle, clipped to the canvas.
func fillRect(dst *image.NRGBA, x0, y0, x1, y1 int, col color.NRGBA) {
	b := dst.Bounds()
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	if y1 > b.Max.Y {
		y1 = b.Max.Y
	}
	for y := y0; y < y1; y++ {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for x := x0; x < x1; x++ {
			i := (x - b.Min.X) * 4
			r, g, bl, a := BlendNormal(col.R, col.G, col.B, col.A, row[i], row[i+1], row[i+2], row[i+3])
			row[i], row[i+1], row[i+2], row[i+3] = r, g, bl, a
		}
	}
}

// drawFrame draws a rectangular border of the given thickness, inset from
// the canvas edge.
func drawFrame(dst *image.NRGBA, inset, thickness int, col color.NRGBA) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	fillRect(dst, inset, inset, w-inset, inset+thickness, col)
	fillRect(dst, inset, h-inset-thickness, w-inset, h-inset, col)
	fillRect(dst, inset, inset+thickness, inset+thickness, h-inset-thickness, col)
	fillRect(dst, w-inset-thickness, inset+thickness, w-inset, h-inset-thickness, col)
}
