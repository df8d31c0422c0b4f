package compositor

import (
	"image"
	"image/color"
)

// Banner dimensions follow the LinkedIn cover format.
const (
	BannerWidth  = 1584
	BannerHeight = 396
)

// ComposeBannerA: круглое фото слева, логотип справа как есть,
// вертикальный разделитель и подпись между ними.
func ComposeBannerA(photo, logo *image.NRGBA, caption string) (*image.NRGBA, error) {
	canvas, err := newCanvas(BannerWidth, BannerHeight, colorNavy)
	if err != nil {
		return nil, err
	}
	fillHorizontalGradient(canvas,
		color.NRGBA{R: 38, G: 50, B: 56, A: 255},
		color.NRGBA{R: 69, G: 90, B: 100, A: 255})

	tile, err := CoverResize(photo, 300, 300, 0.5, 0.5)
	if err != nil {
		return nil, err
	}
	EnhanceContrastSaturation(tile)
	drawTile(canvas, tile, 48, 48, InCircle(198, 198, 150), nil)

	// разделитель между фото и текстом
	fillRect(canvas, 430, 60, 433, 336, color.NRGBA{R: 255, G: 255, B: 255, A: 90})

	if err := DrawCover(canvas, logo, 1176, 78, 360, 240, 0.5, 0.5, nil, nil); err != nil {
		return nil, err
	}

	if err := drawCenteredText(canvas, caption, 790, 198, 44, colorWhite); err != nil {
		return nil, err
	}
	return canvas, nil
}

// ComposeBannerB: градиентный фон, круглое фото, вымощенный логотип
// (после matte-извлечения) и подпись по центру.
func ComposeBannerB(photo, mattedLogo *image.NRGBA, caption string) (*image.NRGBA, error) {
	canvas, err := newCanvas(BannerWidth, BannerHeight, colorIndigo)
	if err != nil {
		return nil, err
	}
	fillHorizontalGradient(canvas, colorIndigo, colorTeal)

	tile, err := CoverResize(photo, 280, 280, 0.5, 0.5)
	if err != nil {
		return nil, err
	}
	drawTile(canvas, tile, 120, 58, InCircle(260, 198, 140), nil)

	if err := DrawCover(canvas, mattedLogo, 1204, 98, 300, 200, 0.5, 0.5, nil, nil); err != nil {
		return nil, err
	}

	if err := drawCenteredText(canvas, caption, 792, 198, 48, colorWhite); err != nil {
		return nil, err
	}
	return canvas, nil
}
