package compositor

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	captionFont     *opentype.Font
	captionFontOnce sync.Once
)

func loadCaptionFont() *opentype.Font {
	captionFontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// goregular.TTF зашит в бинарь, парсинг не должен падать
			panic(err)
		}
		captionFont = f
	})
	return captionFont
}

// drawCenteredText draws text horizontally and vertically centered on
// (cx, cy). Failures to build a face are reported so a caption never
// aborts a whole composition silently.
func drawCenteredText(dst *image.NRGBA, text string, cx, cy int, size float64, col color.NRGBA) error {
	face, err := opentype.NewFace(loadCaptionFont(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	originX := cx - textW/2 - bounds.Min.X.Floor()
	originY := cy - textH/2 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(originX, originY),
	}
	d.DrawString(text)
	return nil
}
