package compositor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogo рисует «логотип»: красный квадрат на белом фоне
func newTestLogo() *image.NRGBA {
	logo := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	fillSolid(logo, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for y := 30; y < 70; y++ {
		for x := 30; x < 70; x++ {
			logo.SetNRGBA(x, y, color.NRGBA{R: 220, G: 30, B: 30, A: 255})
		}
	}
	return logo
}

func TestExtractMatteBackgroundBecomesTransparent(t *testing.T) {
	logo := newTestLogo()

	out := ExtractMatte(logo)

	// фон в углу далеко от фигуры — полностью прозрачный
	assert.Equal(t, uint8(0), out.NRGBAAt(5, 5).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(94, 94).A)
	// фигура остаётся непрозрачной
	assert.Equal(t, uint8(255), out.NRGBAAt(50, 50).A)
}

func TestExtractMatteDoesNotMutateInput(t *testing.T) {
	logo := newTestLogo()
	before := make([]uint8, len(logo.Pix))
	copy(before, logo.Pix)

	_ = ExtractMatte(logo)

	assert.Equal(t, before, logo.Pix)
}

// TestExtractMatteEdgesPreserved: пиксели фона вплотную к фигуре —
// это границы, они остаются непрозрачными несмотря на цвет фона
func TestExtractMatteEdgesPreserved(t *testing.T) {
	logo := newTestLogo()

	out := ExtractMatte(logo)

	// белый пиксель рядом с красным квадратом: Собель даёт сильный градиент
	assert.Equal(t, uint8(255), out.NRGBAAt(29, 50).A)
	assert.Equal(t, uint8(255), out.NRGBAAt(50, 70).A)
}

// TestExtractMatteRepeatedPass: повторный прогон не съедает границы
func TestExtractMatteRepeatedPass(t *testing.T) {
	logo := newTestLogo()

	first := ExtractMatte(logo)
	second := ExtractMatte(first)

	assert.Equal(t, uint8(255), second.NRGBAAt(29, 50).A)
	assert.Equal(t, uint8(255), second.NRGBAAt(50, 50).A)
}

// TestExtractMatteNonSquare: полоса выборки фона считается отдельно
// по ширине и высоте
func TestExtractMatteNonSquare(t *testing.T) {
	logo := image.NewNRGBA(image.Rect(0, 0, 400, 40))
	fillSolid(logo, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
	for y := 12; y < 28; y++ {
		for x := 150; x < 250; x++ {
			logo.SetNRGBA(x, y, color.NRGBA{R: 20, G: 60, B: 180, A: 255})
		}
	}

	out := ExtractMatte(logo)

	require.Equal(t, 400, out.Bounds().Dx())
	require.Equal(t, 40, out.Bounds().Dy())
	assert.Equal(t, uint8(0), out.NRGBAAt(10, 20).A)
	assert.Equal(t, uint8(255), out.NRGBAAt(200, 20).A)
}
