package compositor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoverResizeDimensions проверяет, что регион всегда заполняется целиком
func TestCoverResizeDimensions(t *testing.T) {
	tests := []struct {
		name       string
		srcWidth   int
		srcHeight  int
		destWidth  int
		destHeight int
	}{
		{
			name:       "landscape into square",
			srcWidth:   800,
			srcHeight:  600,
			destWidth:  500,
			destHeight: 500,
		},
		{
			name:       "portrait into square",
			srcWidth:   600,
			srcHeight:  800,
			destWidth:  500,
			destHeight: 500,
		},
		{
			name:       "extreme wide source",
			srcWidth:   4000,
			srcHeight:  100,
			destWidth:  500,
			destHeight: 500,
		},
		{
			name:       "extreme tall source",
			srcWidth:   100,
			srcHeight:  4000,
			destWidth:  500,
			destHeight: 500,
		},
		{
			name:       "square into banner region",
			srcWidth:   300,
			srcHeight:  300,
			destWidth:  360,
			destHeight: 240,
		},
		{
			name:       "tiny source upscaled",
			srcWidth:   10,
			srcHeight:  10,
			destWidth:  500,
			destHeight: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, tt.srcWidth, tt.srcHeight))
			fillSolid(src, color.NRGBA{R: 100, G: 150, B: 200, A: 255})

			tile, err := CoverResize(src, tt.destWidth, tt.destHeight, 0.5, 0.5)

			require.NoError(t, err)
			assert.Equal(t, tt.destWidth, tile.Bounds().Dx())
			assert.Equal(t, tt.destHeight, tile.Bounds().Dy())

			// непрозрачный источник заполняет весь регион без дыр
			for i := 3; i < len(tile.Pix); i += 4 {
				if tile.Pix[i] != 255 {
					t.Fatalf("unfilled pixel at offset %d", i)
				}
			}
		})
	}
}

func TestCoverResizeZeroSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 0, 0))

	_, err := CoverResize(src, 100, 100, 0.5, 0.5)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSource)
}

// TestCoverResizeOffset проверяет выбор сохраняемой части источника
func TestCoverResizeOffset(t *testing.T) {
	// левая половина красная, правая синяя
	src := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if x < 100 {
				src.SetNRGBA(x, y, red)
			} else {
				src.SetNRGBA(x, y, blue)
			}
		}
	}

	tests := []struct {
		name    string
		offsetX float64
		want    color.NRGBA
	}{
		{name: "left-biased crop keeps red", offsetX: 0, want: red},
		{name: "right-biased crop keeps blue", offsetX: 1, want: blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile, err := CoverResize(src, 100, 100, tt.offsetX, 0.5)
			require.NoError(t, err)

			got := tile.NRGBAAt(50, 50)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestDrawCoverClipped проверяет, что рисование за границами холста
// обрезается и не паникует
func TestDrawCoverClipped(t *testing.T) {
	canvas, err := newCanvas(100, 100, color.NRGBA{A: 255})
	require.NoError(t, err)

	src := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	fillSolid(src, color.NRGBA{R: 255, A: 255})

	require.NoError(t, DrawCover(canvas, src, 80, 80, 60, 60, 0.5, 0.5, nil, nil))
	require.NoError(t, DrawCover(canvas, src, -30, -30, 60, 60, 0.5, 0.5, nil, nil))

	assert.Equal(t, 100, canvas.Bounds().Dx())
	assert.Equal(t, 100, canvas.Bounds().Dy())
	// внутри холста часть тайла дорисовалась
	assert.Equal(t, uint8(255), canvas.NRGBAAt(90, 90).R)
	assert.Equal(t, uint8(255), canvas.NRGBAAt(10, 10).R)
}

// fillSolid заполняет изображение одним цветом
func fillSolid(img *image.NRGBA, c color.NRGBA) {
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
