package compositor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceContrastSaturation(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.NRGBA
	}{
		{
			name: "mixed color",
			in:   color.NRGBA{R: 100, G: 150, B: 200, A: 255},
			want: color.NRGBA{R: 91, G: 152, B: 212, A: 255},
		},
		{
			name: "black stays in range",
			in:   color.NRGBA{R: 0, G: 0, B: 0, A: 255},
			want: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		},
		{
			name: "white stays in range",
			in:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			want: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		},
		{
			name: "mid-gray is a fixed point",
			in:   color.NRGBA{R: 128, G: 128, B: 128, A: 255},
			want: color.NRGBA{R: 128, G: 128, B: 128, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
			fillSolid(img, tt.in)

			EnhanceContrastSaturation(img)

			assert.Equal(t, tt.want, img.NRGBAAt(0, 0))
		})
	}
}

func TestApplySepia(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.NRGBA
	}{
		{
			name: "gray input",
			in:   color.NRGBA{R: 100, G: 100, B: 100, A: 255},
			want: color.NRGBA{R: 135, G: 120, B: 93, A: 255},
		},
		{
			name: "white clamps",
			in:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			want: color.NRGBA{R: 255, G: 255, B: 238, A: 255},
		},
		{
			name: "black",
			in:   color.NRGBA{R: 0, G: 0, B: 0, A: 255},
			want: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
			fillSolid(img, tt.in)

			ApplySepia(img)

			assert.Equal(t, tt.want, img.NRGBAAt(0, 0))
		})
	}
}

// TestApplyThreshold: на выходе только чистый чёрный или белый
func TestApplyThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 256, 1))
	for x := 0; x < 256; x++ {
		v := uint8(x)
		img.SetNRGBA(x, 0, color.NRGBA{R: v, G: v, B: v, A: 255})
	}

	ApplyThreshold(img)

	for x := 0; x < 256; x++ {
		px := img.NRGBAAt(x, 0)
		assert.True(t, px.R == 0 || px.R == 255, "channel must be 0 or 255, got %d", px.R)
		assert.Equal(t, px.R, px.G)
		assert.Equal(t, px.R, px.B)
	}
	// luma порога — 140
	assert.Equal(t, uint8(0), img.NRGBAAt(120, 0).R)
	assert.Equal(t, uint8(255), img.NRGBAAt(160, 0).R)
}

func TestApplyDuotone(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.NRGBA
	}{
		{
			name: "gray ramps to blue",
			in:   color.NRGBA{R: 90, G: 90, B: 90, A: 255},
			want: color.NRGBA{R: 36, G: 63, B: 108, A: 255},
		},
		{
			name: "white clamps blue channel",
			in:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			want: color.NRGBA{R: 102, G: 178, B: 255, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
			fillSolid(img, tt.in)

			ApplyDuotone(img)

			assert.Equal(t, tt.want, img.NRGBAAt(0, 0))
		})
	}
}

// TestApplyVignette: центр не трогаем, углы темнеют
func TestApplyVignette(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	fillSolid(img, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	ApplyVignette(img)

	center := img.NRGBAAt(100, 100)
	corner := img.NRGBAAt(2, 2)
	assert.Equal(t, uint8(200), center.R)
	assert.Less(t, corner.R, uint8(200))
}

func TestNoiseTexture(t *testing.T) {
	tex := NoiseTexture(64, 32)

	require.Equal(t, 64, tex.Bounds().Dx())
	require.Equal(t, 32, tex.Bounds().Dy())

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			px := tex.NRGBAAt(x, y)
			assert.LessOrEqual(t, px.R, uint8(20))
			assert.Equal(t, px.R, px.G)
			assert.Equal(t, px.R, px.B)
			assert.Equal(t, uint8(30), px.A)
		}
	}
}
