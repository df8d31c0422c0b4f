package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBlendModes проверяет комбинаторы пикселей на известных значениях
func TestBlendModes(t *testing.T) {
	tests := []struct {
		name  string
		blend BlendFunc
		src   [4]uint8
		dst   [4]uint8
		want  [4]uint8
	}{
		{
			name:  "normal opaque source replaces",
			blend: BlendNormal,
			src:   [4]uint8{10, 20, 30, 255},
			dst:   [4]uint8{200, 200, 200, 255},
			want:  [4]uint8{10, 20, 30, 255},
		},
		{
			name:  "normal transparent source keeps destination",
			blend: BlendNormal,
			src:   [4]uint8{10, 20, 30, 0},
			dst:   [4]uint8{200, 201, 202, 255},
			want:  [4]uint8{200, 201, 202, 255},
		},
		{
			name:  "overlay multiplies dark destination",
			blend: BlendOverlay,
			src:   [4]uint8{64, 64, 64, 255},
			dst:   [4]uint8{64, 64, 64, 255},
			want:  [4]uint8{32, 32, 32, 255},
		},
		{
			name:  "screen lightens",
			blend: BlendScreen,
			src:   [4]uint8{128, 128, 128, 255},
			dst:   [4]uint8{128, 128, 128, 255},
			want:  [4]uint8{192, 192, 192, 255},
		},
		{
			name:  "lighten keeps lighter channel",
			blend: BlendLighten,
			src:   [4]uint8{10, 250, 100, 255},
			dst:   [4]uint8{200, 50, 100, 255},
			want:  [4]uint8{200, 250, 100, 255},
		},
		{
			name:  "difference is absolute",
			blend: BlendDifference,
			src:   [4]uint8{30, 200, 0, 255},
			dst:   [4]uint8{200, 30, 0, 255},
			want:  [4]uint8{170, 170, 0, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.blend(
				tt.src[0], tt.src[1], tt.src[2], tt.src[3],
				tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3],
			)
			assert.Equal(t, tt.want, [4]uint8{r, g, b, a})
		})
	}
}

// TestBlendSemiTransparent: полупрозрачный источник смешивается по альфе
func TestBlendSemiTransparent(t *testing.T) {
	r, g, b, a := BlendNormal(255, 255, 255, 128, 0, 0, 0, 255)

	assert.InDelta(t, 128, int(r), 1)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
	assert.Equal(t, uint8(255), a)
}
