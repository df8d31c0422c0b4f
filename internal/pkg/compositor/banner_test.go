package compositor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComposeBannerDimensions: оба макета дают ровно 1584x396
func TestComposeBannerDimensions(t *testing.T) {
	photo := newTestPhoto(900, 300)
	logo := newTestLogo()
	matted := ExtractMatte(logo)

	a, err := ComposeBannerA(photo, logo, "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, BannerWidth, a.Bounds().Dx())
	assert.Equal(t, BannerHeight, a.Bounds().Dy())

	b, err := ComposeBannerB(photo, matted, "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, BannerWidth, b.Bounds().Dx())
	assert.Equal(t, BannerHeight, b.Bounds().Dy())
}

func TestComposeBannerDeterministic(t *testing.T) {
	photo := newTestPhoto(640, 640)
	logo := newTestLogo()

	first, err := ComposeBannerA(photo, logo, "Acme Corp")
	require.NoError(t, err)
	second, err := ComposeBannerA(photo, logo, "Acme Corp")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first.Pix, second.Pix))
}
