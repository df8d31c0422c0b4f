package compositor

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrDecode — блоб не является поддерживаемым изображением
	ErrDecode = errors.New("image data cannot be decoded")
	// ErrInvalidSource — у растра нулевая ширина или высота
	ErrInvalidSource = errors.New("source image has zero dimension")
	// ErrRenderTarget — не удалось выделить холст для рисования
	ErrRenderTarget = errors.New("cannot allocate render target")
)

// Decode turns an encoded image blob (PNG, JPEG, GIF, ...) into an NRGBA
// raster. The returned raster is a private copy, detached from any decoder
// state.
func Decode(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	nrgba := imaging.Clone(img)
	if nrgba.Bounds().Dx() == 0 || nrgba.Bounds().Dy() == 0 {
		return nil, ErrInvalidSource
	}
	return nrgba, nil
}

// EncodePNG encodes a raster losslessly.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeDataURI encodes a raster as a self-contained PNG data URI.
func EncodeDataURI(img image.Image) (string, []byte, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", nil, err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), data, nil
}

// newCanvas allocates an opaque drawing surface filled with the given color.
func newCanvas(width, height int, fill color.Color) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrRenderTarget, width, height)
	}
	canvas := imaging.New(width, height, fill)
	if canvas == nil {
		return nil, ErrRenderTarget
	}
	return canvas, nil
}
