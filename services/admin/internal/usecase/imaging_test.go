package usecase

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(width, height int, fill color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}
	return img
}

func TestCropSquare_Landscape(t *testing.T) {
	// 1200x800 crops to a centered 800x800
	cropped := cropSquare(solidImage(1200, 800, color.White))

	bounds := cropped.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 800, bounds.Dy())
}

func TestCropSquare_Portrait(t *testing.T) {
	// 600x900 crops to 600x600 anchored at the top
	src := image.NewRGBA(image.Rect(0, 0, 600, 900))
	top := color.RGBA{R: 255, A: 255}
	bottom := color.RGBA{B: 255, A: 255}
	for y := 0; y < 900; y++ {
		fill := top
		if y >= 600 {
			fill = bottom
		}
		for x := 0; x < 600; x++ {
			src.Set(x, y, fill)
		}
	}

	cropped := cropSquare(src)

	bounds := cropped.Bounds()
	assert.Equal(t, 600, bounds.Dx())
	assert.Equal(t, 600, bounds.Dy())

	// The retained region is the top band, so every pixel is red
	r, _, b, _ := cropped.At(300, 599).RGBA()
	assert.NotZero(t, r)
	assert.Zero(t, b)
}

func TestCropSquare_AlreadySquare(t *testing.T) {
	src := solidImage(500, 500, color.White)
	assert.Equal(t, src, cropSquare(src))
}

func TestCompressJPEG_BoundsDimensions(t *testing.T) {
	data, err := compressJPEG(solidImage(800, 800, color.White), maxAvatarDimension, maxAvatarBytes)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.LessOrEqual(t, decoded.Bounds().Dx(), maxAvatarDimension)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), maxAvatarDimension)
	assert.LessOrEqual(t, len(data), maxAvatarBytes)
}

func TestCompressJPEG_SmallImageKeptAsIs(t *testing.T) {
	data, err := compressJPEG(solidImage(200, 200, color.White), maxAvatarDimension, maxAvatarBytes)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 200, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy())
}
