package usecase

import (
	"bytes"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

const (
	maxAvatarDimension = 400
	maxAvatarBytes     = 1 << 20
	minJPEGQuality     = 30
)

// cropSquare crops an image to min(width, height): centered horizontally for
// landscape sources, anchored to the top for portrait ones.
func cropSquare(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == height {
		return img
	}

	size := width
	if height < size {
		size = height
	}

	sx, sy := 0, 0
	if width > height {
		sx = (width - height) / 2
	}

	src := image.Rect(bounds.Min.X+sx, bounds.Min.Y+sy, bounds.Min.X+sx+size, bounds.Min.Y+sy+size)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Copy(dst, image.Point{}, img, src, xdraw.Src, nil)
	return dst
}

// compressJPEG re-encodes the image under both a dimension and a byte-size
// ceiling. The byte ceiling is best-effort: quality degrades stepwise and
// bottoms out rather than failing.
func compressJPEG(img image.Image, maxDim, maxBytes int) ([]byte, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxDim || height > maxDim {
		scale := float64(maxDim) / float64(width)
		if height > width {
			scale = float64(maxDim) / float64(height)
		}
		scaledW := int(float64(width) * scale)
		scaledH := int(float64(height) * scale)
		if scaledW < 1 {
			scaledW = 1
		}
		if scaledH < 1 {
			scaledH = 1
		}

		scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)
		img = scaled
	}

	quality := 95
	for {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
		if buf.Len() <= maxBytes || quality <= minJPEGQuality {
			return buf.Bytes(), nil
		}
		quality -= 10
	}
}
