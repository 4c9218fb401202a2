package viewer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var red = color.RGBA{R: 255, A: 255}

func blank() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 20, 20))
}

func TestFillTriangleCoversInterior(t *testing.T) {
	img := blank()
	fillTriangle(img,
		rasterPoint{2, 2}, rasterPoint{17, 2}, rasterPoint{2, 17}, red)

	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, red, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(16, 16))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(19, 19))
}

func TestFillTriangleClampsToImage(t *testing.T) {
	img := blank()
	fillTriangle(img,
		rasterPoint{-5, -5}, rasterPoint{25, -5}, rasterPoint{10, 25}, red)

	assert.Equal(t, red, img.RGBAAt(10, 10))
}

func TestFillTriangleDegenerateDrawsNothing(t *testing.T) {
	img := blank()
	fillTriangle(img,
		rasterPoint{2, 5}, rasterPoint{10, 5}, rasterPoint{18, 5}, red)

	for x := 0; x < 20; x++ {
		assert.Equal(t, color.RGBA{}, img.RGBAAt(x, 5))
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	img := blank()
	drawLine(img, 0, 0, 9, 9, red)

	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, red, img.RGBAAt(9, 9))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(5, 6))
}

func TestDrawLineClipsOutOfBounds(t *testing.T) {
	img := blank()
	drawLine(img, -5, 3, 30, 3, red)

	assert.Equal(t, red, img.RGBAAt(0, 3))
	assert.Equal(t, red, img.RGBAAt(19, 3))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 4))
}

func TestDrawThickLineWidth(t *testing.T) {
	img := blank()
	drawThickLine(img, 2, 10, 17, 10, 5, red)

	assert.Equal(t, red, img.RGBAAt(10, 10))
	assert.Equal(t, red, img.RGBAAt(10, 8))
	assert.Equal(t, red, img.RGBAAt(10, 12))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 7))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 13))
}

func TestDrawThickLineWidthOneIsThin(t *testing.T) {
	img := blank()
	drawThickLine(img, 2, 10, 17, 10, 1, red)

	assert.Equal(t, red, img.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 11))
}

func TestFillCircle(t *testing.T) {
	img := blank()
	fillCircle(img, 10, 10, 3, red)

	assert.Equal(t, red, img.RGBAAt(10, 10))
	assert.Equal(t, red, img.RGBAAt(13, 10))
	assert.Equal(t, red, img.RGBAAt(10, 13))
	assert.Equal(t, red, img.RGBAAt(12, 12))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(14, 10))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(13, 13))
}

func TestFillCircleClipsAtCorner(t *testing.T) {
	img := blank()
	fillCircle(img, 0, 0, 3, red)

	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(3, 0))
}
