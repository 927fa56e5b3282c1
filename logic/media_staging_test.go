package logic

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbRectCenteredByDefault(t *testing.T) {
	r := thumbRect(image.Rect(0, 0, 400, 200), 0, 0)
	assert.Equal(t, image.Rect(100, 0, 300, 200), r)

	r = thumbRect(image.Rect(0, 0, 200, 400), 0, 0)
	assert.Equal(t, image.Rect(0, 100, 200, 300), r)

	// Square input: crop is the whole image no matter the focus
	r = thumbRect(image.Rect(0, 0, 300, 300), 0.7, -0.2)
	assert.Equal(t, image.Rect(0, 0, 300, 300), r)
}

func TestThumbRectFollowsFocus(t *testing.T) {
	// Focus on the right edge of a landscape image
	r := thumbRect(image.Rect(0, 0, 400, 200), 1, 0)
	assert.Equal(t, image.Rect(200, 0, 400, 200), r)

	// Focus on the left edge
	r = thumbRect(image.Rect(0, 0, 400, 200), -1, 0)
	assert.Equal(t, image.Rect(0, 0, 200, 200), r)

	// +y is up: focus at the top of a portrait image crops the top square
	r = thumbRect(image.Rect(0, 0, 200, 400), 0, 1)
	assert.Equal(t, image.Rect(0, 0, 200, 200), r)

	// Focus at the bottom crops the bottom square
	r = thumbRect(image.Rect(0, 0, 200, 400), 0, -1)
	assert.Equal(t, image.Rect(0, 200, 200, 400), r)

	// Part-way focus lands between center and edge
	r = thumbRect(image.Rect(0, 0, 400, 200), 0.25, 0)
	assert.Equal(t, image.Rect(150, 0, 350, 200), r)
}

func TestMakeThumbnail(t *testing.T) {

	src := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 8), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	err := png.Encode(&buf, src)
	assert.Nil(t, err)

	thumbBytes, blurStr, err := makeThumbnail(buf.Bytes(), "image/png", 0, 0)
	assert.Nil(t, err)
	assert.NotEmpty(t, blurStr)

	thumb, _, err := image.Decode(bytes.NewReader(thumbBytes))
	assert.Nil(t, err)
	assert.Equal(t, thumbSize, thumb.Bounds().Dx())
	assert.Equal(t, thumbSize, thumb.Bounds().Dy())
}

func TestMakeThumbnailRejectsGarbage(t *testing.T) {
	_, _, err := makeThumbnail([]byte("this is not an image"), "image/jpeg", 0, 0)
	assert.NotNil(t, err)
}
