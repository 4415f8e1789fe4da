package piclut

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNRGBBasics(t *testing.T) {
	img := NewNRGB(image.Rect(0, 0, 3, 2))
	require.Equal(t, 9, img.Stride)
	require.Len(t, img.Pix, 18)
	require.True(t, img.Opaque())

	img.Set(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	require.Equal(t, NRGBColor{10, 20, 30}, img.NRGBAt(1, 1))

	r, g, b, a := img.At(1, 1).RGBA()
	require.Equal(t, uint32(10*257), r)
	require.Equal(t, uint32(20*257), g)
	require.Equal(t, uint32(30*257), b)
	require.Equal(t, uint32(0xffff), a)

	// out of bounds access is a no-op / zero value
	img.Set(-1, 0, color.NRGBA{R: 1, A: 255})
	require.Equal(t, NRGBColor{}, img.NRGBAt(5, 5))
}

func TestNRGBModelUnpremultiplies(t *testing.T) {
	c := NRGBModel.Convert(color.RGBA{R: 100, G: 50, B: 25, A: 128}).(NRGBColor)
	require.InDelta(t, 199, int(c.R), 1)
	require.InDelta(t, 99, int(c.G), 1)
	require.InDelta(t, 49, int(c.B), 1)
	require.Equal(t, NRGBColor{}, NRGBModel.Convert(color.NRGBA{R: 9, A: 0}))
}

func TestNRGBSubImage(t *testing.T) {
	img := gradientNRGB(8, 8)
	sub := img.SubImage(image.Rect(2, 3, 6, 7)).(*NRGB)
	require.Equal(t, image.Rect(2, 3, 6, 7), sub.Rect)
	require.Equal(t, img.NRGBAt(4, 5), sub.NRGBAt(4, 5))

	empty := img.SubImage(image.Rect(20, 20, 30, 30)).(*NRGB)
	require.True(t, empty.Rect.Empty())
}

func TestNewNRGBWithContiguousRGBPixels(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6}
	img, err := NewNRGBWithContiguousRGBPixels(pix, 0, 0, 2, 1)
	require.NoError(t, err)
	require.Equal(t, NRGBColor{4, 5, 6}, img.NRGBAt(1, 0))

	_, err = NewNRGBWithContiguousRGBPixels(pix, 0, 0, 2, 2)
	require.Error(t, err)
}
