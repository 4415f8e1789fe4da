package piclut

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

// a 2x3 image with distinct pixels:
//
//	A B
//	C D
//	E F
func orientFixture() *NRGB {
	img := NewNRGB(image.Rect(0, 0, 2, 3))
	for i := range 6 {
		v := uint8('A' + i)
		img.Pix[3*i], img.Pix[3*i+1], img.Pix[3*i+2] = v, v, v
	}
	return img
}

func letters(p *NRGB) string {
	var s []byte
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			s = append(s, p.NRGBAt(x, y).R)
		}
		s = append(s, ' ')
	}
	return string(s[:len(s)-1])
}

func TestFixOrientation(t *testing.T) {
	cases := []struct {
		o    Orientation
		want string
	}{
		{OrientationUnspecified, "AB CD EF"},
		{OrientationNormal, "AB CD EF"},
		{OrientationFlipH, "BA DC FE"},
		{OrientationRotate180, "FE DC BA"},
		{OrientationFlipV, "EF CD AB"},
		{OrientationTranspose, "ACE BDF"},
		{OrientationRotate90, "ECA FDB"},
		{OrientationTransverse, "FDB ECA"},
		{OrientationRotate270, "BDF ACE"},
	}
	for _, tc := range cases {
		got := FixOrientation(orientFixture(), tc.o)
		require.Equal(t, tc.want, letters(got), "orientation %d", tc.o)
	}
}

func TestFixOrientationIdentitySharesPixels(t *testing.T) {
	img := orientFixture()
	require.Same(t, img, FixOrientation(img, OrientationNormal))
	require.Same(t, img, FixOrientation(img, Orientation(42)))
}

func TestFixOrientationSwapsDimensions(t *testing.T) {
	img := orientFixture()
	out := FixOrientation(img, OrientationRotate90)
	require.Equal(t, image.Rect(0, 0, 3, 2), out.Rect)
	out = FixOrientation(img, OrientationFlipH)
	require.Equal(t, image.Rect(0, 0, 2, 3), out.Rect)
}
