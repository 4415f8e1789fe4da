package piclut

import "image"

// Orientation is the EXIF/TIFF orientation tag value describing how a
// camera stored the image relative to how it should be displayed.
type Orientation int

const (
	OrientationUnspecified Orientation = iota
	OrientationNormal
	OrientationFlipH
	OrientationRotate180
	OrientationFlipV
	OrientationTranspose
	OrientationRotate90
	OrientationTransverse
	OrientationRotate270
)

// FixOrientation returns a copy of p remapped so that it displays
// upright. Orientations that need no change return p itself. A pure color
// map commutes with any pixel permutation, so this may be applied before
// or after grading.
func FixOrientation(p *NRGB, o Orientation) *NRGB {
	if o <= OrientationNormal || o > OrientationRotate270 {
		return p
	}
	w, h := p.Rect.Dx(), p.Rect.Dy()
	ow, oh := w, h
	if o >= OrientationTranspose {
		ow, oh = h, w
	}
	// source coordinates (relative to p.Rect.Min) for output pixel (x, y)
	var src func(x, y int) (int, int)
	switch o {
	case OrientationFlipH:
		src = func(x, y int) (int, int) { return w - 1 - x, y }
	case OrientationRotate180:
		src = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case OrientationFlipV:
		src = func(x, y int) (int, int) { return x, h - 1 - y }
	case OrientationTranspose:
		src = func(x, y int) (int, int) { return y, x }
	case OrientationRotate90:
		src = func(x, y int) (int, int) { return y, h - 1 - x }
	case OrientationTransverse:
		src = func(x, y int) (int, int) { return w - 1 - y, h - 1 - x }
	case OrientationRotate270:
		src = func(x, y int) (int, int) { return w - 1 - y, x }
	}
	out := NewNRGB(image.Rect(0, 0, ow, oh))
	for y := range oh {
		drow := out.Pix[y*out.Stride:]
		for x := range ow {
			sx, sy := src(x, y)
			i := p.PixOffset(p.Rect.Min.X+sx, p.Rect.Min.Y+sy)
			s := p.Pix[i : i+3 : i+3]
			d := drow[3*x : 3*x+3 : 3*x+3]
			d[0], d[1], d[2] = s[0], s[1], s[2]
		}
	}
	return out
}
