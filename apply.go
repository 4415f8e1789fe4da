package piclut

import (
	"fmt"
	"image"
	"math"

	"github.com/kovidgoyal/go-parallel"

	"github.com/Richthespencer/piclut/cube"
)

var _ = fmt.Print

type applyConfig struct {
	strength        float64
	ditherIntensity float64
	tetrahedral     bool
	workers         int
}

var defaultApplyConfig = applyConfig{strength: 1}

// ApplyOption sets an optional parameter for Apply.
type ApplyOption func(*applyConfig)

// Strength returns an ApplyOption that blends the graded color with the
// source color: 0 leaves the image unchanged, 1 (the default) applies the
// LUT fully. Values outside [0, 1] are clamped.
func Strength(s float64) ApplyOption {
	return func(c *applyConfig) {
		c.strength = math.Min(1, math.Max(0, s))
	}
}

// BlueNoiseDither returns an ApplyOption that adds tiled blue noise, in
// units of 8-bit steps, before quantizing the output. It trades a little
// high frequency noise for banding-free gradients. Typical intensities are
// 1 to 3; 0 disables dithering. The noise texture is fixed, so dithered
// output is still deterministic.
func BlueNoiseDither(intensity float64) ApplyOption {
	return func(c *applyConfig) {
		c.ditherIntensity = math.Max(0, intensity)
	}
}

// TetrahedralInterpolation returns an ApplyOption that samples the lattice
// with tetrahedral instead of trilinear interpolation.
func TetrahedralInterpolation() ApplyOption {
	return func(c *applyConfig) {
		c.tetrahedral = true
	}
}

// Workers returns an ApplyOption limiting the number of goroutines used to
// process rows. Zero, the default, uses one per CPU.
func Workers(n int) ApplyOption {
	return func(c *applyConfig) {
		c.workers = max(0, n)
	}
}

const (
	inv255   = 1.0 / 255
	inv65535 = 1.0 / 65535
)

func quantize(v, noise float64) uint8 {
	f := math.Floor(v*255 + noise + 0.5)
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}

func unpremultiply(r, a uint32) float64 {
	return float64(r*0xffff/a) * inv65535
}

// Apply maps every pixel of img through the lattice and returns the graded
// image as a new 3-channel NRGB of the same dimensions. Input alpha, if
// any, is discarded. The lattice is read-only during the call, rows are
// processed in parallel and the result is identical regardless of the
// number of workers.
//
// Out-of-domain source values are clamped to the lattice boundary, never
// extrapolated. Output samples are rounded half to nearest and clamped to
// the 8-bit range.
func Apply(lut *cube.Lut, image_any image.Image, opts ...ApplyOption) (*NRGB, error) {
	if err := lut.Validate(); err != nil {
		return nil, err
	}
	cfg := defaultApplyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	interp := lut.Trilinear
	if cfg.tetrahedral {
		interp = lut.Tetrahedral
	}
	b := image_any.Bounds()
	width, height := b.Dx(), b.Dy()
	out := NewNRGB(b)
	if width == 0 || height == 0 {
		return out, nil
	}
	strength := cfg.strength
	intensity := cfg.ditherIntensity
	var noise *blueNoiseTexture
	if intensity > 0 {
		noise = sharedBlueNoise()
	}

	// grade one source color, already normalized to [0, 1], into dst
	grade := func(x, y int, r, g, bl float64, dst []uint8) {
		gr, gg, gb := interp(r, g, bl)
		if strength != 1 {
			gr = r + strength*(gr-r)
			gg = g + strength*(gg-g)
			gb = bl + strength*(gb-bl)
		}
		var d float64
		if noise != nil {
			d = noise.at(x, y) * intensity
		}
		dst[0] = quantize(gr, d)
		dst[1] = quantize(gg, d)
		dst[2] = quantize(gb, d)
	}

	var f func(start, limit int)
	switch img := image_any.(type) {
	case *NRGB:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				drow := out.Pix[y*out.Stride:]
				_ = row[3*(width-1)]
				for x := range width {
					s := row[0:3:3]
					grade(x, y, float64(s[0])*inv255, float64(s[1])*inv255, float64(s[2])*inv255, drow[0:3:3])
					row = row[3:]
					drow = drow[3:]
				}
			}
		}
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				drow := out.Pix[y*out.Stride:]
				_ = row[4*(width-1)]
				for x := range width {
					s := row[0:3:3]
					grade(x, y, float64(s[0])*inv255, float64(s[1])*inv255, float64(s[2])*inv255, drow[0:3:3])
					row = row[4:]
					drow = drow[3:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				drow := out.Pix[y*out.Stride:]
				_ = row[4*(width-1)]
				for x := range width {
					var r, g, bl float64
					if a := row[3]; a != 0 {
						// stored premultiplied
						af := float64(a)
						r = float64(row[0]) / af
						g = float64(row[1]) / af
						bl = float64(row[2]) / af
					}
					grade(x, y, r, g, bl, drow[0:3:3])
					row = row[4:]
					drow = drow[3:]
				}
			}
		}
	case *image.NRGBA64:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				drow := out.Pix[y*out.Stride:]
				_ = row[8*(width-1)]
				for x := range width {
					s := row[0:6:6]
					r := float64(uint16(s[0])<<8|uint16(s[1])) * inv65535
					g := float64(uint16(s[2])<<8|uint16(s[3])) * inv65535
					bl := float64(uint16(s[4])<<8|uint16(s[5])) * inv65535
					grade(x, y, r, g, bl, drow[0:3:3])
					row = row[8:]
					drow = drow[3:]
				}
			}
		}
	case *image.Gray:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				drow := out.Pix[y*out.Stride:]
				_ = row[width-1]
				for x := range width {
					v := float64(row[x]) * inv255
					grade(x, y, v, v, v, drow[0:3:3])
					drow = drow[3:]
				}
			}
		}
	default:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				drow := out.Pix[y*out.Stride:]
				for x := range width {
					r16, g16, b16, a16 := image_any.At(b.Min.X+x, b.Min.Y+y).RGBA()
					var r, g, bl float64
					switch a16 {
					case 0:
					case 0xffff:
						r = float64(r16) * inv65535
						g = float64(g16) * inv65535
						bl = float64(b16) * inv65535
					default:
						r = unpremultiply(r16, a16)
						g = unpremultiply(g16, a16)
						bl = unpremultiply(b16, a16)
					}
					grade(x, y, r, g, bl, drow[0:3:3])
					drow = drow[3:]
				}
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(cfg.workers, f, 0, height); err != nil {
		return nil, err
	}
	return out, nil
}
