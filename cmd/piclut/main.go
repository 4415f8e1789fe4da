// Command piclut applies a .cube 3D LUT to an image and writes the graded
// result as PNG (APNG when the input is an animated PNG).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/kettek/apng"
	"github.com/rwcarlsen/goexif/exif"
	exif_tiff "github.com/rwcarlsen/goexif/tiff"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Richthespencer/piclut"
	"github.com/Richthespencer/piclut/cube"
)

var _ = fmt.Print

var (
	strength    = flag.Float64("strength", 1, "LUT strength, 0 leaves the image unchanged, 1 applies it fully")
	dither      = flag.Bool("dither", false, "add blue noise dithering to suppress banding")
	tetrahedral = flag.Bool("tetrahedral", false, "use tetrahedral instead of trilinear interpolation")
	workers     = flag.Int("workers", 0, "number of parallel workers, 0 means one per CPU")
)

func applyOptions() []piclut.ApplyOption {
	opts := []piclut.ApplyOption{piclut.Strength(*strength), piclut.Workers(*workers)}
	if *dither {
		opts = append(opts, piclut.BlueNoiseDither(2))
	}
	if *tetrahedral {
		opts = append(opts, piclut.TetrahedralInterpolation())
	}
	return opts
}

// exifOrientation digs the orientation tag out of the image file data, if
// there is one.
func exifOrientation(data []byte) piclut.Orientation {
	exif_data, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return piclut.OrientationUnspecified
	}
	orient, err := exif_data.Get(exif.Orientation)
	if err != nil || orient == nil || orient.Format() != exif_tiff.IntVal {
		return piclut.OrientationUnspecified
	}
	if x, err := orient.Int(0); err == nil && x > 0 && x < 9 {
		return piclut.Orientation(x)
	}
	return piclut.OrientationUnspecified
}

func gradeAnimation(lut *cube.Lut, a apng.APNG, output string) error {
	for i, f := range a.Frames {
		graded, err := piclut.Apply(lut, f.Image, applyOptions()...)
		if err != nil {
			return err
		}
		a.Frames[i].Image = graded
	}
	out, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	defer out.Close()
	return apng.Encode(out, a)
}

func gradeStill(lut *cube.Lut, img image.Image, orientation piclut.Orientation, output string) error {
	graded, err := piclut.Apply(lut, img, applyOptions()...)
	if err != nil {
		return err
	}
	graded = piclut.FixOrientation(graded, orientation)
	out, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, graded)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: piclut [flags] lut.cube input-image [output-file]")
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		flag.Usage()
		os.Exit(1)
	}
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	lut, err := cube.LoadFile(args[0])
	if err != nil {
		return
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return
	}
	output := args[1] + ".graded.png"
	if len(args) == 3 {
		output = args[2]
	}
	if a, aerr := apng.DecodeAll(bytes.NewReader(data)); aerr == nil && len(a.Frames) > 1 {
		err = gradeAnimation(lut, a, output)
		if err == nil {
			fmt.Println("APNG saved to:", output)
		}
		return
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}
	err = gradeStill(lut, img, exifOrientation(data), output)
	if err == nil {
		fmt.Println("PNG saved to:", output)
	}
}
