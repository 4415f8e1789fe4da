/*
Package piclut applies 3D color lookup tables in the .cube text format to
images, producing color graded output.

The cube subpackage parses and validates .cube files into an immutable
lattice. Apply maps any image.Image through such a lattice with trilinear
(or optionally tetrahedral) interpolation, processing rows in parallel, and
returns a new 3-channel *NRGB image. Input alpha is discarded, never
blended into color.
*/
package piclut

import "fmt"

type PiclutVersion struct {
	Major, Minor, Patch uint
}

func (v PiclutVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v PiclutVersion) Equal(o PiclutVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

var Version = PiclutVersion{1, 0, 0}
