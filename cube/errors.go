package cube

import (
	"errors"
	"fmt"
)

// ErrMissingSize is returned when a .cube file has no LUT_3D_SIZE directive.
var ErrMissingSize = errors.New("cube: missing LUT_3D_SIZE directive")

// InvalidSizeError is returned when the LUT_3D_SIZE value is not an
// integer greater than or equal to two.
type InvalidSizeError struct {
	Line  int // 1-based line number of the directive
	Value string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("cube: invalid LUT_3D_SIZE %q on line %d: must be an integer >= 2", e.Value, e.Line)
}

// DataCountError is returned when the number of data lines does not match
// the N³ node count implied by LUT_3D_SIZE.
type DataCountError struct {
	Size     int
	Expected int
	Found    int
}

func (e *DataCountError) Error() string {
	return fmt.Sprintf("cube: LUT_3D_SIZE %d requires %d data lines, found %d", e.Size, e.Expected, e.Found)
}

// MalformedLineError is returned for any line that is neither a recognized
// directive, a comment, a blank line, nor exactly three float tokens.
type MalformedLineError struct {
	Line int // 1-based
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("cube: malformed line %d: %q", e.Line, e.Text)
}

// DomainError is returned when DOMAIN_MIN is not strictly below DOMAIN_MAX
// on every channel.
type DomainError struct {
	Channel int // 0 = R, 1 = G, 2 = B
	Min     float64
	Max     float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("cube: invalid domain on channel %d: min %g >= max %g", e.Channel, e.Min, e.Max)
}

// LatticeError reports a Lut whose internal invariants do not hold. It is
// unreachable for values produced by this package's parser and exists to
// keep hand-constructed lattices from causing out-of-bounds reads.
type LatticeError struct {
	Size      int
	TableLen  int
	DomainBad bool
}

func (e *LatticeError) Error() string {
	if e.DomainBad {
		return fmt.Sprintf("cube: invalid lattice: degenerate domain (size %d)", e.Size)
	}
	return fmt.Sprintf("cube: invalid lattice: size %d requires table of %d values, have %d", e.Size, 3*e.Size*e.Size*e.Size, e.TableLen)
}
