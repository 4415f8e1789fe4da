package cube

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Lut is a 3D color lookup lattice parsed from a .cube file. Size is the
// per-axis node count N, Table holds N³ RGB triples flattened with red as
// the fastest varying axis, the ordering the .cube format mandates: the
// node (r, g, b) starts at Table[3*(r + g*N + b*N*N)].
//
// A Lut is never modified after construction, so it may be shared freely
// across goroutines.
type Lut struct {
	Title     string
	Size      int
	DomainMin [3]float64
	DomainMax [3]float64
	Table     []float64
}

// Validate checks the lattice invariants that the interpolators rely on.
// Luts produced by Decode always pass.
func (l *Lut) Validate() error {
	n := l.Size
	if n < 2 || len(l.Table) != 3*n*n*n {
		return &LatticeError{Size: n, TableLen: len(l.Table)}
	}
	for c := range 3 {
		if l.DomainMin[c] >= l.DomainMax[c] {
			return &LatticeError{Size: n, TableLen: len(l.Table), DomainBad: true}
		}
	}
	return nil
}

// NodeAt returns the stored color of the lattice node at integer
// coordinates (r, g, b). The indices must be in [0, Size).
func (l *Lut) NodeAt(r, g, b int) (float64, float64, float64) {
	i := 3 * (r + g*l.Size + b*l.Size*l.Size)
	s := l.Table[i : i+3 : i+3]
	return s[0], s[1], s[2]
}

// normalize maps an input color to fractional lattice coordinates,
// clamping to the domain. Out-of-domain inputs hit the boundary value,
// they are never extrapolated.
func (l *Lut) normalize(r, g, b float64) (pr, pg, pb float64) {
	scale := float64(l.Size - 1)
	pr = clamp01((r-l.DomainMin[0])/(l.DomainMax[0]-l.DomainMin[0])) * scale
	pg = clamp01((g-l.DomainMin[1])/(l.DomainMax[1]-l.DomainMin[1])) * scale
	pb = clamp01((b-l.DomainMin[2])/(l.DomainMax[2]-l.DomainMin[2])) * scale
	return
}

// cell locates the lattice cell containing the fractional coordinate p and
// splits it into a base index in [0, Size-2] and a fractional weight, so
// that idx+1 is always a valid node index.
func (l *Lut) cell(p float64) (idx int, frac float64) {
	idx = int(p)
	if idx >= l.Size-1 {
		idx = l.Size - 2
	}
	frac = p - float64(idx)
	return
}

// Trilinear maps one color through the lattice using trilinear
// interpolation over the 8 nodes of the enclosing cell. Inputs are in the
// Lut's domain, outputs in the Lut's output range.
func (l *Lut) Trilinear(r, g, b float64) (float64, float64, float64) {
	pr, pg, pb := l.normalize(r, g, b)
	ri, fr := l.cell(pr)
	gi, fg := l.cell(pg)
	bi, fb := l.cell(pb)

	n := l.Size
	rStride, gStride, bStride := 3, 3*n, 3*n*n
	base := ri*rStride + gi*gStride + bi*bStride
	t := l.Table

	c000 := t[base : base+3 : base+3]
	c100 := t[base+rStride : base+rStride+3 : base+rStride+3]
	c010 := t[base+gStride : base+gStride+3 : base+gStride+3]
	c110 := t[base+rStride+gStride : base+rStride+gStride+3 : base+rStride+gStride+3]
	base += bStride
	c001 := t[base : base+3 : base+3]
	c101 := t[base+rStride : base+rStride+3 : base+rStride+3]
	c011 := t[base+gStride : base+gStride+3 : base+gStride+3]
	c111 := t[base+rStride+gStride : base+rStride+gStride+3 : base+rStride+gStride+3]

	var out [3]float64
	for k := range 3 {
		// blend along red, then green, then blue
		c00 := c000[k] + fr*(c100[k]-c000[k])
		c10 := c010[k] + fr*(c110[k]-c010[k])
		c01 := c001[k] + fr*(c101[k]-c001[k])
		c11 := c011[k] + fr*(c111[k]-c011[k])
		c0 := c00 + fg*(c10-c00)
		c1 := c01 + fg*(c11-c01)
		out[k] = c0 + fb*(c1-c0)
	}
	return out[0], out[1], out[2]
}

// Tetrahedral maps one color through the lattice using tetrahedral
// interpolation, which splits the enclosing cell into six tetrahedra along
// its main diagonal and blends the 4 nodes of the one containing the
// sample. Exact at lattice nodes, like Trilinear, but cheaper and the
// interpolator most grading tools default to.
func (l *Lut) Tetrahedral(r, g, b float64) (float64, float64, float64) {
	pr, pg, pb := l.normalize(r, g, b)
	ri, fr := l.cell(pr)
	gi, fg := l.cell(pg)
	bi, fb := l.cell(pb)

	n := l.Size
	rs, gs, bs := 3, 3*n, 3*n*n
	base := ri*rs + gi*gs + bi*bs
	t := l.Table

	var out [3]float64
	switch {
	case fr > fg && fg > fb:
		for k := range 3 {
			out[k] = (1-fr)*t[base+k] + (fr-fg)*t[base+rs+k] + (fg-fb)*t[base+rs+gs+k] + fb*t[base+rs+gs+bs+k]
		}
	case fr > fg && fr > fb:
		for k := range 3 {
			out[k] = (1-fr)*t[base+k] + (fr-fb)*t[base+rs+k] + (fb-fg)*t[base+rs+bs+k] + fg*t[base+rs+gs+bs+k]
		}
	case fr > fg:
		for k := range 3 {
			out[k] = (1-fb)*t[base+k] + (fb-fr)*t[base+bs+k] + (fr-fg)*t[base+rs+bs+k] + fg*t[base+rs+gs+bs+k]
		}
	case fr > fb:
		for k := range 3 {
			out[k] = (1-fg)*t[base+k] + (fg-fr)*t[base+gs+k] + (fr-fb)*t[base+rs+gs+k] + fb*t[base+rs+gs+bs+k]
		}
	case fg > fb:
		for k := range 3 {
			out[k] = (1-fg)*t[base+k] + (fg-fb)*t[base+gs+k] + (fb-fr)*t[base+gs+bs+k] + fr*t[base+rs+gs+bs+k]
		}
	default:
		for k := range 3 {
			out[k] = (1-fb)*t[base+k] + (fb-fg)*t[base+bs+k] + (fg-fr)*t[base+gs+bs+k] + fr*t[base+rs+gs+bs+k]
		}
	}
	return out[0], out[1], out[2]
}

// Identity returns the identity lattice of the given size: every node maps
// to its own coordinate, so applying it leaves colors unchanged.
func Identity(size int) *Lut {
	if size < 2 {
		panic(fmt.Sprintf("cube: identity LUT size must be >= 2, not %d", size))
	}
	l := &Lut{
		Size:      size,
		DomainMin: [3]float64{0, 0, 0},
		DomainMax: [3]float64{1, 1, 1},
		Table:     make([]float64, 3*size*size*size),
	}
	scale := 1 / float64(size-1)
	i := 0
	for b := range size {
		for g := range size {
			for r := range size {
				l.Table[i] = float64(r) * scale
				l.Table[i+1] = float64(g) * scale
				l.Table[i+2] = float64(b) * scale
				i += 3
			}
		}
	}
	return l
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
