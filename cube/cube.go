// Package cube parses 3D color lookup tables in the Adobe/Resolve .cube
// text format into an immutable lattice and provides the interpolators
// used to sample it.
package cube

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var _ = fmt.Print

// Decode parses the full text of a .cube file. Parsing is all-or-nothing:
// on any error the returned Lut is nil and the error is one of the types
// defined in this package. Data lines are assigned to lattice nodes in
// file order, which the format defines as red fastest-varying.
func Decode(r io.Reader) (*Lut, error) {
	l := &Lut{
		DomainMin: [3]float64{0, 0, 0},
		DomainMax: [3]float64{1, 1, 1},
	}
	var (
		sizeSeen bool
		scanner  = bufio.NewScanner(r)
		lineno   = 0
	)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "TITLE":
			if start := strings.Index(line, `"`); start != -1 {
				if end := strings.LastIndex(line, `"`); end > start {
					l.Title = line[start+1 : end]
				}
			}
		case "LUT_3D_SIZE":
			if sizeSeen || len(fields) != 2 {
				return nil, &MalformedLineError{Line: lineno, Text: line}
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 2 {
				return nil, &InvalidSizeError{Line: lineno, Value: fields[1]}
			}
			l.Size = n
			sizeSeen = true
		case "DOMAIN_MIN":
			if err := parseTriple(fields[1:], &l.DomainMin); err != nil {
				return nil, &MalformedLineError{Line: lineno, Text: line}
			}
		case "DOMAIN_MAX":
			if err := parseTriple(fields[1:], &l.DomainMax); err != nil {
				return nil, &MalformedLineError{Line: lineno, Text: line}
			}
		default:
			var node [3]float64
			if err := parseTriple(fields, &node); err != nil {
				return nil, &MalformedLineError{Line: lineno, Text: line}
			}
			l.Table = append(l.Table, node[0], node[1], node[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sizeSeen {
		return nil, ErrMissingSize
	}
	for c := range 3 {
		if l.DomainMin[c] >= l.DomainMax[c] {
			return nil, &DomainError{Channel: c, Min: l.DomainMin[c], Max: l.DomainMax[c]}
		}
	}
	if expected := l.Size * l.Size * l.Size; len(l.Table) != 3*expected {
		return nil, &DataCountError{Size: l.Size, Expected: expected, Found: len(l.Table) / 3}
	}
	return l, nil
}

// DecodeString parses .cube text held in memory.
func DecodeString(text string) (*Lut, error) {
	return Decode(strings.NewReader(text))
}

// LoadFile reads and parses the .cube file at path.
func LoadFile(path string) (*Lut, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func parseTriple(fields []string, dest *[3]float64) error {
	if len(fields) != 3 {
		return fmt.Errorf("expected 3 values, got %d", len(fields))
	}
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return err
		}
		dest[i] = v
	}
	return nil
}

// WriteTo serializes the Lut back to .cube text. The output parses back to
// an equal Lut.
func (l *Lut) WriteTo(w io.Writer) (n int64, err error) {
	var cur int
	if l.Title != "" {
		if cur, err = fmt.Fprintf(w, "TITLE %q\n", l.Title); err != nil {
			return
		}
		n += int64(cur)
	}
	if cur, err = fmt.Fprintf(w, "LUT_3D_SIZE %d\n", l.Size); err != nil {
		return
	}
	n += int64(cur)
	if l.DomainMin != [3]float64{0, 0, 0} || l.DomainMax != [3]float64{1, 1, 1} {
		if cur, err = fmt.Fprintf(w, "DOMAIN_MIN %g %g %g\nDOMAIN_MAX %g %g %g\n",
			l.DomainMin[0], l.DomainMin[1], l.DomainMin[2],
			l.DomainMax[0], l.DomainMax[1], l.DomainMax[2]); err != nil {
			return
		}
		n += int64(cur)
	}
	for i := 0; i < len(l.Table); i += 3 {
		if cur, err = fmt.Fprintf(w, "%g %g %g\n", l.Table[i], l.Table[i+1], l.Table[i+2]); err != nil {
			return
		}
		n += int64(cur)
	}
	return
}

func (l *Lut) String() string {
	var buf strings.Builder
	l.WriteTo(&buf)
	return buf.String()
}
