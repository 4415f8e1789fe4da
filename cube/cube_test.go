package cube

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

const tinyCube = `# a 2x2x2 test LUT
TITLE "tiny"
LUT_3D_SIZE 2

0 0 0
1 0 0
0 1 0
1 1 0
0 0 1
1 0 1
0 1 1
1 1 1
`

func TestDecode(t *testing.T) {
	l, err := DecodeString(tinyCube)
	require.NoError(t, err)
	require.Equal(t, "tiny", l.Title)
	require.Equal(t, 2, l.Size)
	require.Len(t, l.Table, 3*2*2*2)
	require.Equal(t, [3]float64{0, 0, 0}, l.DomainMin)
	require.Equal(t, [3]float64{1, 1, 1}, l.DomainMax)
	require.NoError(t, l.Validate())

	// file order is red fastest-varying
	r, g, b := l.NodeAt(1, 0, 0)
	require.Equal(t, [3]float64{1, 0, 0}, [3]float64{r, g, b})
	r, g, b = l.NodeAt(0, 1, 0)
	require.Equal(t, [3]float64{0, 1, 0}, [3]float64{r, g, b})
	r, g, b = l.NodeAt(0, 0, 1)
	require.Equal(t, [3]float64{0, 0, 1}, [3]float64{r, g, b})
}

func TestDecodeDomainDirectives(t *testing.T) {
	l, err := DecodeString(`LUT_3D_SIZE 2
DOMAIN_MIN -0.5 0 0
DOMAIN_MAX 0.5 2 1
0 0 0
1 0 0
0 1 0
1 1 0
0 0 1
1 0 1
0 1 1
1 1 1
`)
	require.NoError(t, err)
	require.Equal(t, [3]float64{-0.5, 0, 0}, l.DomainMin)
	require.Equal(t, [3]float64{0.5, 2, 1}, l.DomainMax)
}

func TestDecodeErrors(t *testing.T) {
	t.Run("MissingSize", func(t *testing.T) {
		_, err := DecodeString("0 0 0\n1 1 1\n")
		require.ErrorIs(t, err, ErrMissingSize)
	})

	t.Run("InvalidSize", func(t *testing.T) {
		for _, bad := range []string{"1", "0", "-3", "2.5", "seventeen"} {
			_, err := DecodeString("LUT_3D_SIZE " + bad + "\n")
			var se *InvalidSizeError
			require.ErrorAs(t, err, &se, "size %q", bad)
			require.Equal(t, 1, se.Line)
			require.Equal(t, bad, se.Value)
		}
	})

	t.Run("DuplicateSize", func(t *testing.T) {
		_, err := DecodeString("LUT_3D_SIZE 2\nLUT_3D_SIZE 2\n")
		var me *MalformedLineError
		require.ErrorAs(t, err, &me)
		require.Equal(t, 2, me.Line)
	})

	t.Run("DataCountMismatch", func(t *testing.T) {
		_, err := DecodeString("LUT_3D_SIZE 2\n0 0 0\n1 1 1\n")
		var ce *DataCountError
		require.ErrorAs(t, err, &ce)
		require.Equal(t, 8, ce.Expected)
		require.Equal(t, 2, ce.Found)
		require.Equal(t, 2, ce.Size)
	})

	t.Run("MalformedDataLine", func(t *testing.T) {
		// two numbers instead of three, on line 3
		_, err := DecodeString("LUT_3D_SIZE 2\n0 0 0\n0.5 0.5\n")
		var me *MalformedLineError
		require.ErrorAs(t, err, &me)
		require.Equal(t, 3, me.Line)
		require.Equal(t, "0.5 0.5", me.Text)

		_, err = DecodeString("LUT_3D_SIZE 2\n0 0 zero\n")
		require.ErrorAs(t, err, &me)
		require.Equal(t, 2, me.Line)
	})

	t.Run("InvalidDomain", func(t *testing.T) {
		_, err := DecodeString("LUT_3D_SIZE 2\nDOMAIN_MIN 0 1 0\nDOMAIN_MAX 1 1 1\n")
		var de *DomainError
		require.ErrorAs(t, err, &de)
		require.Equal(t, 1, de.Channel)
		require.Equal(t, 1.0, de.Min)
		require.Equal(t, 1.0, de.Max)
	})

	t.Run("NoPartialResult", func(t *testing.T) {
		l, err := DecodeString("LUT_3D_SIZE 2\n0 0 0\n")
		require.Error(t, err)
		require.Nil(t, l)
	})
}

func TestDecodeSkipsCommentsAndBlanks(t *testing.T) {
	var buf strings.Builder
	buf.WriteString("# leading comment\n\nLUT_3D_SIZE 3\n# another\n\n")
	for i := range 27 {
		fmt.Fprintf(&buf, "%g %g %g\n", float64(i)/26, 0.5, 1.0)
	}
	l, err := DecodeString(buf.String())
	require.NoError(t, err)
	require.Equal(t, 3, l.Size)
	require.Len(t, l.Table, 81)
}

func TestRoundTrip(t *testing.T) {
	l := Identity(5)
	l.Title = "identity 5"
	l.DomainMin = [3]float64{0, -0.25, 0}
	l.DomainMax = [3]float64{1, 1.25, 1}
	back, err := DecodeString(l.String())
	require.NoError(t, err)
	if diff := cmp.Diff(l, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	var le *LatticeError
	l := &Lut{Size: 1, Table: make([]float64, 3)}
	require.True(t, errors.As(l.Validate(), &le))

	l = &Lut{Size: 2, Table: make([]float64, 23), DomainMin: [3]float64{0, 0, 0}, DomainMax: [3]float64{1, 1, 1}}
	require.True(t, errors.As(l.Validate(), &le))
	require.Equal(t, 23, le.TableLen)

	l = &Lut{Size: 2, Table: make([]float64, 24)}
	require.True(t, errors.As(l.Validate(), &le), "degenerate domain must not validate")

	require.NoError(t, Identity(2).Validate())
}
