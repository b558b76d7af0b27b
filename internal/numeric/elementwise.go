package numeric

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Add returns a+b.
func Add(a, b mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Add(a, b)
	return &out
}

// Pow raises every element of a to p. Small integer powers avoid math.Pow.
func Pow(a mat.Matrix, p float64) *mat.Dense {
	var out mat.Dense
	switch p {
	case 2:
		out.Apply(func(_, _ int, v float64) float64 { return v * v }, a)
	case 3:
		out.Apply(func(_, _ int, v float64) float64 { return v * v * v }, a)
	default:
		out.Apply(func(_, _ int, v float64) float64 { return math.Pow(v, p) }, a)
	}
	return &out
}

// Sqrt takes the square root of every element. Negative inputs yield NaN.
func Sqrt(a mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return math.Sqrt(v) }, a)
	return &out
}

// Mask is a row-major boolean matrix.
type Mask struct {
	Rows, Cols int
	Data       []bool
}

// At reports the mask value at (i, j).
func (m Mask) At(i, j int) bool { return m.Data[i*m.Cols+j] }

// Count returns the number of true elements.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.Data {
		if b {
			n++
		}
	}
	return n
}

// Greater returns the mask a > v.
func Greater(a *mat.Dense, v float64) Mask {
	r, c := a.Dims()
	raw := a.RawMatrix()
	mask := Mask{Rows: r, Cols: c, Data: make([]bool, r*c)}
	for i := 0; i < r; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+c]
		dst := mask.Data[i*c : (i+1)*c]
		for j, x := range row {
			dst[j] = x > v
		}
	}
	return mask
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise, with
// NumPy's default rtol of 1e-5.
func AllClose(a, b mat.Matrix, atol float64) bool {
	const rtol = 1e-5
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			x, y := a.At(i, j), b.At(i, j)
			if math.Abs(x-y) > atol+rtol*math.Abs(y) {
				return false
			}
		}
	}
	return true
}
