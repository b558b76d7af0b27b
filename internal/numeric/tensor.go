package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tensor is an n-dimensional row-major array.
type Tensor struct {
	Shape []int
	Data  []float64
}

// Size is the product of the shape.
func (t Tensor) Size() int {
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// contiguous returns a's elements in row-major order, sharing storage when
// the rows are already packed.
func contiguous(a *mat.Dense) []float64 {
	r, c := a.Dims()
	raw := a.RawMatrix()
	if raw.Stride == c {
		return raw.Data[:r*c]
	}
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, raw.Data[i*raw.Stride:i*raw.Stride+c]...)
	}
	return out
}

// FromDense views a as a 2-d tensor.
func FromDense(a *mat.Dense) Tensor {
	r, c := a.Dims()
	return Tensor{Shape: []int{r, c}, Data: contiguous(a)}
}

// Flatten copies a into a new one-dimensional slice.
func Flatten(a *mat.Dense) []float64 {
	r, c := a.Dims()
	out := make([]float64, r*c)
	raw := a.RawMatrix()
	for i := 0; i < r; i++ {
		copy(out[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
	}
	return out
}

// ExpandDims inserts a length-1 axis at position axis. The result shares
// storage with t.
func ExpandDims(t Tensor, axis int) (Tensor, error) {
	if axis < 0 || axis > len(t.Shape) {
		return Tensor{}, fmt.Errorf("expand_dims: axis %d out of range for %d dims", axis, len(t.Shape))
	}
	shape := make([]int, 0, len(t.Shape)+1)
	shape = append(shape, t.Shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, t.Shape[axis:]...)
	return Tensor{Shape: shape, Data: t.Data}, nil
}

// Concatenate joins matrices along an existing axis: 0 stacks rows, 1 appends
// columns.
func Concatenate(axis int, a, b *mat.Dense) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	var out mat.Dense
	switch axis {
	case 0:
		if ac != bc {
			return nil, fmt.Errorf("concatenate: column counts %d and %d differ", ac, bc)
		}
		out.Stack(a, b)
	case 1:
		if ar != br {
			return nil, fmt.Errorf("concatenate: row counts %d and %d differ", ar, br)
		}
		out.Augment(a, b)
	default:
		return nil, fmt.Errorf("concatenate: axis %d out of range for a 2-d matrix", axis)
	}
	return &out, nil
}

// Stack joins equally shaped matrices along a new axis. For k inputs of
// shape (r, c) the result is (k, r, c), (r, k, c) or (r, c, k) for axis 0, 1
// and 2.
func Stack(axis int, ms ...*mat.Dense) (Tensor, error) {
	if len(ms) == 0 {
		return Tensor{}, fmt.Errorf("stack: need at least one matrix")
	}
	if axis < 0 || axis > 2 {
		return Tensor{}, fmt.Errorf("stack: axis %d out of range for 2-d inputs", axis)
	}
	r, c := ms[0].Dims()
	parts := make([][]float64, len(ms))
	for i, m := range ms {
		mr, mc := m.Dims()
		if mr != r || mc != c {
			return Tensor{}, fmt.Errorf("stack: input %d has shape %dx%d, want %dx%d", i, mr, mc, r, c)
		}
		parts[i] = contiguous(m)
	}

	// Elements before the new axis form outer blocks; each block copies a
	// run of inner elements from every input in turn.
	k := len(ms)
	var shape []int
	var outer, inner int
	switch axis {
	case 0:
		shape, outer, inner = []int{k, r, c}, 1, r*c
	case 1:
		shape, outer, inner = []int{r, k, c}, r, c
	default:
		shape, outer, inner = []int{r, c, k}, r*c, 1
	}

	out := make([]float64, k*r*c)
	pos := 0
	for o := 0; o < outer; o++ {
		for _, p := range parts {
			pos += copy(out[pos:], p[o*inner:(o+1)*inner])
		}
	}
	return Tensor{Shape: shape, Data: out}, nil
}

// Fill sets every element of a to v in place.
func Fill(a *mat.Dense, v float64) {
	r, c := a.Dims()
	raw := a.RawMatrix()
	for i := 0; i < r; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+c]
		for j := range row {
			row[j] = v
		}
	}
}

// Assign copies src into dst in place. Shapes must match.
func Assign(dst, src *mat.Dense) error {
	dr, dc := dst.Dims()
	sr, sc := src.Dims()
	if dr != sr || dc != sc {
		return fmt.Errorf("assign: shape %dx%d into %dx%d", sr, sc, dr, dc)
	}
	dst.Copy(src)
	return nil
}

// Transpose returns a view of aᵀ.
func Transpose(a mat.Matrix) mat.Matrix {
	return a.T()
}
