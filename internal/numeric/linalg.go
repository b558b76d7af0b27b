package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatMul returns the matrix product a·b.
func MatMul(a, b mat.Matrix) (*mat.Dense, error) {
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("matmul: inner dimensions %d and %d differ", ac, br)
	}
	var out mat.Dense
	out.Mul(a, b)
	return &out, nil
}

// MatVec returns a·x.
func MatVec(a mat.Matrix, x mat.Vector) (*mat.VecDense, error) {
	_, c := a.Dims()
	if c != x.Len() {
		return nil, fmt.Errorf("matvec: matrix has %d columns, vector length %d", c, x.Len())
	}
	var out mat.VecDense
	out.MulVec(a, x)
	return &out, nil
}

// VecMat returns xᵀ·a as a vector.
func VecMat(x mat.Vector, a mat.Matrix) (*mat.VecDense, error) {
	r, _ := a.Dims()
	if r != x.Len() {
		return nil, fmt.Errorf("vecmat: vector length %d, matrix has %d rows", x.Len(), r)
	}
	var out mat.VecDense
	out.MulVec(a.T(), x)
	return &out, nil
}

// Dot returns the inner product of x and y.
func Dot(x, y mat.Vector) (float64, error) {
	if x.Len() != y.Len() {
		return 0, fmt.Errorf("dot: lengths %d and %d differ", x.Len(), y.Len())
	}
	return mat.Dot(x, y), nil
}

// Head returns a view of the first n elements of v.
func Head(v *mat.VecDense, n int) mat.Vector {
	return v.SliceVec(0, n)
}
