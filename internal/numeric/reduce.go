package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sum adds every element of a.
func Sum(a mat.Matrix) float64 {
	return mat.Sum(a)
}

// Mean averages every element of a.
func Mean(a mat.Matrix) float64 {
	r, c := a.Dims()
	return mat.Sum(a) / float64(r*c)
}

// SumAxis reduces along axis: 0 sums each column, 1 sums each row.
func SumAxis(a *mat.Dense, axis int) ([]float64, error) {
	return reduceAxis(a, axis, func(v []float64) float64 { return floats.Sum(v) })
}

// MeanAxis averages along axis: 0 averages each column, 1 each row.
func MeanAxis(a *mat.Dense, axis int) ([]float64, error) {
	return reduceAxis(a, axis, func(v []float64) float64 { return stat.Mean(v, nil) })
}

func reduceAxis(a *mat.Dense, axis int, fn func([]float64) float64) ([]float64, error) {
	r, c := a.Dims()
	switch axis {
	case 0:
		out := make([]float64, c)
		col := make([]float64, r)
		for j := 0; j < c; j++ {
			mat.Col(col, j, a)
			out[j] = fn(col)
		}
		return out, nil
	case 1:
		out := make([]float64, r)
		for i := 0; i < r; i++ {
			out[i] = fn(a.RawRowView(i))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("axis %d out of range for a 2-d matrix", axis)
	}
}

// Diag copies the main diagonal of a.
func Diag(a mat.Matrix) []float64 {
	r, c := a.Dims()
	n := min(r, c)
	out := make([]float64, n)
	for i := range out {
		out[i] = a.At(i, i)
	}
	return out
}
