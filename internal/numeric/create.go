package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Arange returns start, start+step, ... up to but excluding stop.
func Arange(start, stop, step float64) ([]float64, error) {
	if step == 0 || math.IsNaN(step) {
		return nil, fmt.Errorf("arange: invalid step %v", step)
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return []float64{}, nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) ([]float64, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("linspace: negative count %d", n)
	case n == 0:
		return []float64{}, nil
	case n == 1:
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, stop), nil
}

// Full returns an r×c matrix with every element set to v.
func Full(r, c int, v float64) *mat.Dense {
	data := make([]float64, r*c)
	if v != 0 {
		for i := range data {
			data[i] = v
		}
	}
	return mat.NewDense(r, c, data)
}

// Ones returns an r×c matrix of ones.
func Ones(r, c int) *mat.Dense { return Full(r, c, 1) }

// Zeros returns an r×c matrix of zeros.
func Zeros(r, c int) *mat.Dense { return mat.NewDense(r, c, nil) }

// Eye returns the n×n identity matrix.
func Eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
