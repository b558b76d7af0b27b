package numeric

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSlice fills a new slice of length n with draws from dist.
func RandomSlice(n int, dist distuv.Rander) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Random returns an r×c matrix of draws from dist, filled row by row.
func Random(r, c int, dist distuv.Rander) *mat.Dense {
	return mat.NewDense(r, c, RandomSlice(r*c, dist))
}

// RandomVec returns a length-n vector of draws from dist.
func RandomVec(n int, dist distuv.Rander) *mat.VecDense {
	return mat.NewVecDense(n, RandomSlice(n, dist))
}
