// Package numeric provides the array operations the benchmark catalogue
// measures. Matrices are gonum *mat.Dense values; the few NumPy-style
// operations gonum has no direct equivalent for (arange, stacking into a new
// axis, dimension expansion, integer dtype conversion) are implemented here
// on contiguous row-major buffers.
package numeric
