// Package catalogue defines the fixed, ordered list of array operations the
// harness measures. The row order of every result file is the order of
// Labels.
package catalogue

import (
	"errors"
	"math/rand/v2"

	"arraybench/internal/benchmark"
	"arraybench/internal/numeric"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// New returns the catalogue for matrices of the given shape.
func New(shape benchmark.Shape) []benchmark.Section {
	ops := &operands{}
	return []benchmark.Section{
		{Name: "Array creation", Build: creation(shape)},
		{Name: "Randomize", Build: randomize(shape)},
		{Name: "Mathematics", Build: mathematics(shape, ops)},
		{Name: "Array manipulation", Build: manipulation(ops)},
		{Name: "Type conversion", Build: conversion(shape)},
	}
}

// Labels returns the flattened case order. Operands are built on a tiny
// shape, so this is cheap.
func Labels() ([]string, error) {
	src := rand.NewPCG(0, 0)
	var labels []string
	for _, sec := range New(benchmark.Shape{Rows: 2, Cols: 2}) {
		cs, err := sec.Build(src)
		if err != nil {
			return nil, err
		}
		for _, c := range cs {
			labels = append(labels, c.Label)
		}
	}
	return labels, nil
}

// value wraps an infallible computation.
func value[V any](fn func() V) benchmark.Operation {
	return func() (any, error) { return fn(), nil }
}

// fallible wraps a computation that can fail.
func fallible[V any](fn func() (V, error)) benchmark.Operation {
	return func() (any, error) { return fn() }
}

func creation(shape benchmark.Shape) func(rand.Source) ([]benchmark.Case, error) {
	return func(rand.Source) ([]benchmark.Case, error) {
		r, c, n := shape.Rows, shape.Cols, shape.Size()
		return []benchmark.Case{
			{Label: "arange", Op: fallible(func() ([]float64, error) { return numeric.Arange(0, 10, 10/float64(n)) })},
			{Label: "linspace", Op: fallible(func() ([]float64, error) { return numeric.Linspace(0, 10, n) })},
			{Label: "ones", Op: value(func() *mat.Dense { return numeric.Ones(r, c) })},
			{Label: "zeros", Op: value(func() *mat.Dense { return numeric.Zeros(r, c) })},
			{Label: "full", Op: value(func() *mat.Dense { return numeric.Full(r, c, 7) })},
			{Label: "eye", Op: value(func() *mat.Dense { return numeric.Eye(r) })},
		}, nil
	}
}

// randomize draws from the shared source while being measured, so the
// operands of later sections depend on the repeat count as well as the seed.
func randomize(shape benchmark.Shape) func(rand.Source) ([]benchmark.Case, error) {
	return func(src rand.Source) ([]benchmark.Case, error) {
		r, c := shape.Rows, shape.Cols
		dist := func(d distuv.Rander) benchmark.Operation {
			return value(func() *mat.Dense { return numeric.Random(r, c, d) })
		}
		return []benchmark.Case{
			{Label: "normal distribution", Op: dist(distuv.Normal{Mu: 0, Sigma: 1, Src: src})},
			{Label: "poisson distribution", Op: dist(distuv.Poisson{Lambda: 10, Src: src})},
			{Label: "uniform distribution", Op: dist(distuv.Uniform{Min: 0, Max: 1, Src: src})},
		}, nil
	}
}

// operands are shared by the mathematics and manipulation sections. Cases
// only read them; in-place cases work on arena scratch copies instead.
type operands struct {
	vec, vec2 *mat.VecDense
	mat, mat2 *mat.Dense
	// Leading slices of vec sized to multiply mat from the right and left.
	vecCols, vecRows mat.Vector
	// Right operand of mat.dot(mat2): mat2 itself when square, mat2ᵀ
	// otherwise so the product is always defined.
	rhs mat.Matrix
}

func (o *operands) built() bool {
	return o.mat != nil
}

func mathematics(shape benchmark.Shape, o *operands) func(rand.Source) ([]benchmark.Case, error) {
	return func(src rand.Source) ([]benchmark.Case, error) {
		normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
		o.vec = numeric.RandomVec(shape.Size(), normal)
		o.vec2 = numeric.RandomVec(shape.Size(), normal)
		o.mat = numeric.Random(shape.Rows, shape.Cols, normal)
		o.mat2 = numeric.Random(shape.Rows, shape.Cols, normal)
		o.vecCols = numeric.Head(o.vec, shape.Cols)
		o.vecRows = numeric.Head(o.vec, shape.Rows)
		o.rhs = o.mat2
		if shape.Rows != shape.Cols {
			o.rhs = o.mat2.T()
		}

		return []benchmark.Case{
			{Label: "mat.dot(mat2)", Op: fallible(func() (*mat.Dense, error) { return numeric.MatMul(o.mat, o.rhs) })},
			{Label: "mat.dot(vec)", Op: fallible(func() (*mat.VecDense, error) { return numeric.MatVec(o.mat, o.vecCols) })},
			{Label: "vec.dot(mat)", Op: fallible(func() (*mat.VecDense, error) { return numeric.VecMat(o.vecRows, o.mat) })},
			{Label: "vec.dot(vec2)", Op: fallible(func() (float64, error) { return numeric.Dot(o.vec, o.vec2) })},
			{Label: "mat + mat2", Op: value(func() *mat.Dense { return numeric.Add(o.mat, o.mat2) })},
			{Label: "mat**3", Op: value(func() *mat.Dense { return numeric.Pow(o.mat, 3) })},
			{Label: "sqrt(mat)", Op: value(func() *mat.Dense { return numeric.Sqrt(o.mat) })},
			{Label: "mat > 0.5", Op: value(func() numeric.Mask { return numeric.Greater(o.mat, 0.5) })},
			{Label: "sum(mat)", Op: value(func() float64 { return numeric.Sum(o.mat) })},
			{Label: "sum(mat, axis=1)", Op: fallible(func() ([]float64, error) { return numeric.SumAxis(o.mat, 1) })},
			{Label: "mean(mat)", Op: value(func() float64 { return numeric.Mean(o.mat) })},
			{Label: "mean(mat, axis=1)", Op: fallible(func() ([]float64, error) { return numeric.MeanAxis(o.mat, 1) })},
			{Label: "allclose(mat, mat2, atol=1e-8)", Op: value(func() bool { return numeric.AllClose(o.mat, o.mat2, 1e-8) })},
			{Label: "diag(mat)", Op: value(func() []float64 { return numeric.Diag(o.mat) })},
		}, nil
	}
}

// manipulation gets a fresh arena per build, so a catalogue can be built
// more than once.
func manipulation(o *operands) func(rand.Source) ([]benchmark.Case, error) {
	return func(rand.Source) ([]benchmark.Case, error) {
		if !o.built() {
			return nil, errors.New("manipulation needs the mathematics operands")
		}
		arena := NewArena()
		fill, err := arena.Scratch("fill", o.mat)
		if err != nil {
			return nil, err
		}
		assign, err := arena.Scratch("assign", o.mat)
		if err != nil {
			return nil, err
		}
		tensor := numeric.FromDense(o.mat)

		return []benchmark.Case{
			{Label: "fill(3.0)", Op: func() (any, error) {
				numeric.Fill(fill, 3)
				return nil, nil
			}},
			{Label: "scratch[:] = mat2", Op: func() (any, error) { return nil, numeric.Assign(assign, o.mat2) }},
			{Label: "concatenate((mat, mat2), axis=1)", Op: fallible(func() (*mat.Dense, error) { return numeric.Concatenate(1, o.mat, o.mat2) })},
			{Label: "stack((mat, mat2), axis=1)", Op: fallible(func() (numeric.Tensor, error) { return numeric.Stack(1, o.mat, o.mat2) })},
			{Label: "expand_dims(mat, axis=1)", Op: fallible(func() (numeric.Tensor, error) { return numeric.ExpandDims(tensor, 1) })},
			{Label: "transpose(mat)", Op: value(func() mat.Matrix { return numeric.Transpose(o.mat) })},
			{Label: "flatten(mat)", Op: value(func() []float64 { return numeric.Flatten(o.mat) })},
		}, nil
	}
}

// conversion builds its integer and float32 operands from the shared source
// in the order the cases use them.
func conversion(shape benchmark.Shape) func(rand.Source) ([]benchmark.Case, error) {
	return func(src rand.Source) ([]benchmark.Case, error) {
		n := shape.Size()
		u8 := numeric.Convert[uint8](numeric.RandomSlice(n, distuv.Uniform{Min: 0, Max: 255, Src: src}))
		i8 := numeric.Convert[int8](numeric.RandomSlice(n, distuv.Uniform{Min: 0, Max: 127, Src: src}))
		f32 := numeric.Convert[float32](numeric.RandomSlice(n, distuv.Normal{Mu: 0, Sigma: 1000, Src: src}))

		return []benchmark.Case{
			{Label: "convert u8 to f32", Op: value(func() []float32 { return numeric.Convert[float32](u8) })},
			{Label: "convert u8 to i32", Op: value(func() []int32 { return numeric.Convert[int32](u8) })},
			{Label: "convert i8 to u8", Op: value(func() []uint8 { return numeric.Convert[uint8](i8) })},
			{Label: "convert f32 to i32", Op: value(func() []int32 { return numeric.Convert[int32](f32) })},
		}, nil
	}
}
