package benchmark

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// Aggregate reduces a sample to its mean and population standard deviation,
// both scaled from seconds to milliseconds.
func Aggregate(sample Sample) (Statistic, error) {
	if len(sample) == 0 {
		return Statistic{}, errors.New("cannot aggregate an empty sample")
	}
	if len(sample) == 1 {
		return Statistic{MeanMs: sample[0] * 1e3}, nil
	}

	mean, std := stat.PopMeanStdDev(sample, nil)
	return Statistic{MeanMs: mean * 1e3, StdDevMs: std * 1e3}, nil
}
