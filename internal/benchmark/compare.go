package benchmark

import "fmt"

// Comparison is the change of one case between two result tables.
type Comparison struct {
	Label      string
	MeanDiff   float64 // Percentage change
	StdDevDiff float64 // Percentage change
	Prev       Statistic
	Curr       Statistic
}

// Compare pairs two result tables row by row. Result files carry no labels,
// so rows are matched by position and named from labels; both tables must
// have one row per label.
func Compare(labels []string, prev, curr []Statistic) ([]Comparison, error) {
	if len(prev) != len(labels) || len(curr) != len(labels) {
		return nil, fmt.Errorf("row count mismatch: catalogue has %d cases, baseline %d, current %d",
			len(labels), len(prev), len(curr))
	}

	comparisons := make([]Comparison, 0, len(labels))
	for i, label := range labels {
		comp := Comparison{
			Label: label,
			Prev:  prev[i],
			Curr:  curr[i],
		}
		if p := prev[i].MeanMs; p > 0 {
			comp.MeanDiff = (curr[i].MeanMs - p) / p * 100
		}
		if p := prev[i].StdDevMs; p > 0 {
			comp.StdDevDiff = (curr[i].StdDevMs - p) / p * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons, nil
}

// Regressed reports whether the mean got slower by more than threshold percent.
func (c Comparison) Regressed(threshold float64) bool {
	return c.MeanDiff > threshold
}

// Improved reports whether the mean got faster by more than threshold percent.
func (c Comparison) Improved(threshold float64) bool {
	return c.MeanDiff < -threshold
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% mean", c.Label, c.MeanDiff)
}
