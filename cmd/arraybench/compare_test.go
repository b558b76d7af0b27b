package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arraybench/internal/catalogue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResults(t *testing.T, path string, mean func(i int) float64) {
	t.Helper()
	labels, err := catalogue.Labels()
	require.NoError(t, err)

	var sb strings.Builder
	for i := range labels {
		fmt.Fprintf(&sb, "%.6f,%.6f\n", mean(i), 0.1)
	}
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
}

func TestCompareCmd(t *testing.T) {
	dir := t.TempDir()
	baseline := filepath.Join(dir, "baseline.csv")
	current := filepath.Join(dir, "current.csv")
	writeResults(t, baseline, func(int) float64 { return 1 })
	writeResults(t, current, func(i int) float64 {
		if i == 0 {
			return 2
		}
		return 1
	})

	stdout, _, err := execute(t, "compare", baseline, current)
	require.NoError(t, err)
	assert.Contains(t, stdout, "arange")
	assert.Contains(t, stdout, "+100.00%")
	assert.Contains(t, stdout, "convert f32 to i32")

	_, _, err = execute(t, "compare", "--fail", baseline, current)
	assert.ErrorContains(t, err, "1 case(s) regressed")

	_, _, err = execute(t, "compare", "--fail", "--threshold", "150", baseline, current)
	assert.NoError(t, err)
}

func TestCompareCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(short, []byte("1.000000,0.000000\n"), 0644))
	full := filepath.Join(dir, "full.csv")
	writeResults(t, full, func(int) float64 { return 1 })

	_, _, err := execute(t, "compare", short, full)
	assert.ErrorContains(t, err, "row count mismatch")

	_, _, err = execute(t, "compare", filepath.Join(dir, "missing.csv"), full)
	assert.Error(t, err)

	_, _, err = execute(t, "compare", full)
	assert.Error(t, err)
}
