package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"arraybench/internal/benchmark"
)

// RenderComparisons writes one line per case with the change in mean time.
// Changes beyond threshold percent are highlighted. It returns the number of
// regressions found.
func RenderComparisons(w io.Writer, comps []benchmark.Comparison, threshold float64) (int, error) {
	st := newStyles(lipgloss.NewRenderer(w))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CASE\tBASELINE (ms)\tCURRENT (ms)\tCHANGE")
	regressions := 0
	for _, c := range comps {
		change := fmt.Sprintf("%+.2f%%", c.MeanDiff)
		switch {
		case c.Regressed(threshold):
			regressions++
			change = st.regressed.Render(change)
		case c.Improved(threshold):
			change = st.improved.Render(change)
		default:
			change = st.muted.Render(change)
		}
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%s\n", c.Label, c.Prev.MeanMs, c.Curr.MeanMs, change)
	}
	if err := tw.Flush(); err != nil {
		return regressions, err
	}
	return regressions, nil
}

// RenderHistory lists recorded runs, newest first.
func RenderHistory(w io.Writer, runs []benchmark.Run) error {
	st := newStyles(lipgloss.NewRenderer(w))
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, st.muted.Render("No runs recorded."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIMESTAMP\tSHAPE\tREPEAT\tSEED\tCASES\tOUTPUT")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\t%d\t%d\t%s\n",
			st.section.Render(run.ID),
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Shape.Rows, run.Shape.Cols,
			run.Repeat, run.Seed, len(run.Results), run.OutputPath)
	}
	return tw.Flush()
}
