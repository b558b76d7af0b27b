package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"arraybench/internal/benchmark"
)

// Progress prints each section header and every case result as the run
// advances. It implements benchmark.Reporter.
type Progress struct {
	w      io.Writer
	styles styles
}

// NewProgress creates a progress reporter writing to w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w, styles: newStyles(lipgloss.NewRenderer(w))}
}

// Section prints the "Name:" header that precedes a group of cases.
func (p *Progress) Section(name string) {
	fmt.Fprintf(p.w, "\n%s\n", p.styles.section.Render(name+":"))
}

// Start prints the label of the case about to be measured.
func (p *Progress) Start(c benchmark.Case) {
	fmt.Fprintln(p.w, p.styles.label.Render(c.Label))
}

// Finish prints the case's mean and standard deviation in milliseconds.
func (p *Progress) Finish(_ benchmark.Case, sample benchmark.Sample, stat benchmark.Statistic) {
	fmt.Fprintf(p.w, "    averaged process time over %d times: %s msec.\n",
		len(sample),
		p.styles.value.Render(fmt.Sprintf("%.6f +/- %.6f", stat.MeanMs, stat.StdDevMs)))
}
