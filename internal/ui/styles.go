package ui

import "github.com/charmbracelet/lipgloss"

// styles binds the palette to one renderer so the colour profile follows the
// destination writer rather than the process stdout.
type styles struct {
	section   lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	muted     lipgloss.Style
	regressed lipgloss.Style
	improved  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		section: r.NewStyle().
			Foreground(lipgloss.Color("212")). // Light purple
			Bold(true),
		label: r.NewStyle().
			Foreground(lipgloss.Color("252")), // Light Gray
		value: r.NewStyle().Bold(true),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		regressed: r.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true),
		improved: r.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true),
	}
}
