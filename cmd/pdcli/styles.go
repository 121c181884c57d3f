package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"priests-devils/river"
)

var (
	colorRiver   = lipgloss.Color("#1D9EA3")
	colorPriest  = lipgloss.Color("#F8FAFC")
	colorDevil   = lipgloss.Color("#E74C3C")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorMuted   = lipgloss.Color("#2C4A54")
)

var styles = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Priest  lipgloss.Style
	Devil   lipgloss.Style
	River   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Success: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorDevil).Bold(true),
	Priest:  lipgloss.NewStyle().Foreground(colorPriest).Bold(true),
	Devil:   lipgloss.NewStyle().Foreground(colorDevil).Bold(true),
	River:   lipgloss.NewStyle().Foreground(colorRiver),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorRiver).
		Padding(0, 1),
}

// figures renders n priests or devils as P/D glyphs.
func figures(k river.Kind, n int) string {
	if n <= 0 {
		return ""
	}
	if k == river.Priest {
		return styles.Priest.Render(strings.Repeat("P", n))
	}
	return styles.Devil.Render(strings.Repeat("D", n))
}

func boatCargo(passengers []river.Kind) string {
	var b strings.Builder
	for _, k := range passengers {
		b.WriteString(figures(k, 1))
	}
	return b.String()
}

// renderRiver draws one line: left bank, river with the boat on its side,
// right bank.
func renderRiver(p river.Position, passengers []river.Kind, width int) string {
	left := lipgloss.JoinHorizontal(lipgloss.Top, figures(river.Priest, p.PriestsLeft), " ", figures(river.Devil, p.DevilsLeft))
	right := lipgloss.JoinHorizontal(lipgloss.Top, figures(river.Priest, p.PriestsRight), " ", figures(river.Devil, p.DevilsRight))
	boat := "\\" + boatCargo(passengers) + strings.Repeat("_", 2-len(passengers)) + "/"

	water := styles.River.Render(strings.Repeat("~", max(width, 4)))
	var middle string
	if p.Boat == river.Left {
		middle = boat + water
	} else {
		middle = water + boat
	}
	bank := lipgloss.NewStyle().Width(width + 2)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		bank.Align(lipgloss.Left).Render(left),
		middle,
		bank.Align(lipgloss.Right).Render(right),
	)
}
