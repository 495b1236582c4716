package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	stepStyle  = lipgloss.NewStyle().Width(18)
	timeStyle  = lipgloss.NewStyle().Width(9).Align(lipgloss.Right)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderReport(r simReport, verbose bool) string {
	var lines []string
	lines = append(lines, titleStyle.Render("Boss defeat sequence"), "")

	for _, s := range r.Steps {
		mark, style := "✓", okStyle
		if s.Skipped {
			mark, style = "○", skipStyle
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			style.Render(mark),
			stepStyle.Render(s.Step.String()),
			timeStyle.Render(fmt.Sprintf("%.3fs", s.At.Seconds())),
		))
	}
	lines = append(lines, "")

	if r.Done {
		lines = append(lines, okStyle.Render(fmt.Sprintf("done in %d ticks (%.2fs)", r.Frames, r.Elapsed.Seconds())))
	} else {
		lines = append(lines, failStyle.Render(fmt.Sprintf("not finished after %d ticks", r.Frames)))
	}
	if len(r.Transitions) > 0 {
		lines = append(lines, fmt.Sprintf("scene: %s", strings.Join(r.Transitions, ", ")))
	} else {
		lines = append(lines, skipStyle.Render("scene: none"))
	}
	if r.Walk > 0 {
		lines = append(lines, fmt.Sprintf("walk: %d ticks, player at (%.2f, %.2f)", r.Walk, r.Player[0], r.Player[1]))
	}
	for _, w := range r.Warnings {
		lines = append(lines, warnStyle.Render("! "+w))
	}

	out := boxStyle.Render(strings.Join(lines, "\n"))
	if verbose && r.Log != "" {
		out += "\n" + strings.TrimRight(r.Log, "\n")
	}
	return out
}
