// Package render formats worlds, states, plans and runs for the terminal.
package render

import "github.com/charmbracelet/lipgloss"

var (
	// Title heads a rendered block with the scenario name.
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))

	// Muted de-emphasizes counts and footnotes.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// Ok and Miss mark satisfied and unsatisfied goals.
	Ok   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C3E88D"))
	Miss = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5370"))

	// Box frames a snapshot panel.
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1)

	dockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C792EA"))
	robotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89DDFF"))
	cargoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFCB6B"))

	moveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#82AAFF"))
	pickupStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C3E88D"))
	putdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F78C6C"))
)
