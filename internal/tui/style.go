// Package tui renders the CLI's non-scrolling surfaces: the startup
// banner printed before the remap pipeline starts, the device listing, and the
// live "listen" view that streams events from a background goroutine
// into a running Bubble Tea program via p.Send.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A7C080"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7FBBB3"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D3C6AA"))

	activeBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#83C092"))

	dimmedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#859289"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E67E80"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4F585E")).
			Padding(0, 1)
)
