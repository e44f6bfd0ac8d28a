package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	index     lipgloss.Style
	industry  lipgloss.Style
	growth    lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	warning   lipgloss.Style
	errorText lipgloss.Style
	empty     lipgloss.Style
	section   lipgloss.Style
	stamp     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		index:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		industry:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		growth:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:     lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		stamp:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
