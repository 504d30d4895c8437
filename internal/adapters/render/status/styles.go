package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	working    lipgloss.Style
	resting    lipgloss.Style
	idle       lipgloss.Style
	warning    lipgloss.Style
	success    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barWork    lipgloss.Style
	barBreak   lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		base := lipgloss.NewStyle()
		return styles{
			title:      base,
			label:      base,
			value:      base,
			working:    base,
			resting:    base,
			idle:       base,
			warning:    base,
			success:    base,
			section:    base.MarginTop(1),
			empty:      base,
			barBracket: base,
			barWork:    base,
			barBreak:   base,
			barEmpty:   base,
		}
	}

	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		working:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		resting:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		idle:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barWork:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		barBreak:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func (s styles) forTag(working, breaking bool) lipgloss.Style {
	switch {
	case working:
		return s.working
	case breaking:
		return s.resting
	default:
		return s.idle
	}
}
