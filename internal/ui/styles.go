package ui

import "github.com/charmbracelet/lipgloss"

// DeleteIcon decorates every delete control.
const DeleteIcon = "✕"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89B4FA")).
			Bold(true).
			MarginTop(1)

	rowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EE6FF8")).
				PaddingLeft(2)

	completedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#A6E3A1")).
				Strikethrough(true)

	editFieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAB387")).
			Underline(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	deleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			Italic(true).
			PaddingLeft(4)
)
