package ui

import (
	"strings"

	"tasklist/internal/output"
	"tasklist/internal/tasklist"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Add item"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(buttonStyle.Render("[Add]"))
	b.WriteString("\n")

	incomplete := m.tasks.Incompletes()
	m.renderContainer(&b, output.IncompleteTitle, incomplete, 0)
	m.renderContainer(&b, output.CompletedTitle, m.tasks.Completed(), len(incomplete))

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// renderContainer writes one container. offset is the cursor index of its
// first row.
func (m Model) renderContainer(b *strings.Builder, title string, tasks []tasklist.Task, offset int) {
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(emptyStyle.Render("nothing here"))
		b.WriteString("\n")
		return
	}
	for i, t := range tasks {
		b.WriteString(m.renderTask(t, offset+i == m.cursor && m.focus != focusInput))
		b.WriteString("\n")
	}
}

// renderTask draws the controls of one task: checkbox, label or edit
// field, the Edit/Save toggle and the delete control.
func (m Model) renderTask(t tasklist.Task, selected bool) string {
	var text string
	switch {
	case m.focus == focusEdit && t.ID == m.editing:
		text = m.edit.View()
	case t.Editing():
		text = editFieldStyle.Render(t.EditText)
	case t.Checked():
		text = completedLabelStyle.Render(t.Label)
	default:
		text = t.Label
	}

	marker := "  "
	style := rowStyle
	if selected {
		marker = "> "
		style = selectedRowStyle
	}

	line := marker + output.Checkbox(t) + " " + text + "  " +
		buttonStyle.Render("["+t.ControlLabel()+"]") + " " +
		deleteStyle.Render("["+DeleteIcon+"]")
	return style.Render(line)
}
