package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"umlwidget/internal/tablemodel"
)

const (
	typeColor   = "#F17400"
	borderColor = "#CCCCCC"
	typeWidth   = 12
	markerWidth = 4
	keyWidth    = 4
)

// Terminal draws the widget the way the canvas lays it out: a coloured header
// with the table name, then one row per column with name, type, marker and key
// badge. Keys are shown upper-cased.
func Terminal(t tablemodel.Table, headerColor string) string {
	nameWidth := len("Column Name")
	for _, col := range t.Columns {
		if w := lipgloss.Width(col.Name); w > nameWidth {
			nameWidth = w
		}
	}
	rowWidth := nameWidth + typeWidth + markerWidth + keyWidth + 3

	title := t.Name
	if title == "" {
		title = "Table Name"
	}
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(headerColor)).
		Padding(0, 1).
		Width(rowWidth + 2).
		Render(title)

	nameStyle := lipgloss.NewStyle().Width(nameWidth)
	typeStyle := lipgloss.NewStyle().Width(typeWidth).Foreground(lipgloss.Color(typeColor))
	markerStyle := lipgloss.NewStyle().Width(markerWidth)

	rows := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(col.Name), " ",
			typeStyle.Render(col.Type), " ",
			markerStyle.Render(col.Marker), " ",
			keyBadge(col.Key),
		))
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(rowWidth + 2).
		Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func keyBadge(key string) string {
	style := lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center)
	kind := ClassifyKey(key)
	if kind == KeyNone {
		return style.Render(strings.ToUpper(key))
	}
	return style.
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(kind.Fill())).
		Render(kind.String())
}
