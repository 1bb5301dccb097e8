package render

import (
	"fmt"
	"strings"

	"umlwidget/internal/tablemodel"
)

// Mermaid renders the table as a Mermaid erDiagram entity.
func Mermaid(t tablemodel.Table) string {
	var sb strings.Builder

	sb.WriteString("erDiagram\n")
	sb.WriteString(fmt.Sprintf("    %s {\n", entityName(t.Name)))

	for _, col := range t.Columns {
		line := fmt.Sprintf("        %s %s", attrToken(col.Type, "string"), attrToken(col.Name, "unnamed"))
		if kind := ClassifyKey(col.Key); kind != KeyNone {
			line += " " + kind.String()
		}
		if col.Marker != "" {
			line += fmt.Sprintf(" %q", col.Marker)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("    }\n")
	return sb.String()
}

func entityName(name string) string {
	return attrToken(strings.ToUpper(name), "TABLE")
}

// attrToken makes a free-form label usable as a single mermaid attribute token.
func attrToken(s, fallback string) string {
	s = strings.Join(strings.Fields(s), "_")
	if s == "" {
		return fallback
	}
	return s
}
