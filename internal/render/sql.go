package render

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"umlwidget/internal/tablemodel"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_$]*$`)

var columnTypePattern = regexp.MustCompile(`(?i)^(` + strings.Join([]string{
	`string`,
	`int`, `integer`, `bigint`, `smallint`, `serial`, `bigserial`, `smallserial`,
	`decimal`, `numeric`, `real`, `double\s+precision`, `float`,
	`boolean`, `bool`,
	`char`, `character`, `varchar`, `character\s+varying`, `text`,
	`date`, `time`, `timestamp`, `timestamptz`, `interval`,
	`uuid`, `json`, `jsonb`, `bytea`,
}, "|") + `)(\s*\(\s*\d+\s*(,\s*\d+\s*)?\))?(\s*\[\])?$`)

// SQL renders the table as a PostgreSQL CREATE TABLE statement. Columns keyed PK
// form the primary key; free-form types are emitted as written, except that an
// empty type or "string" becomes TEXT.
func SQL(t tablemodel.Table) (string, error) {
	if !isValidIdentifier(t.Name) {
		return "", fmt.Errorf("invalid table name %q", t.Name)
	}
	if len(t.Columns) == 0 {
		return "", errors.New("at least one column is required")
	}

	pks := primaryKeys(t)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("CREATE TABLE %s (\n", pgx.Identifier{t.Name}.Sanitize()))

	defs := make([]string, 0, len(t.Columns)+1)
	for i, col := range t.Columns {
		if !isValidIdentifier(col.Name) {
			return "", fmt.Errorf("invalid column name at index %d: %q", i, col.Name)
		}
		if !isValidColumnType(col.Type) {
			return "", fmt.Errorf("invalid column type for %s: %q", col.Name, col.Type)
		}
		def := fmt.Sprintf("  %s %s", pgx.Identifier{col.Name}.Sanitize(), sqlType(col.Type))
		if len(pks) == 1 && pks[0] == i {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}

	if len(pks) > 1 {
		names := make([]string, len(pks))
		for i, pos := range pks {
			names[i] = pgx.Identifier{t.Columns[pos].Name}.Sanitize()
		}
		defs = append(defs, fmt.Sprintf("  PRIMARY KEY (%s)", strings.Join(names, ", ")))
	}

	sb.WriteString(strings.Join(defs, ",\n"))
	sb.WriteString("\n);\n")
	return sb.String(), nil
}

func sqlType(typ string) string {
	typ = strings.TrimSpace(typ)
	if typ == "" || strings.EqualFold(typ, "string") {
		return "TEXT"
	}
	return strings.ToUpper(typ)
}

// isValidColumnType accepts the widget default plus PostgreSQL type names, with an
// optional length or precision like VARCHAR(50) or NUMERIC(10, 2) and an optional
// array suffix. Anything else, such as defaults or extra column definitions, is
// rejected.
func isValidColumnType(colType string) bool {
	typ := strings.TrimSpace(colType)
	return typ == "" || columnTypePattern.MatchString(typ)
}

// isValidIdentifier checks if a string is a valid PostgreSQL identifier
func isValidIdentifier(name string) bool {
	if name == "" || len(name) > 63 {
		return false
	}
	return identifierPattern.MatchString(name)
}
