package tablemodel

// ColumnID identifies a column for its whole lifetime. It is assigned once by an
// IDGenerator and never reused.
type ColumnID string

type Column struct {
	ID     ColumnID `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Marker string   `json:"marker"`
	Key    string   `json:"key"`
}

// Table is the schema entity edited by the widget. Column order is significant.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Selection points at the currently selected column by id. The zero value is unset.
// A selection may outlive the column it references.
type Selection struct {
	Column ColumnID `json:"column,omitempty"`
}

func (s Selection) IsSet() bool {
	return s.Column != ""
}

// NewTable returns the default table: no name, no columns.
func NewTable() Table {
	return Table{Columns: []Column{}}
}

// IndexOf returns the position of the column with the given id, or -1.
func (t Table) IndexOf(id ColumnID) int {
	if id == "" {
		return -1
	}
	for i, col := range t.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// Column returns the column with the given id.
func (t Table) Column(id ColumnID) (Column, bool) {
	i := t.IndexOf(id)
	if i < 0 {
		return Column{}, false
	}
	return t.Columns[i], true
}

// Clone returns a copy of t that shares no column storage with it.
func (t Table) Clone() Table {
	cols := make([]Column, len(t.Columns))
	copy(cols, t.Columns)
	return Table{Name: t.Name, Columns: cols}
}

// Equal reports whether both tables have the same name and the same columns in the
// same order. A nil and an empty column list compare equal.
func (t Table) Equal(other Table) bool {
	if t.Name != other.Name || len(t.Columns) != len(other.Columns) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i] != other.Columns[i] {
			return false
		}
	}
	return true
}
