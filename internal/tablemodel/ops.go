package tablemodel

// Every operation in this file is a pure transform: the input table is never
// modified, and a miss (unknown id, boundary move) returns the input unchanged
// together with false.

// RenameTable replaces the table name. Empty names are allowed.
func RenameTable(t Table, name string) Table {
	next := t.Clone()
	next.Name = name
	return next
}

// AppendColumn appends col as-is. Callers normally go through Editor.AddColumn,
// which assigns a fresh id.
func AppendColumn(t Table, col Column) Table {
	next := t.Clone()
	next.Columns = append(next.Columns, col)
	return next
}

func RemoveColumn(t Table, id ColumnID) (Table, bool) {
	i := t.IndexOf(id)
	if i < 0 {
		return t, false
	}
	cols := make([]Column, 0, len(t.Columns)-1)
	cols = append(cols, t.Columns[:i]...)
	cols = append(cols, t.Columns[i+1:]...)
	return Table{Name: t.Name, Columns: cols}, true
}

// MoveColumnUp swaps the column with its predecessor.
func MoveColumnUp(t Table, id ColumnID) (Table, bool) {
	i := t.IndexOf(id)
	if i <= 0 {
		return t, false
	}
	return swap(t, i, i-1), true
}

// MoveColumnDown swaps the column with its successor.
func MoveColumnDown(t Table, id ColumnID) (Table, bool) {
	i := t.IndexOf(id)
	if i < 0 || i == len(t.Columns)-1 {
		return t, false
	}
	return swap(t, i, i+1), true
}

func RenameColumn(t Table, id ColumnID, name string) (Table, bool) {
	return updateColumn(t, id, func(c *Column) { c.Name = name })
}

func RetypeColumn(t Table, id ColumnID, typ string) (Table, bool) {
	return updateColumn(t, id, func(c *Column) { c.Type = typ })
}

func SetColumnMarker(t Table, id ColumnID, marker string) (Table, bool) {
	return updateColumn(t, id, func(c *Column) { c.Marker = marker })
}

// SetColumnKey stores key verbatim. Case is interpreted by renderers only.
func SetColumnKey(t Table, id ColumnID, key string) (Table, bool) {
	return updateColumn(t, id, func(c *Column) { c.Key = key })
}

// Select returns a selection of the column with the given id, or an unset
// selection if no such column exists.
func Select(t Table, id ColumnID) Selection {
	if t.IndexOf(id) < 0 {
		return Selection{}
	}
	return Selection{Column: id}
}

func swap(t Table, i, j int) Table {
	next := t.Clone()
	next.Columns[i], next.Columns[j] = next.Columns[j], next.Columns[i]
	return next
}

func updateColumn(t Table, id ColumnID, fn func(*Column)) (Table, bool) {
	i := t.IndexOf(id)
	if i < 0 {
		return t, false
	}
	next := t.Clone()
	fn(&next.Columns[i])
	return next, true
}

// FillIDs is AssignIDs with the replacement ids taken from next, which receives
// the column position.
func FillIDs(t Table, next func(pos int) ColumnID) Table {
	out := t.Clone()
	seen := make(map[ColumnID]bool, len(out.Columns))
	for i := range out.Columns {
		id := out.Columns[i].ID
		if id == "" || seen[id] {
			id = next(i)
			out.Columns[i].ID = id
		}
		seen[id] = true
	}
	return out
}
