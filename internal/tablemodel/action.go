package tablemodel

// Action is one structural edit. The set of variants is closed: only the types in
// this file implement it.
type Action interface {
	action()
}

type AddColumnAction struct{}

// RemoveColumnAction removes the column with ID, or the selected column when ID is empty.
type RemoveColumnAction struct {
	ID ColumnID
}

// MoveColumnUpAction moves the column with ID, or the selected column when ID is empty.
type MoveColumnUpAction struct {
	ID ColumnID
}

// MoveColumnDownAction moves the column with ID, or the selected column when ID is empty.
type MoveColumnDownAction struct {
	ID ColumnID
}

type RenameTableAction struct {
	Name string
}

type RenameColumnAction struct {
	ID   ColumnID
	Name string
}

type RetypeColumnAction struct {
	ID   ColumnID
	Type string
}

type SetColumnMarkerAction struct {
	ID     ColumnID
	Marker string
}

type SetColumnKeyAction struct {
	ID  ColumnID
	Key string
}

type SelectColumnAction struct {
	ID ColumnID
}

// RecolorAction sets the header colour. Color is a hex value already validated against
// the palette by the caller.
type RecolorAction struct {
	Color string
}

// ReplaceTableAction swaps in a table received from the side-panel editor. No merge.
type ReplaceTableAction struct {
	Table Table
}

func (AddColumnAction) action()       {}
func (RemoveColumnAction) action()    {}
func (MoveColumnUpAction) action()    {}
func (MoveColumnDownAction) action()  {}
func (RenameTableAction) action()     {}
func (RenameColumnAction) action()    {}
func (RetypeColumnAction) action()    {}
func (SetColumnMarkerAction) action() {}
func (SetColumnKeyAction) action()    {}
func (SelectColumnAction) action()    {}
func (RecolorAction) action()         {}
func (ReplaceTableAction) action()    {}
