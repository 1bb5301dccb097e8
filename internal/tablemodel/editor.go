package tablemodel

// DefaultColumnType is the type given to columns created by AddColumn unless the
// editor is configured otherwise.
const DefaultColumnType = "string"

// State is everything one widget instance keeps in its synced store.
type State struct {
	Table       Table     `json:"table"`
	Selection   Selection `json:"selectedColumn"`
	HeaderColor string    `json:"headerColor"`
}

// Editor owns the id generator of one widget instance and applies actions to its
// state. It holds no table state itself.
type Editor struct {
	ids         IDGenerator
	defaultType string
}

type Option func(*Editor)

func WithIDGenerator(ids IDGenerator) Option {
	return func(e *Editor) {
		e.ids = ids
	}
}

func WithDefaultType(typ string) Option {
	return func(e *Editor) {
		e.defaultType = typ
	}
}

// NewEditor creates an editor backed by random UUID column ids.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		ids:         UUIDGenerator{},
		defaultType: DefaultColumnType,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewColumn returns a blank column with a fresh id.
func (e *Editor) NewColumn() Column {
	return Column{ID: e.ids.NextID(), Type: e.defaultType}
}

// AddColumn appends a blank column with a fresh id and returns it.
func (e *Editor) AddColumn(t Table) (Table, Column) {
	col := e.NewColumn()
	return AppendColumn(t, col), col
}

// AssignIDs returns a copy of t in which every column has an id unique within the
// table. Columns without an id, and later duplicates of an id, get a fresh one.
// Tables written by older widget revisions or by the side panel carry such columns.
func (e *Editor) AssignIDs(t Table) Table {
	return FillIDs(t, func(int) ColumnID { return e.ids.NextID() })
}

// Apply runs one action against s and reports whether anything changed. Actions
// that miss (unknown id, stale selection, boundary move) return s unchanged.
func (e *Editor) Apply(s State, a Action) (State, bool) {
	next := s
	var changed bool

	switch act := a.(type) {
	case AddColumnAction:
		next.Table, _ = e.AddColumn(s.Table)
		changed = true
	case RemoveColumnAction:
		next.Table, changed = RemoveColumn(s.Table, target(act.ID, s.Selection))
	case MoveColumnUpAction:
		next.Table, changed = MoveColumnUp(s.Table, target(act.ID, s.Selection))
	case MoveColumnDownAction:
		next.Table, changed = MoveColumnDown(s.Table, target(act.ID, s.Selection))
	case RenameTableAction:
		next.Table = RenameTable(s.Table, act.Name)
		changed = act.Name != s.Table.Name
	case RenameColumnAction:
		next.Table, changed = RenameColumn(s.Table, act.ID, act.Name)
	case RetypeColumnAction:
		next.Table, changed = RetypeColumn(s.Table, act.ID, act.Type)
	case SetColumnMarkerAction:
		next.Table, changed = SetColumnMarker(s.Table, act.ID, act.Marker)
	case SetColumnKeyAction:
		next.Table, changed = SetColumnKey(s.Table, act.ID, act.Key)
	case SelectColumnAction:
		next.Selection = Select(s.Table, act.ID)
		changed = next.Selection != s.Selection
	case RecolorAction:
		next.HeaderColor = act.Color
		changed = act.Color != s.HeaderColor
	case ReplaceTableAction:
		next.Table = e.AssignIDs(act.Table)
		changed = !next.Table.Equal(s.Table)
	default:
		return s, false
	}

	if !changed {
		return s, false
	}
	return next, true
}

func target(id ColumnID, sel Selection) ColumnID {
	if id != "" {
		return id
	}
	return sel.Column
}
