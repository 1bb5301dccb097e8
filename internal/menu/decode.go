package menu

import (
	"errors"
	"fmt"

	"umlwidget/internal/palette"
	"umlwidget/internal/tablemodel"
)

var (
	ErrUnknownAction  = errors.New("unknown menu action")
	ErrInvalidPayload = errors.New("invalid menu payload")
)

// Event is what the host reports when a menu item is used or a field is edited
// in place. ColumnID is only read by the per-column field edits.
type Event struct {
	PropertyName  string `json:"propertyName" binding:"required"`
	PropertyValue string `json:"propertyValue"`
	ColumnID      string `json:"columnId,omitempty"`
}

// Decode turns a host event into an action.
func Decode(ev Event) (tablemodel.Action, error) {
	id := tablemodel.ColumnID(ev.ColumnID)

	switch ev.PropertyName {
	case PropHeaderColor:
		c, ok := palette.ByValue(ev.PropertyValue)
		if !ok {
			return nil, fmt.Errorf("%w: color %q is not in the palette", ErrInvalidPayload, ev.PropertyValue)
		}
		return tablemodel.RecolorAction{Color: c.Value}, nil
	case PropAddColumn:
		return tablemodel.AddColumnAction{}, nil
	case PropSelectColumn:
		return tablemodel.SelectColumnAction{ID: tablemodel.ColumnID(ev.PropertyValue)}, nil
	case PropRemoveColumn:
		return tablemodel.RemoveColumnAction{ID: id}, nil
	case PropMoveColumnUp, "upColumn":
		return tablemodel.MoveColumnUpAction{ID: id}, nil
	case PropMoveColumnDown, "downColumn":
		return tablemodel.MoveColumnDownAction{ID: id}, nil
	case PropRenameTable:
		return tablemodel.RenameTableAction{Name: ev.PropertyValue}, nil
	}

	field := map[string]func() tablemodel.Action{
		PropRenameColumn:    func() tablemodel.Action { return tablemodel.RenameColumnAction{ID: id, Name: ev.PropertyValue} },
		PropRetypeColumn:    func() tablemodel.Action { return tablemodel.RetypeColumnAction{ID: id, Type: ev.PropertyValue} },
		PropSetColumnMarker: func() tablemodel.Action { return tablemodel.SetColumnMarkerAction{ID: id, Marker: ev.PropertyValue} },
		PropSetColumnKey:    func() tablemodel.Action { return tablemodel.SetColumnKeyAction{ID: id, Key: ev.PropertyValue} },
	}
	build, ok := field[ev.PropertyName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, ev.PropertyName)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: %s needs a columnId", ErrInvalidPayload, ev.PropertyName)
	}
	return build(), nil
}
