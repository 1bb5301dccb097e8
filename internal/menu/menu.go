package menu

import (
	"umlwidget/internal/palette"
	"umlwidget/internal/tablemodel"
)

type ItemType string

const (
	ItemColorSelector ItemType = "color-selector"
	ItemAction        ItemType = "action"
	ItemDropdown      ItemType = "dropdown"
	ItemSeparator     ItemType = "separator"
)

// Property names emitted by the host when a menu item is used.
const (
	PropHeaderColor     = "headerColor"
	PropAddColumn       = "addColumn"
	PropSelectColumn    = "selectColumn"
	PropRemoveColumn    = "removeColumn"
	PropMoveColumnUp    = "moveColumnUp"
	PropMoveColumnDown  = "moveColumnDown"
	PropOpenEditor      = "openEditor"
	PropRenameTable     = "renameTable"
	PropRenameColumn    = "renameColumn"
	PropRetypeColumn    = "retypeColumn"
	PropSetColumnMarker = "setColumnMarker"
	PropSetColumnKey    = "setColumnKey"
)

type Option struct {
	Option  string `json:"option"`
	Label   string `json:"label,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

// Item mirrors one entry of the host's property menu.
type Item struct {
	ItemType       ItemType `json:"itemType"`
	PropertyName   string   `json:"propertyName,omitempty"`
	Tooltip        string   `json:"tooltip,omitempty"`
	Options        []Option `json:"options,omitempty"`
	SelectedOption string   `json:"selectedOption,omitempty"`
}

// Build returns the property menu for the given widget state. Column-specific
// items only appear once the table has at least one column.
func Build(s tablemodel.State) []Item {
	colorOptions := make([]Option, 0, len(palette.All()))
	for _, c := range palette.All() {
		colorOptions = append(colorOptions, Option{Option: c.Value, Tooltip: c.Name})
	}

	items := []Item{
		{
			ItemType:       ItemColorSelector,
			PropertyName:   PropHeaderColor,
			Tooltip:        "Table Header Color",
			Options:        colorOptions,
			SelectedOption: s.HeaderColor,
		},
		{ItemType: ItemAction, PropertyName: PropAddColumn, Tooltip: "Add column"},
		{ItemType: ItemAction, PropertyName: PropOpenEditor, Tooltip: "Open editor"},
	}

	cols := s.Table.Columns
	if len(cols) == 0 {
		return items
	}

	columnOptions := make([]Option, 0, len(cols))
	for _, c := range cols {
		columnOptions = append(columnOptions, Option{Option: string(c.ID), Label: c.Name})
	}

	return append(items,
		Item{ItemType: ItemSeparator},
		Item{
			ItemType:       ItemDropdown,
			PropertyName:   PropSelectColumn,
			Tooltip:        "Select column",
			Options:        columnOptions,
			SelectedOption: string(SelectedColumn(s)),
		},
		Item{ItemType: ItemAction, PropertyName: PropRemoveColumn, Tooltip: "Remove column"},
		Item{ItemType: ItemAction, PropertyName: PropMoveColumnUp, Tooltip: "↑"},
		Item{ItemType: ItemAction, PropertyName: PropMoveColumnDown, Tooltip: "↓"},
	)
}

// SelectedColumn is the id shown as chosen in the column dropdown: the selection
// when it still exists, otherwise the last column.
func SelectedColumn(s tablemodel.State) tablemodel.ColumnID {
	if _, ok := s.Table.Column(s.Selection.Column); ok {
		return s.Selection.Column
	}
	if n := len(s.Table.Columns); n > 0 {
		return s.Table.Columns[n-1].ID
	}
	return ""
}
