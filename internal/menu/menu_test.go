package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlwidget/internal/tablemodel"
)

func state() tablemodel.State {
	return tablemodel.State{
		Table: tablemodel.Table{
			Name: "users",
			Columns: []tablemodel.Column{
				{ID: "1", Name: "id"},
				{ID: "2", Name: "email"},
			},
		},
		HeaderColor: "#34D399",
	}
}

func propertyNames(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.PropertyName)
	}
	return out
}

func TestBuildEmptyTable(t *testing.T) {
	items := Build(tablemodel.State{Table: tablemodel.NewTable(), HeaderColor: "#EF4444"})

	assert.Equal(t, []string{PropHeaderColor, PropAddColumn, PropOpenEditor}, propertyNames(items))
	assert.Equal(t, "#EF4444", items[0].SelectedOption)
	assert.Len(t, items[0].Options, 15)
}

func TestBuildWithColumns(t *testing.T) {
	items := Build(state())

	assert.Equal(t, []string{
		PropHeaderColor, PropAddColumn, PropOpenEditor, "",
		PropSelectColumn, PropRemoveColumn, PropMoveColumnUp, PropMoveColumnDown,
	}, propertyNames(items))

	dropdown := items[4]
	assert.Equal(t, ItemDropdown, dropdown.ItemType)
	assert.Equal(t, []Option{{Option: "1", Label: "id"}, {Option: "2", Label: "email"}}, dropdown.Options)
	assert.Equal(t, "2", dropdown.SelectedOption)
}

func TestSelectedColumn(t *testing.T) {
	s := state()
	assert.Equal(t, tablemodel.ColumnID("2"), SelectedColumn(s))

	s.Selection = tablemodel.Selection{Column: "1"}
	assert.Equal(t, tablemodel.ColumnID("1"), SelectedColumn(s))

	s.Selection = tablemodel.Selection{Column: "gone"}
	assert.Equal(t, tablemodel.ColumnID("2"), SelectedColumn(s))

	assert.Equal(t, tablemodel.ColumnID(""), SelectedColumn(tablemodel.State{}))
}

func TestDecode(t *testing.T) {
	cases := []struct {
		ev   Event
		want tablemodel.Action
	}{
		{Event{PropertyName: PropHeaderColor, PropertyValue: "#ef4444"}, tablemodel.RecolorAction{Color: "#EF4444"}},
		{Event{PropertyName: PropAddColumn}, tablemodel.AddColumnAction{}},
		{Event{PropertyName: PropSelectColumn, PropertyValue: "2"}, tablemodel.SelectColumnAction{ID: "2"}},
		{Event{PropertyName: PropRemoveColumn}, tablemodel.RemoveColumnAction{}},
		{Event{PropertyName: "upColumn"}, tablemodel.MoveColumnUpAction{}},
		{Event{PropertyName: PropMoveColumnDown, ColumnID: "1"}, tablemodel.MoveColumnDownAction{ID: "1"}},
		{Event{PropertyName: PropRenameTable, PropertyValue: "users"}, tablemodel.RenameTableAction{Name: "users"}},
		{Event{PropertyName: PropRenameColumn, ColumnID: "1", PropertyValue: "id"}, tablemodel.RenameColumnAction{ID: "1", Name: "id"}},
		{Event{PropertyName: PropRetypeColumn, ColumnID: "1", PropertyValue: "int"}, tablemodel.RetypeColumnAction{ID: "1", Type: "int"}},
		{Event{PropertyName: PropSetColumnMarker, ColumnID: "1", PropertyValue: "NN"}, tablemodel.SetColumnMarkerAction{ID: "1", Marker: "NN"}},
		{Event{PropertyName: PropSetColumnKey, ColumnID: "1", PropertyValue: "fk"}, tablemodel.SetColumnKeyAction{ID: "1", Key: "fk"}},
	}

	for _, tc := range cases {
		t.Run(tc.ev.PropertyName, func(t *testing.T) {
			got, err := Decode(tc.ev)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(Event{PropertyName: "explode"})
	assert.True(t, errors.Is(err, ErrUnknownAction))

	_, err = Decode(Event{PropertyName: PropOpenEditor})
	assert.True(t, errors.Is(err, ErrUnknownAction))

	_, err = Decode(Event{PropertyName: PropHeaderColor, PropertyValue: "#123456"})
	assert.True(t, errors.Is(err, ErrInvalidPayload))

	_, err = Decode(Event{PropertyName: PropSetColumnKey, PropertyValue: "pk"})
	assert.True(t, errors.Is(err, ErrInvalidPayload))
}
