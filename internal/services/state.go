package services

import (
	"encoding/json"
	"fmt"

	"umlwidget/internal/palette"
	"umlwidget/internal/tablemodel"
)

// Keys of the synced store.
const (
	KeyTable          = "table"
	KeySelectedColumn = "selectedColumn"
	KeyHeaderColor    = "headerColor"
)

// decodeState builds widget state from stored values, falling back to the
// defaults for missing keys.
func decodeState(values map[string]json.RawMessage) (tablemodel.State, error) {
	state := tablemodel.State{
		Table:       tablemodel.NewTable(),
		HeaderColor: palette.Default().Value,
	}

	if raw, ok := values[KeyTable]; ok {
		if err := json.Unmarshal(raw, &state.Table); err != nil {
			return state, fmt.Errorf("failed to decode %s: %w", KeyTable, err)
		}
		if state.Table.Columns == nil {
			state.Table.Columns = []tablemodel.Column{}
		}
	}

	if raw, ok := values[KeySelectedColumn]; ok {
		if err := json.Unmarshal(raw, &state.Selection); err != nil {
			return state, fmt.Errorf("failed to decode %s: %w", KeySelectedColumn, err)
		}
	}

	if raw, ok := values[KeyHeaderColor]; ok {
		var c palette.Color
		if err := json.Unmarshal(raw, &c); err != nil {
			return state, fmt.Errorf("failed to decode %s: %w", KeyHeaderColor, err)
		}
		if known, found := palette.ByValue(c.Value); found {
			state.HeaderColor = known.Value
		}
	}

	return state, nil
}

// encodeChanges returns the store values that differ between before and after.
func encodeChanges(before, after tablemodel.State) map[string]any {
	changes := make(map[string]any)
	if !before.Table.Equal(after.Table) {
		changes[KeyTable] = after.Table
	}
	if before.Selection != after.Selection {
		changes[KeySelectedColumn] = after.Selection
	}
	if before.HeaderColor != after.HeaderColor {
		changes[KeyHeaderColor] = headerColor(after.HeaderColor)
	}
	return changes
}

// encodeState returns every store value of s.
func encodeState(s tablemodel.State) map[string]any {
	return map[string]any{
		KeyTable:          s.Table,
		KeySelectedColumn: s.Selection,
		KeyHeaderColor:    headerColor(s.HeaderColor),
	}
}

func headerColor(value string) palette.Color {
	if c, ok := palette.ByValue(value); ok {
		return c
	}
	return palette.Default()
}
