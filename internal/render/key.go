package render

import (
	"strings"

	"umlwidget/internal/tablemodel"
)

type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyPrimary
	KeyForeign
)

// Badge fills used by the canvas renderer for key columns.
const (
	PrimaryKeyFill = "#F9D745"
	ForeignKeyFill = "#C87ACD"
)

// ClassifyKey interprets a stored key case-insensitively. The stored text itself is
// never rewritten.
func ClassifyKey(key string) KeyKind {
	switch strings.ToUpper(key) {
	case "PK":
		return KeyPrimary
	case "FK":
		return KeyForeign
	default:
		return KeyNone
	}
}

func (k KeyKind) String() string {
	switch k {
	case KeyPrimary:
		return "PK"
	case KeyForeign:
		return "FK"
	default:
		return ""
	}
}

// Fill returns the badge colour for the kind, or "" for no badge.
func (k KeyKind) Fill() string {
	switch k {
	case KeyPrimary:
		return PrimaryKeyFill
	case KeyForeign:
		return ForeignKeyFill
	default:
		return ""
	}
}

// primaryKeys returns the positions of the PK columns. Positions, not ids: tables
// from older widget revisions carry no column ids.
func primaryKeys(t tablemodel.Table) []int {
	var pks []int
	for i, col := range t.Columns {
		if ClassifyKey(col.Key) == KeyPrimary {
			pks = append(pks, i)
		}
	}
	return pks
}
