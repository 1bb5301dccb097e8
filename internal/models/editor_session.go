package models

import (
	"time"

	"github.com/google/uuid"

	"umlwidget/internal/tablemodel"
)

// EditorSession is the pending half of an editor handoff: the table that was sent
// to the side panel, waiting for the edited version to come back.
type EditorSession struct {
	ID       string           `json:"id"`
	WidgetID uuid.UUID        `json:"widget_id"`
	Table    tablemodel.Table `json:"table"`
	OpenedAt time.Time        `json:"opened_at"`
}
