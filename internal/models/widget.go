package models

import (
	"time"

	"github.com/google/uuid"
)

// Widget is one table widget placed in a host document. Its editable state lives
// in the synced store, keyed by the widget id.
type Widget struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID string    `gorm:"type:text;not null;index" json:"document_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (w *Widget) Prepare() {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
}
