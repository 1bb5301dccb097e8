package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"umlwidget/internal/models"
)

type WidgetRepository struct {
	db *gorm.DB
}

func NewWidgetRepository(db *gorm.DB) *WidgetRepository {
	return &WidgetRepository{db: db}
}

func (r *WidgetRepository) Create(ctx context.Context, widget *models.Widget) error {
	widget.Prepare()
	return r.db.WithContext(ctx).Create(widget).Error
}

// FindByID returns nil, nil when the widget does not exist.
func (r *WidgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Widget, error) {
	var w models.Widget
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *WidgetRepository) ListByDocument(ctx context.Context, documentID string) ([]models.Widget, error) {
	var widgets []models.Widget
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at ASC").
		Find(&widgets).Error
	return widgets, err
}

// Delete removes the widget and, through the foreign key, its synced state. It
// reports whether a row was deleted.
func (r *WidgetRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Widget{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
